package libol

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"os"
	"os/exec"
	"os/signal"
	"path"
	"reflect"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"gopkg.in/yaml.v2"
)

var Letters = []byte("0123456789abcdefghijklmnopqrstuvwxyz")

func IsYaml(file string) bool {
	return strings.HasSuffix(file, ".yaml") || strings.HasSuffix(file, ".yml")
}

func GenString(n int) string {
	buffer := make([]byte, n)
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range buffer {
		buffer[i] = Letters[r.Int63()%int64(len(Letters))]
	}
	buffer[0] = Letters[r.Int63()%26+10]
	return string(buffer)
}

func Marshal(v interface{}, pretty bool) ([]byte, error) {
	str, err := json.Marshal(v)
	if err != nil {
		Error("Marshal error: %s", err)
		return nil, err
	}
	if !pretty {
		return str, nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, str, "", "  "); err != nil {
		return str, nil
	}
	return out.Bytes(), nil
}

func FileExist(file string) error {
	if _, err := os.Stat(file); os.IsNotExist(err) {
		return err
	}
	return nil
}

func LoadFile(file string) ([]byte, error) {
	return os.ReadFile(file)
}

func Unmarshal(v interface{}, contents []byte) error {
	if err := json.Unmarshal(contents, v); err != nil {
		return NewErr("%s", err)
	}
	return nil
}

// UnmarshalLoad decodes file into v by its suffix, a missing file
// leaves v untouched.
func UnmarshalLoad(v interface{}, file string) error {
	if err := FileExist(file); err != nil {
		return nil
	}
	contents, err := LoadFile(file)
	if err != nil {
		return NewErr("%s %s", file, err)
	}
	if IsYaml(file) {
		return yaml.Unmarshal(contents, v)
	}
	return Unmarshal(v, contents)
}

func FunName(i interface{}) string {
	ptr := reflect.ValueOf(i).Pointer()
	name := runtime.FuncForPC(ptr).Name()
	return path.Base(name)
}

func Wait() {
	x := make(chan os.Signal, 1)
	signal.Notify(x, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	Info("Wait: ...")
	n := <-x
	Warn("Wait: ... Signal %s received ...", n)
}

func OpenWrite(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
}

func CreateFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
}

// WriteFile replaces the content of path.
func WriteFile(path string, data []byte) error {
	fp, err := CreateFile(path)
	if err != nil {
		return err
	}
	if _, err := fp.Write(data); err != nil {
		_ = fp.Close()
		return err
	}
	return fp.Close()
}

// RemoveFile removes path, a missing file is not an error.
func RemoveFile(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func Exec(bin string, args ...string) (string, error) {
	out, err := exec.Command(bin, args...).CombinedOutput()
	return string(out), err
}

func ReadPid(file string) (int, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return 0, err
	}
	value := strings.TrimSpace(string(data))
	pid, err := strconv.Atoi(value)
	if err != nil {
		return 0, NewErr("ReadPid %s: %s", file, err)
	}
	return pid, nil
}

func IsProcessRunning(pid int) bool {
	if pid <= 0 {
		return false
	}
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	err = process.Signal(syscall.Signal(0))
	return err == nil
}
