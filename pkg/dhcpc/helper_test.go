package dhcpc

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

type call struct {
	bin  string
	args []string
}

// fakeRunner records invocations and writes the pid file on --start
// like dhclient does once it is launched.
type fakeRunner struct {
	calls []call
	fail  map[string]error
}

func (r *fakeRunner) Run(bin string, args ...string) error {
	r.calls = append(r.calls, call{bin: bin, args: args})
	if err, ok := r.fail[bin]; ok {
		return err
	}
	if len(args) > 0 && args[0] == "--start" {
		for i, arg := range args {
			if arg == "--pidfile" {
				data := fmt.Sprintf("%d\n", os.Getpid())
				_ = os.WriteFile(args[i+1], []byte(data), 0600)
				break
			}
		}
	}
	return nil
}

type fakeControl struct {
	root   string
	writes []string
	fail   error
}

func (f *fakeControl) AcceptRA(name string) string {
	return filepath.Join(f.root, name, "accept_ra")
}

func (f *fakeControl) Write(path, value string) error {
	if f.fail != nil {
		return f.fail
	}
	f.writes = append(f.writes, path+"="+value)
	return nil
}

type testEnv struct {
	dir     string
	base    string
	cfg     *Config
	runner  *fakeRunner
	control *fakeControl
}

func newTestEnv(t *testing.T, hostname string) *testEnv {
	dir := t.TempDir()
	file := filepath.Join(dir, "hostname")
	_ = os.WriteFile(file, []byte(hostname), 0600)
	env := &testEnv{
		dir:     dir,
		base:    filepath.Join(dir, "dhclient_"),
		runner:  &fakeRunner{fail: map[string]error{}},
		control: &fakeControl{root: filepath.Join(dir, "proc")},
	}
	env.cfg = &Config{
		Base:      env.base,
		Dhclient:  "/sbin/dhclient",
		StartStop: "start-stop-daemon",
		Hostname:  HostnameFile(file),
		Runner:    env.runner,
		Control:   env.control,
	}
	return env
}

func exists(file string) bool {
	_, err := os.Stat(file)
	return err == nil
}

func readFile(t *testing.T, file string) string {
	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("read %s: %s", file, err)
	}
	return string(data)
}
