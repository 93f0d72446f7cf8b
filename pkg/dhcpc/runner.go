package dhcpc

import (
	"strings"

	"github.com/luscis/ifdhcp/pkg/libol"
)

// Runner invokes an external program and waits for it.
type Runner interface {
	Run(bin string, args ...string) error
}

// Controller writes kernel knobs, see network.Sysctl.
type Controller interface {
	AcceptRA(name string) string
	Write(path, value string) error
}

type ExecRunner struct {
	out *libol.SubLogger
}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		out: libol.NewSubLogger("exec"),
	}
}

func (r *ExecRunner) Run(bin string, args ...string) error {
	r.out.Cmd("ExecRunner.Run %s %s", bin, strings.Join(args, " "))
	out, err := libol.Exec(bin, args...)
	if err != nil {
		return libol.NewErr("%s: %s: %s", bin, err, strings.TrimSpace(out))
	}
	if out != "" {
		r.out.Debug("ExecRunner.Run %s", out)
	}
	return nil
}

// HostnameFile reads the system hostname from file such as /etc/hostname.
func HostnameFile(file string) func() (string, error) {
	return func() (string, error) {
		data, err := libol.LoadFile(file)
		if err != nil {
			return "", err
		}
		return strings.TrimRight(string(data), "\r\n"), nil
	}
}
