package network

import (
	"os"
	"path/filepath"

	"github.com/luscis/ifdhcp/pkg/libol"
)

// Sysctl writes scalar values under a proc root like /proc/sys/net.
type Sysctl struct {
	Root string
	out  *libol.SubLogger
}

func NewSysctl(root string) *Sysctl {
	return &Sysctl{
		Root: root,
		out:  libol.NewSubLogger("sysctl"),
	}
}

// AcceptRA is the knob that enables router advertisements on name.
func (s *Sysctl) AcceptRA(name string) string {
	return filepath.Join(s.Root, "ipv6", "conf", name, "accept_ra")
}

func (s *Sysctl) Write(path, value string) error {
	s.out.Cmd("Sysctl.Write %s=%s", path, value)
	// Kernel knobs must not be truncated and recreated.
	fp, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	if _, err := fp.WriteString(value); err != nil {
		_ = fp.Close()
		return err
	}
	return fp.Close()
}
