package network

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSysctlAcceptRA(t *testing.T) {
	s := NewSysctl("/proc/sys/net")
	assert.Equal(t, "/proc/sys/net/ipv6/conf/eth1/accept_ra", s.AcceptRA("eth1"), "be the same.")
}

func TestSysctlWrite(t *testing.T) {
	root := t.TempDir()
	s := NewSysctl(root)
	file := s.AcceptRA("eth1")
	_ = os.MkdirAll(filepath.Dir(file), 0700)
	_ = os.WriteFile(file, []byte("1\n"), 0600)

	assert.Nil(t, s.Write(file, "0"), "write")
	data, err := os.ReadFile(file)
	assert.Nil(t, err, "read")
	assert.Equal(t, "0\n", string(data), "no truncate")

	assert.NotNil(t, s.Write(s.AcceptRA("eth9"), "0"), "missing knob")
}
