//go:build !linux

package network

import (
	"runtime"

	"github.com/luscis/ifdhcp/pkg/libol"
)

func LinkState(name string) (*Link, error) {
	return nil, libol.NewErr("LinkState %s notSupport", runtime.GOOS)
}
