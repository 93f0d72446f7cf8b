package config

import (
	"fmt"
	"strings"

	"github.com/luscis/ifdhcp/pkg/libol"
)

const (
	DhcpV4 = 4
	DhcpV6 = 6
)

// Dhcp describes one DHCP client on an interface.
type Dhcp struct {
	Interface     string `json:"interface" yaml:"interface"`
	Version       int    `json:"version,omitempty" yaml:"version,omitempty"`
	Hostname      string `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	ClientId      string `json:"clientId,omitempty" yaml:"clientId,omitempty"`
	VendorClassId string `json:"vendorClassId,omitempty" yaml:"vendorClassId,omitempty"`
	ParamsOnly    bool   `json:"paramsOnly,omitempty" yaml:"paramsOnly,omitempty"`
	Temporary     bool   `json:"temporary,omitempty" yaml:"temporary,omitempty"`
}

func (d *Dhcp) Correct() {
	if d.Version == 0 {
		d.Version = DhcpV4
	}
}

func (d *Dhcp) Id() string {
	return fmt.Sprintf("%s/%d", d.Interface, d.Version)
}

func (d *Dhcp) Validate() error {
	if d.Interface == "" {
		return libol.NewErr("dhcp: interface is required")
	}
	if strings.ContainsAny(d.Interface, "/\" \t\n") {
		return libol.NewErr("dhcp: invalid interface %q", d.Interface)
	}
	switch d.Version {
	case DhcpV4:
		if d.ParamsOnly || d.Temporary {
			return libol.NewErr("%s: paramsOnly and temporary are DHCPv6 options", d.Id())
		}
	case DhcpV6:
		if d.ParamsOnly && d.Temporary {
			return libol.NewErr("%s: temporary and paramsOnly are mutually exclusive", d.Id())
		}
		if d.Hostname != "" || d.ClientId != "" || d.VendorClassId != "" {
			return libol.NewErr("%s: hostname, clientId and vendorClassId are DHCPv4 options", d.Id())
		}
	default:
		return libol.NewErr("%s: unknown version %d", d.Interface, d.Version)
	}
	return nil
}
