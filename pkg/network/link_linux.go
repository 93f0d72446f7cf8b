package network

import (
	nl "github.com/vishvananda/netlink"
)

// LinkState returns the operational state of the interface name.
func LinkState(name string) (*Link, error) {
	link, err := nl.LinkByName(name)
	if err != nil {
		return nil, err
	}
	attrs := link.Attrs()
	obj := &Link{
		Name:  attrs.Name,
		Index: attrs.Index,
		Mtu:   attrs.MTU,
		State: attrs.OperState.String(),
	}
	if attrs.HardwareAddr != nil {
		obj.HwAddr = attrs.HardwareAddr.String()
	}
	return obj, nil
}
