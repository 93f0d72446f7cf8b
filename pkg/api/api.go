package api

import (
	"github.com/gorilla/mux"
	"github.com/luscis/ifdhcp/pkg/schema"
)

// Dhcper is implemented by the agent owning the DHCP clients.
type Dhcper interface {
	ListClient(call func(obj schema.DhcpClient))
	GetClient(name string, version int) (schema.DhcpClient, error)
	StartClient(name string, version int) error
	StopClient(name string, version int) error
	RenderClient(name string, version int) (string, error)
	LeaseClient(name string, version int) (string, error)
}

func Add(router *mux.Router, dhcper Dhcper) {
	Client{Dhcper: dhcper}.Router(router)
	Log{}.Router(router)
	Version{}.Router(router)
}
