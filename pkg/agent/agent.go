package agent

import (
	co "github.com/luscis/ifdhcp/pkg/config"
	"github.com/luscis/ifdhcp/pkg/dhcpc"
	"github.com/luscis/ifdhcp/pkg/libol"
	"github.com/luscis/ifdhcp/pkg/network"
	"github.com/luscis/ifdhcp/pkg/schema"
)

type Agent struct {
	cfg     *co.Agent
	dhcp    *dhcpc.Config
	manager *dhcpc.Manager
	http    *Http
	out     *libol.SubLogger
	// linkState is swapped in tests.
	linkState func(name string) (*network.Link, error)
}

func NewAgent(c *co.Agent) *Agent {
	return NewAgentWith(c, dhcpc.NewConfig(c))
}

func NewAgentWith(c *co.Agent, dhcp *dhcpc.Config) *Agent {
	a := &Agent{
		cfg:       c,
		dhcp:      dhcp,
		manager:   dhcpc.NewManager(),
		out:       libol.NewSubLogger("agent"),
		linkState: network.LinkState,
	}
	a.http = NewHttp(a, c)
	return a
}

func (a *Agent) Manager() *dhcpc.Manager {
	return a.manager
}

func (a *Agent) Initialize() {
	for _, c := range a.cfg.Clients {
		if err := c.Validate(); err != nil {
			a.out.Error("Agent.Initialize %s", err)
			continue
		}
		obj, err := dhcpc.NewClient(c, a.dhcp)
		if err != nil {
			a.out.Error("Agent.Initialize %s", err)
			continue
		}
		if err := a.manager.Add(obj); err != nil {
			a.out.Warn("Agent.Initialize %s", err)
		}
	}
	a.http.Initialize()
}

func (a *Agent) Start() {
	a.out.Info("Agent.Start")
	for _, c := range a.manager.List() {
		if _, err := a.linkState(c.Name()); err != nil {
			a.out.Warn("Agent.Start %s: %s", c.Name(), err)
			continue
		}
		if err := a.manager.EnsureStarted(c.Name(), c.Version()); err != nil {
			a.out.Error("Agent.Start %s", err)
		}
	}
	a.http.Start()
}

func (a *Agent) Stop() {
	a.out.Info("Agent.Stop")
	a.http.Shutdown()
	if err := a.manager.StopAll(); err != nil {
		a.out.Error("Agent.Stop %s", err)
	}
}

func (a *Agent) status(c dhcpc.Client) schema.DhcpClient {
	obj := c.Status()
	if link, err := a.linkState(c.Name()); err == nil {
		obj.Link = link.State
	} else {
		obj.Link = "missing"
	}
	return obj
}

func (a *Agent) ListClient(call func(obj schema.DhcpClient)) {
	for _, c := range a.manager.List() {
		call(a.status(c))
	}
}

func (a *Agent) GetClient(name string, version int) (schema.DhcpClient, error) {
	c, err := a.manager.Get(name, version)
	if err != nil {
		return schema.DhcpClient{}, err
	}
	return a.status(c), nil
}

func (a *Agent) StartClient(name string, version int) error {
	return a.manager.EnsureStarted(name, version)
}

func (a *Agent) StopClient(name string, version int) error {
	return a.manager.EnsureStopped(name, version)
}

func (a *Agent) RenderClient(name string, version int) (string, error) {
	c, err := a.manager.Get(name, version)
	if err != nil {
		return "", err
	}
	return c.Render()
}

func (a *Agent) LeaseClient(name string, version int) (string, error) {
	c, err := a.manager.Get(name, version)
	if err != nil {
		return "", err
	}
	return c.Lease()
}
