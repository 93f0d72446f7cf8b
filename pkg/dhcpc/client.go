package dhcpc

import (
	"fmt"
	"sync"

	"github.com/luscis/ifdhcp/pkg/config"
	"github.com/luscis/ifdhcp/pkg/libol"
	"github.com/luscis/ifdhcp/pkg/network"
	"github.com/luscis/ifdhcp/pkg/schema"
)

type State int

const (
	Stopped State = iota
	Starting
	Running
	Stopping
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Starting:
		return "starting"
	case Running:
		return "running"
	case Stopping:
		return "stopping"
	}
	return "unknown"
}

// Client supervises one dhclient process of an interface and version.
type Client interface {
	Name() string
	Version() int
	Files() Files
	State() State
	Pid() (int, error)
	Running() bool
	Lease() (string, error)
	Render() (string, error)
	Start() error
	Stop() error
	Status() schema.DhcpClient
}

// Files generated for a client, all derived from the interface name.
type Files struct {
	Conf  string
	Pid   string
	Lease string
}

type Config struct {
	// Base is joined with the interface name, e.g. /var/lib/dhcp/dhclient_.
	Base      string
	Dhclient  string
	StartStop string
	Hostname  func() (string, error)
	Runner    Runner
	Control   Controller
}

func NewConfig(c *config.Agent) *Config {
	return &Config{
		Base:      c.Base(),
		Dhclient:  c.Dhclient,
		StartStop: c.StartStop,
		Hostname:  HostnameFile(c.HostnameFile),
		Runner:    NewExecRunner(),
		Control:   network.NewSysctl(c.ProcDir),
	}
}

func DefaultConfig() *Config {
	c := &config.Agent{}
	c.Correct()
	return NewConfig(c)
}

// NewClient builds the client for the version of c.
func NewClient(c *config.Dhcp, cfg *Config) (Client, error) {
	switch c.Version {
	case config.DhcpV4:
		obj := NewV4Client(c.Interface, cfg)
		obj.SetOptions(V4Options{
			Hostname:      c.Hostname,
			ClientId:      c.ClientId,
			VendorClassId: c.VendorClassId,
		})
		return obj, nil
	case config.DhcpV6:
		obj := NewV6Client(c.Interface, cfg)
		obj.SetOptions(V6Options{
			ParamsOnly: c.ParamsOnly,
			Temporary:  c.Temporary,
		})
		return obj, nil
	}
	return nil, configErrorf("NewClient", "%s: unknown version %d", c.Interface, c.Version)
}

type client struct {
	name    string
	version int
	files   Files
	cfg     *Config
	state   State
	lock    sync.RWMutex
	out     *libol.SubLogger
}

func newClient(name string, version int, files Files, cfg *Config) client {
	return client{
		name:    name,
		version: version,
		files:   files,
		cfg:     cfg,
		out:     libol.NewSubLogger(fmt.Sprintf("%s/%d", name, version)),
	}
}

func (c *client) Name() string {
	return c.name
}

func (c *client) Version() int {
	return c.version
}

func (c *client) Files() Files {
	return c.files
}

func (c *client) State() State {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.state
}

func (c *client) setState(state State) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.state != Running && state == Running {
		runningGauge.WithLabelValues(c.label()).Inc()
	} else if c.state == Running && state != Running {
		runningGauge.WithLabelValues(c.label()).Dec()
	}
	c.state = state
}

func (c *client) label() string {
	return fmt.Sprintf("v%d", c.version)
}

func (c *client) Pid() (int, error) {
	return libol.ReadPid(c.files.Pid)
}

func (c *client) Running() bool {
	pid, err := c.Pid()
	if err != nil {
		return false
	}
	return libol.IsProcessRunning(pid)
}

// Lease returns the text of the lease file, empty before the first lease.
func (c *client) Lease() (string, error) {
	if err := libol.FileExist(c.files.Lease); err != nil {
		return "", nil
	}
	data, err := libol.LoadFile(c.files.Lease)
	if err != nil {
		return "", newError(IOError, "Client.Lease", err)
	}
	return string(data), nil
}

func (c *client) hasPid() bool {
	return libol.FileExist(c.files.Pid) == nil
}

func (c *client) writeConf(op, text string) error {
	c.out.Debug("%s %s", op, c.files.Conf)
	if err := libol.WriteFile(c.files.Conf, []byte(text)); err != nil {
		return newError(IOError, op, err)
	}
	return nil
}

// startArgs is the start-stop-daemon command line launching dhclient.
func (c *client) startArgs(extra ...string) []string {
	args := []string{
		"--start", "--oknodo", "--quiet",
		"--pidfile", c.files.Pid,
		"--exec", c.cfg.Dhclient,
		"--",
		fmt.Sprintf("-%d", c.version), "-nw",
		"-cf", c.files.Conf,
		"-pf", c.files.Pid,
		"-lf", c.files.Lease,
	}
	args = append(args, extra...)
	return append(args, c.name)
}

func (c *client) launch(op string, extra ...string) error {
	if err := c.cfg.Runner.Run(c.cfg.StartStop, c.startArgs(extra...)...); err != nil {
		return newError(ProcessError, op, err)
	}
	return nil
}

// clean removes generated files, failures are only logged.
func (c *client) clean() {
	for _, file := range []string{c.files.Conf, c.files.Pid, c.files.Lease} {
		if err := libol.RemoveFile(file); err != nil {
			c.out.Warn("Client.Clean %s", err)
		}
	}
}

// doStart moves the state through Starting and counts the outcome.
func (c *client) doStart(start func() error) error {
	prev := c.State()
	c.setState(Starting)
	if err := start(); err != nil {
		errorTotal.WithLabelValues(c.label(), KindOf(err).String()).Inc()
		c.out.Error("Client.Start %s", err)
		if prev == Running {
			c.setState(Running)
		} else {
			c.setState(Stopped)
		}
		return err
	}
	startTotal.WithLabelValues(c.label()).Inc()
	c.setState(Running)
	c.out.Info("Client.Start %s", c.name)
	return nil
}

func (c *client) doStop(stop func() error) error {
	if !c.hasPid() {
		c.out.Info("Client.Stop not running")
		c.setState(Stopped)
		return nil
	}
	prev := c.State()
	c.setState(Stopping)
	if err := stop(); err != nil {
		errorTotal.WithLabelValues(c.label(), KindOf(err).String()).Inc()
		c.out.Error("Client.Stop %s", err)
		c.setState(prev)
		return err
	}
	c.clean()
	stopTotal.WithLabelValues(c.label()).Inc()
	c.setState(Stopped)
	c.out.Info("Client.Stop %s", c.name)
	return nil
}

func (c *client) status() schema.DhcpClient {
	obj := schema.DhcpClient{
		Name:    c.name,
		Version: c.version,
		State:   c.State().String(),
		Files: schema.DhcpFiles{
			Conf:  c.files.Conf,
			Pid:   c.files.Pid,
			Lease: c.files.Lease,
		},
	}
	if pid, err := c.Pid(); err == nil {
		obj.Pid = pid
		obj.Running = libol.IsProcessRunning(pid)
	}
	return obj
}
