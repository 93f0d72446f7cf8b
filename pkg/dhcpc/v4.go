package dhcpc

import (
	"strings"

	"github.com/luscis/ifdhcp/pkg/schema"
)

type V4Options struct {
	// Hostname defaults to the system hostname when empty.
	Hostname      string
	ClientId      string
	VendorClassId string
}

type V4Client struct {
	client
	opts V4Options
}

func NewV4Client(name string, cfg *Config) *V4Client {
	files := Files{
		Conf:  cfg.Base + name + ".conf",
		Pid:   cfg.Base + name + ".pid",
		Lease: cfg.Base + name + ".leases",
	}
	return &V4Client{
		client: newClient(name, 4, files, cfg),
	}
}

func (c *V4Client) Options() V4Options {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.opts
}

func (c *V4Client) SetOptions(opts V4Options) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.opts = opts
}

func (c *V4Client) validate(op string, opts V4Options) error {
	values := map[string]string{
		"hostname":        opts.Hostname,
		"client-id":       opts.ClientId,
		"vendor-class-id": opts.VendorClassId,
	}
	for key, value := range values {
		if strings.ContainsAny(value, "\"\\\r\n") {
			return configErrorf(op, "%s: invalid %s %q", c.name, key, value)
		}
	}
	return nil
}

// effective fills an empty hostname from the system hostname.
func (c *V4Client) effective(op string) (V4Options, error) {
	opts := c.Options()
	if err := c.validate(op, opts); err != nil {
		return opts, err
	}
	if opts.Hostname != "" {
		return opts, nil
	}
	name, err := c.cfg.Hostname()
	if err != nil {
		return opts, newError(IOError, op, err)
	}
	opts.Hostname = name
	if err := c.validate(op, opts); err != nil {
		return opts, err
	}
	return opts, nil
}

func (c *V4Client) Render() (string, error) {
	opts, err := c.effective("V4Client.Render")
	if err != nil {
		return "", err
	}
	return RenderV4(c.name, opts)
}

func (c *V4Client) Start() error {
	return c.doStart(func() error {
		op := "V4Client.Start"
		opts, err := c.effective(op)
		if err != nil {
			return err
		}
		c.SetOptions(opts)
		text, err := RenderV4(c.name, opts)
		if err != nil {
			return newError(ConfigError, op, err)
		}
		if err := c.writeConf(op, text); err != nil {
			return err
		}
		return c.launch(op)
	})
}

// Stop releases the lease by dhclient -r, which also ends the process.
func (c *V4Client) Stop() error {
	return c.doStop(func() error {
		args := []string{
			"-cf", c.files.Conf,
			"-pf", c.files.Pid,
			"-lf", c.files.Lease,
			"-r", c.name,
		}
		if err := c.cfg.Runner.Run(c.cfg.Dhclient, args...); err != nil {
			return newError(ProcessError, "V4Client.Stop", err)
		}
		return nil
	})
}

func (c *V4Client) Status() schema.DhcpClient {
	obj := c.status()
	opts := c.Options()
	obj.Hostname = opts.Hostname
	obj.ClientId = opts.ClientId
	obj.VendorClassId = opts.VendorClassId
	return obj
}
