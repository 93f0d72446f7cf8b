package dhcpc

import (
	"github.com/luscis/ifdhcp/pkg/schema"
)

// V6Options are mutually exclusive.
type V6Options struct {
	// ParamsOnly requests only configuration parameters, dhclient -S.
	ParamsOnly bool
	// Temporary requests a temporary address, dhclient -T.
	Temporary bool
}

type V6Client struct {
	client
	opts     V6Options
	acceptRA string
}

func NewV6Client(name string, cfg *Config) *V6Client {
	files := Files{
		Conf:  cfg.Base + name + ".v6conf",
		Pid:   cfg.Base + name + ".v6pid",
		Lease: cfg.Base + name + ".v6leases",
	}
	return &V6Client{
		client:   newClient(name, 6, files, cfg),
		acceptRA: cfg.Control.AcceptRA(name),
	}
}

func (c *V6Client) Options() V6Options {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.opts
}

func (c *V6Client) SetOptions(opts V6Options) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.opts = opts
}

func (c *V6Client) AcceptRA() string {
	return c.acceptRA
}

func (c *V6Client) validate(op string, opts V6Options) error {
	if opts.ParamsOnly && opts.Temporary {
		return configErrorf(op, "%s: temporary and parameters-only options are mutually exclusive", c.name)
	}
	return nil
}

func (c *V6Client) Render() (string, error) {
	return RenderV6(c.name)
}

func (c *V6Client) Start() error {
	return c.doStart(func() error {
		op := "V6Client.Start"
		opts := c.Options()
		if err := c.validate(op, opts); err != nil {
			return err
		}
		text, err := RenderV6(c.name)
		if err != nil {
			return newError(ConfigError, op, err)
		}
		if err := c.writeConf(op, text); err != nil {
			return err
		}
		// Addressing is managed by DHCPv6 from now on.
		if err := c.cfg.Control.Write(c.acceptRA, "0"); err != nil {
			return newError(IOError, op, err)
		}
		var extra []string
		if opts.ParamsOnly {
			extra = append(extra, "-S")
		}
		if opts.Temporary {
			extra = append(extra, "-T")
		}
		if err := c.launch(op, extra...); err != nil {
			// No pid file is left for Stop, give RA back now.
			if err := c.cfg.Control.Write(c.acceptRA, "1"); err != nil {
				c.out.Warn("%s %s", op, err)
			}
			return err
		}
		return nil
	})
}

func (c *V6Client) Stop() error {
	return c.doStop(func() error {
		op := "V6Client.Stop"
		args := []string{
			"--stop", "--oknodo", "--quiet",
			"--pidfile", c.files.Pid,
		}
		if err := c.cfg.Runner.Run(c.cfg.StartStop, args...); err != nil {
			return newError(ProcessError, op, err)
		}
		if err := c.cfg.Control.Write(c.acceptRA, "1"); err != nil {
			c.out.Warn("%s %s", op, err)
		}
		return nil
	})
}

func (c *V6Client) Status() schema.DhcpClient {
	obj := c.status()
	opts := c.Options()
	obj.ParamsOnly = opts.ParamsOnly
	obj.Temporary = opts.Temporary
	obj.Files.AcceptRA = c.acceptRA
	return obj
}
