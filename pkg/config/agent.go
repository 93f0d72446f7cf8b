package config

import (
	"flag"
	"path/filepath"

	"github.com/luscis/ifdhcp/pkg/libol"
)

const (
	DefaultConf         = "/etc/ifdhcp/agent.yaml"
	DefaultTokenFile    = "/etc/ifdhcp/token"
	DefaultDirectory    = "/var/lib/dhcp"
	DefaultPrefix       = "dhclient_"
	DefaultProcDir      = "/proc/sys/net"
	DefaultHostnameFile = "/etc/hostname"
	DefaultDhclient     = "/sbin/dhclient"
	DefaultStartStop    = "start-stop-daemon"
)

// Agent is the configuration of the ifdhcp daemon.
type Agent struct {
	File         string  `json:"-" yaml:"-"`
	Log          Log     `json:"log" yaml:"log"`
	Http         *Http   `json:"http,omitempty" yaml:"http,omitempty"`
	TokenFile    string  `json:"tokenFile,omitempty" yaml:"tokenFile,omitempty"`
	Directory    string  `json:"directory,omitempty" yaml:"directory,omitempty"`
	Prefix       string  `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	ProcDir      string  `json:"procDir,omitempty" yaml:"procDir,omitempty"`
	HostnameFile string  `json:"hostnameFile,omitempty" yaml:"hostnameFile,omitempty"`
	Dhclient     string  `json:"dhclient,omitempty" yaml:"dhclient,omitempty"`
	StartStop    string  `json:"startStop,omitempty" yaml:"startStop,omitempty"`
	Clients      []*Dhcp `json:"clients,omitempty" yaml:"clients,omitempty"`
}

func NewAgent() *Agent {
	a := &Agent{}
	a.Parse()
	a.Initialize()
	return a
}

func (a *Agent) Parse() {
	flag.StringVar(&a.File, "conf", DefaultConf, "Configure agent's file")
	flag.StringVar(&a.Log.File, "log:file", "", "Configure log file")
	flag.StringVar(&a.TokenFile, "token:file", "", "Configure admin token file")
	flag.IntVar(&a.Log.Verbose, "log:level", libol.INFO, "Configure log level")
	flag.Parse()
}

func (a *Agent) Initialize() {
	if err := a.Load(); err != nil {
		libol.Error("Agent.Initialize %s", err)
	}
	a.Correct()
	libol.Debug("Agent.Initialize %v", a)
}

func (a *Agent) Load() error {
	return libol.UnmarshalLoad(a, a.File)
}

func (a *Agent) Correct() {
	a.Log.Correct()
	if a.Http == nil {
		a.Http = &Http{}
	}
	a.Http.Correct()
	if a.TokenFile == "" {
		a.TokenFile = DefaultTokenFile
	}
	if a.Directory == "" {
		a.Directory = DefaultDirectory
	}
	if a.Prefix == "" {
		a.Prefix = DefaultPrefix
	}
	if a.ProcDir == "" {
		a.ProcDir = DefaultProcDir
	}
	if a.HostnameFile == "" {
		a.HostnameFile = DefaultHostnameFile
	}
	if a.Dhclient == "" {
		a.Dhclient = DefaultDhclient
	}
	if a.StartStop == "" {
		a.StartStop = DefaultStartStop
	}
	for _, c := range a.Clients {
		c.Correct()
	}
}

// Base is the common prefix of per-interface files.
func (a *Agent) Base() string {
	return filepath.Join(a.Directory, a.Prefix)
}
