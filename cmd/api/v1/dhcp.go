package v1

import (
	"fmt"

	"github.com/luscis/ifdhcp/cmd/api"
	"github.com/luscis/ifdhcp/pkg/schema"
	"github.com/urfave/cli/v2"
)

type Dhcp struct {
	Cmd
}

func (d Dhcp) Url(prefix, name string, version int, action string) string {
	if name == "" {
		return prefix + "/api/client"
	}
	url := fmt.Sprintf("%s/api/client/%s/%d", prefix, name, version)
	if action != "" {
		url += "/" + action
	}
	return url
}

func (d Dhcp) Tmpl() string {
	return `# total {{ len . }}
{{ps -15 "interface"}} {{ps -7 "version"}} {{ps -9 "state"}} {{ps -8 "pid"}} {{ps -7 "alive"}} {{ps -8 "link"}}
{{- range . }}
{{ps -15 .Name}} {{ps -7 .Version}} {{ps -9 .State}} {{pi -8 .Pid}} {{pb -7 .Running}} {{ps -8 .Link}}
{{- end }}
`
}

func (d Dhcp) List(c *cli.Context) error {
	url := d.Url(c.String("url"), "", 0, "")
	clt := d.NewHttp(c.String("token"))
	var items []schema.DhcpClient
	if err := clt.GetJSON(url, &items); err != nil {
		return err
	}
	return d.Out(items, c.String("format"), d.Tmpl())
}

func (d Dhcp) Get(c *cli.Context) error {
	url := d.Url(c.String("url"), c.String("interface"), c.Int("version"), "")
	clt := d.NewHttp(c.String("token"))
	var item schema.DhcpClient
	if err := clt.GetJSON(url, &item); err != nil {
		return err
	}
	format := c.String("format")
	if format == "table" {
		format = "yaml"
	}
	return d.Out(item, format, "")
}

func (d Dhcp) Start(c *cli.Context) error {
	url := d.Url(c.String("url"), c.String("interface"), c.Int("version"), "start")
	clt := d.NewHttp(c.String("token"))
	return clt.PostJSON(url, nil, nil)
}

func (d Dhcp) Stop(c *cli.Context) error {
	url := d.Url(c.String("url"), c.String("interface"), c.Int("version"), "stop")
	clt := d.NewHttp(c.String("token"))
	return clt.PostJSON(url, nil, nil)
}

func (d Dhcp) Conf(c *cli.Context) error {
	url := d.Url(c.String("url"), c.String("interface"), c.Int("version"), "conf")
	clt := d.NewHttp(c.String("token"))
	body, err := clt.GetBody(url)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(api.Output, string(body))
	return err
}

func (d Dhcp) Lease(c *cli.Context) error {
	url := d.Url(c.String("url"), c.String("interface"), c.Int("version"), "lease")
	clt := d.NewHttp(c.String("token"))
	body, err := clt.GetBody(url)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(api.Output, string(body))
	return err
}

func (d Dhcp) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "interface", Aliases: []string{"i"}, Required: true},
		&cli.IntFlag{Name: "version", Value: 4},
	}
}

func (d Dhcp) Commands(app *api.App) {
	app.Command(&cli.Command{
		Name:    "client",
		Aliases: []string{"cl"},
		Usage:   "DHCP clients of interfaces",
		Action:  d.List,
		Subcommands: []*cli.Command{
			{
				Name:    "list",
				Usage:   "Display all clients",
				Aliases: []string{"ls"},
				Action:  d.List,
			},
			{
				Name:   "get",
				Usage:  "Display a client",
				Flags:  d.Flags(),
				Action: d.Get,
			},
			{
				Name:   "start",
				Usage:  "Start a client",
				Flags:  d.Flags(),
				Action: d.Start,
			},
			{
				Name:   "stop",
				Usage:  "Stop a client and release its lease",
				Flags:  d.Flags(),
				Action: d.Stop,
			},
			{
				Name:    "conf",
				Usage:   "Display the dhclient configuration",
				Aliases: []string{"render"},
				Flags:   d.Flags(),
				Action:  d.Conf,
			},
			{
				Name:   "lease",
				Usage:  "Display the lease file",
				Flags:  d.Flags(),
				Action: d.Lease,
			},
		},
	})
}
