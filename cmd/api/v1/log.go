package v1

import (
	"fmt"

	"github.com/luscis/ifdhcp/cmd/api"
	"github.com/luscis/ifdhcp/pkg/libol"
	"github.com/luscis/ifdhcp/pkg/schema"
	"github.com/urfave/cli/v2"
)

type Log struct {
	Cmd
}

func (l Log) Url(prefix, action string) string {
	if action == "" {
		return prefix + "/api/log"
	}
	return prefix + "/api/log/" + action
}

func (l Log) Tmpl() string {
	return `{{- range . }}
{{ .Date }} {{ps -5 .Level}} {{ps -10 .Module}} {{ .Message }}
{{- end }}
`
}

func (l Log) List(c *cli.Context) error {
	url := l.Url(c.String("url"), "message") + fmt.Sprintf("?size=%d", c.Int("size"))
	clt := l.NewHttp(c.String("token"))
	var items []schema.LogMessage
	if err := clt.GetJSON(url, &items); err != nil {
		return err
	}
	return l.Out(items, c.String("format"), l.Tmpl())
}

func (l Log) Level(c *cli.Context) error {
	url := l.Url(c.String("url"), "")
	clt := l.NewHttp(c.String("token"))
	data := &schema.Log{
		Level: libol.ParseLevel(c.String("level")),
	}
	return clt.PostJSON(url, data, nil)
}

func (l Log) Commands(app *api.App) {
	app.Command(&cli.Command{
		Name:   "log",
		Usage:  "Show agent log",
		Action: l.List,
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "size", Value: 50},
		},
		Subcommands: []*cli.Command{
			{
				Name:  "level",
				Usage: "Set log level: debug|cmd|info|warn|error",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "level", Required: true},
				},
				Action: l.Level,
			},
		},
	})
}
