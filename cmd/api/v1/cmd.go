package v1

import (
	"strings"

	"github.com/luscis/ifdhcp/cmd/api"
	"github.com/luscis/ifdhcp/pkg/libol"
	"github.com/urfave/cli/v2"
)

// Before falls back to the token the agent saved on this host.
func Before(c *cli.Context) error {
	if c.String("token") != "" {
		return nil
	}
	if data, err := libol.LoadFile(api.AdminTokenFile); err == nil {
		_ = c.Set("token", strings.TrimSpace(string(data)))
	}
	return nil
}

func Commands(app *api.App) {
	app.Before = Before
	Version{}.Commands(app)
	Dhcp{}.Commands(app)
	Log{}.Commands(app)
}
