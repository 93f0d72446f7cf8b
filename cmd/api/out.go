package api

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/template"

	"github.com/ghodss/yaml"
	"github.com/luscis/ifdhcp/pkg/libol"
)

var Output io.Writer = os.Stdout

func OutJson(data interface{}) error {
	out, err := libol.Marshal(data, true)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(Output, string(out))
	return err
}

func OutYaml(data interface{}) error {
	out, err := yaml.Marshal(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(Output, string(out))
	return err
}

func pad(space int, verb string) string {
	if space < 0 {
		return "%-" + strconv.Itoa(-space) + verb
	}
	return "%" + strconv.Itoa(space) + verb
}

var funcMap = template.FuncMap{
	"ps": func(space int, value interface{}) string {
		return fmt.Sprintf(pad(space, "v"), value)
	},
	"pi": func(space int, value int) string {
		if value == 0 {
			return fmt.Sprintf(pad(space, "s"), "-")
		}
		return fmt.Sprintf(pad(space, "d"), value)
	},
	"pb": func(space int, value bool) string {
		if value {
			return fmt.Sprintf(pad(space, "s"), "yes")
		}
		return fmt.Sprintf(pad(space, "s"), "no")
	},
}

func OutTable(data interface{}, tmpl string) error {
	t, err := template.New("main").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return err
	}
	return t.Execute(Output, data)
}

func Out(data interface{}, format string, tmpl string) error {
	libol.Debug("Out %s %s", format, tmpl)
	switch format {
	case "json":
		return OutJson(data)
	case "yaml":
		return OutYaml(data)
	default:
		if tmpl == "" {
			return OutYaml(data)
		}
		return OutTable(data, tmpl)
	}
}
