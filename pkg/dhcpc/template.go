package dhcpc

import (
	"bytes"
	"text/template"
)

const (
	v4ConfTmpl = `# Generate by ifdhcp
option rfc3442-classless-static-routes code 121 = array of unsigned integer 8;
timeout 60;
retry 300;

interface "{{ .Interface }}" {
    send host-name "{{ .Hostname }}";
{{- if .ClientId }}
    send dhcp-client-identifier "{{ .ClientId }}";
{{- end }}
{{- if .VendorClassId }}
    send vendor-class-identifier "{{ .VendorClassId }}";
{{- end }}
    request subnet-mask, broadcast-address, routers, domain-name-servers,
        rfc3442-classless-static-routes, domain-name, interface-mtu;
    require subnet-mask;
}
`
	v6ConfTmpl = `# Generate by ifdhcp
interface "{{ .Interface }}" {
    request routers, domain-name-servers, domain-name;
}
`
)

var (
	v4Tmpl = template.Must(template.New("v4").Parse(v4ConfTmpl))
	v6Tmpl = template.Must(template.New("v6").Parse(v6ConfTmpl))
)

type v4ConfData struct {
	Interface     string
	Hostname      string
	ClientId      string
	VendorClassId string
}

type v6ConfData struct {
	Interface string
}

func execute(tmpl *template.Template, data interface{}) (string, error) {
	var out bytes.Buffer
	if err := tmpl.Execute(&out, data); err != nil {
		return "", err
	}
	return out.String(), nil
}

func RenderV4(name string, opts V4Options) (string, error) {
	return execute(v4Tmpl, &v4ConfData{
		Interface:     name,
		Hostname:      opts.Hostname,
		ClientId:      opts.ClientId,
		VendorClassId: opts.VendorClassId,
	})
}

func RenderV6(name string) (string, error) {
	return execute(v6Tmpl, &v6ConfData{Interface: name})
}
