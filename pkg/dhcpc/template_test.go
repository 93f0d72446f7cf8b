package dhcpc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderV4(t *testing.T) {
	text, err := RenderV4("eth0", V4Options{Hostname: "gw"})
	assert.Nil(t, err, "render")
	expected := `# Generate by ifdhcp
option rfc3442-classless-static-routes code 121 = array of unsigned integer 8;
timeout 60;
retry 300;

interface "eth0" {
    send host-name "gw";
    request subnet-mask, broadcast-address, routers, domain-name-servers,
        rfc3442-classless-static-routes, domain-name, interface-mtu;
    require subnet-mask;
}
`
	assert.Equal(t, expected, text, "be the same.")
}

func TestRenderV4ClientId(t *testing.T) {
	text, _ := RenderV4("eth0", V4Options{Hostname: "gw", ClientId: ""})
	assert.NotContains(t, text, "dhcp-client-identifier", "omitted")

	text, _ = RenderV4("eth0", V4Options{Hostname: "gw", ClientId: "abc"})
	assert.Equal(t, 1, strings.Count(text, `    send dhcp-client-identifier "abc";`+"\n"), "exactly once")
	assert.NotContains(t, text, "vendor-class-identifier", "omitted")
}

func TestRenderV4VendorClassId(t *testing.T) {
	text, _ := RenderV4("eth0", V4Options{Hostname: "gw", ClientId: "abc", VendorClassId: "vyos"})
	lines := strings.Split(text, "\n")
	assert.Equal(t, `    send host-name "gw";`, lines[6], "be the same.")
	assert.Equal(t, `    send dhcp-client-identifier "abc";`, lines[7], "be the same.")
	assert.Equal(t, `    send vendor-class-identifier "vyos";`, lines[8], "be the same.")
	assert.Equal(t, `    request subnet-mask, broadcast-address, routers, domain-name-servers,`, lines[9], "be the same.")
}

func TestRenderV6(t *testing.T) {
	text, err := RenderV6("eth1")
	assert.Nil(t, err, "render")
	expected := `# Generate by ifdhcp
interface "eth1" {
    request routers, domain-name-servers, domain-name;
}
`
	assert.Equal(t, expected, text, "be the same.")
}
