package agent

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	co "github.com/luscis/ifdhcp/pkg/config"
	"github.com/luscis/ifdhcp/pkg/dhcpc"
	"github.com/luscis/ifdhcp/pkg/libol"
	"github.com/luscis/ifdhcp/pkg/network"
	"github.com/luscis/ifdhcp/pkg/schema"
	"github.com/stretchr/testify/assert"
)

type pidRunner struct {
	calls []string
}

func (r *pidRunner) Run(bin string, args ...string) error {
	r.calls = append(r.calls, bin+" "+args[0])
	for i, arg := range args {
		if arg == "--pidfile" && args[0] == "--start" {
			_ = os.WriteFile(args[i+1], []byte(fmt.Sprintf("%d", os.Getpid())), 0600)
		}
	}
	return nil
}

func newTestAgent(t *testing.T) (*Agent, *pidRunner) {
	dir := t.TempDir()
	hostname := filepath.Join(dir, "hostname")
	_ = os.WriteFile(hostname, []byte("gw\n"), 0600)
	proc := filepath.Join(dir, "proc")
	_ = os.MkdirAll(filepath.Join(proc, "ipv6", "conf", "eth1"), 0700)
	_ = os.WriteFile(filepath.Join(proc, "ipv6", "conf", "eth1", "accept_ra"), []byte("1\n"), 0600)

	token := filepath.Join(dir, "token")
	_ = os.WriteFile(token, []byte("secret\n"), 0600)

	c := &co.Agent{
		Http:         &co.Http{Listen: ""},
		TokenFile:    token,
		Directory:    dir,
		ProcDir:      proc,
		HostnameFile: hostname,
		Clients: []*co.Dhcp{
			{Interface: "eth0"},
			{Interface: "eth1", Version: 6, ParamsOnly: true},
			{Interface: "eth2"},
			{Interface: "eth3", Version: 6, ParamsOnly: true, Temporary: true},
		},
	}
	c.Correct()
	c.Http.Listen = ""
	runner := &pidRunner{}
	cfg := dhcpc.NewConfig(c)
	cfg.Runner = runner

	a := NewAgentWith(c, cfg)
	a.linkState = func(name string) (*network.Link, error) {
		if name == "eth2" {
			return nil, libol.NewErr("Link not found")
		}
		return &network.Link{Name: name, State: "up"}, nil
	}
	a.Initialize()
	return a, runner
}

func TestAgentStartStop(t *testing.T) {
	a, runner := newTestAgent(t)
	assert.Equal(t, 3, len(a.Manager().List()), "invalid eth3 skipped")

	a.Start()
	assert.Equal(t, []string{
		"start-stop-daemon --start",
		"start-stop-daemon --start",
	}, runner.calls, "eth2 has no link")

	obj, err := a.GetClient("eth0", 4)
	assert.Nil(t, err, "get")
	assert.Equal(t, "running", obj.State, "be the same.")
	assert.Equal(t, "up", obj.Link, "be the same.")
	assert.Equal(t, "gw", obj.Hostname, "be the same.")

	obj, _ = a.GetClient("eth2", 4)
	assert.Equal(t, "stopped", obj.State, "be the same.")
	assert.Equal(t, "missing", obj.Link, "be the same.")

	var items []schema.DhcpClient
	a.ListClient(func(obj schema.DhcpClient) {
		items = append(items, obj)
	})
	assert.Equal(t, 3, len(items), "be the same.")

	a.Stop()
	assert.Equal(t, []string{
		"start-stop-daemon --start",
		"start-stop-daemon --start",
		"/sbin/dhclient -cf",
		"start-stop-daemon --stop",
	}, runner.calls, "be the same.")
}

func TestAgentRender(t *testing.T) {
	a, _ := newTestAgent(t)
	text, err := a.RenderClient("eth0", 4)
	assert.Nil(t, err, "render")
	assert.Contains(t, text, `send host-name "gw";`, "hostname")

	_, err = a.RenderClient("eth9", 4)
	assert.NotNil(t, err, "not found")
}

func TestAgentLease(t *testing.T) {
	a, _ := newTestAgent(t)
	text, err := a.LeaseClient("eth0", 4)
	assert.Nil(t, err, "no lease yet")
	assert.Equal(t, "", text, "be the same.")

	c, _ := a.Manager().Get("eth0", 4)
	_ = os.WriteFile(c.Files().Lease, []byte("lease {\n  interface \"eth0\";\n}\n"), 0600)
	text, err = a.LeaseClient("eth0", 4)
	assert.Nil(t, err, "lease")
	assert.Contains(t, text, `interface "eth0";`, "lease text")
}

func request(method, url, token string) *http.Request {
	r := httptest.NewRequest(method, url, nil)
	if token != "" {
		r.SetBasicAuth(token, "")
	}
	return r
}

func TestAgentHttp(t *testing.T) {
	a, _ := newTestAgent(t)
	router := a.http.Router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, request("POST", "/api/client/eth0/4/start", "secret"))
	assert.Equal(t, http.StatusOK, w.Code, "be the same.")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, request("GET", "/metrics", "secret"))
	assert.Equal(t, http.StatusOK, w.Code, "be the same.")
	assert.Contains(t, w.Body.String(), "ifdhcp_client_start_total", "metrics")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, request("GET", "/api/urls", "secret"))
	assert.Contains(t, w.Body.String(), "/api/client/{name}/{version}/start", "urls")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, request("GET", "/none", "secret"))
	assert.Equal(t, http.StatusNotFound, w.Code, "be the same.")

	_ = a.StopClient("eth0", 4)
}

func TestAgentHttpAuth(t *testing.T) {
	a, runner := newTestAgent(t)
	router := a.http.Router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, request("POST", "/api/client/eth0/4/start", ""))
	assert.Equal(t, http.StatusUnauthorized, w.Code, "no token")
	assert.Equal(t, "Basic", w.Header().Get("WWW-Authenticate"), "be the same.")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, request("POST", "/api/client/eth0/4/start", "wrong"))
	assert.Equal(t, http.StatusUnauthorized, w.Code, "wrong token")
	assert.Empty(t, runner.calls, "not started")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, request("GET", "/api/client", ""))
	assert.Equal(t, http.StatusUnauthorized, w.Code, "no token")
}

func TestHttpToken(t *testing.T) {
	file := filepath.Join(t.TempDir(), "token")
	h := NewHttp(nil, &co.Agent{TokenFile: file})
	h.LoadToken()
	h.SaveToken()
	assert.Equal(t, 32, len(h.adminToken), "generated")

	data, err := os.ReadFile(file)
	assert.Nil(t, err, "saved")
	assert.Equal(t, h.adminToken, string(data), "be the same.")

	other := NewHttp(nil, &co.Agent{TokenFile: file})
	other.LoadToken()
	assert.Equal(t, h.adminToken, other.adminToken, "reloaded")
}
