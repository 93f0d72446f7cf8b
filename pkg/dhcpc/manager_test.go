package dhcpc

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/luscis/ifdhcp/pkg/config"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestManagerAddGet(t *testing.T) {
	env := newTestEnv(t, "gw\n")
	m := NewManager()

	assert.Nil(t, m.Add(NewV4Client("eth0", env.cfg)), "add v4")
	assert.Nil(t, m.Add(NewV6Client("eth0", env.cfg)), "add v6")
	assert.NotNil(t, m.Add(NewV4Client("eth0", env.cfg)), "duplicated")

	c, err := m.Get("eth0", 6)
	assert.Nil(t, err, "get")
	assert.Equal(t, 6, c.Version(), "be the same.")

	_, err = m.Get("eth9", 4)
	assert.True(t, errors.Is(err, ErrNotFound), "not found")

	items := m.List()
	if assert.Equal(t, 2, len(items), "be the same.") {
		assert.Equal(t, 4, items[0].Version(), "sorted by key")
		assert.Equal(t, 6, items[1].Version(), "sorted by key")
	}
}

func TestManagerEnsure(t *testing.T) {
	env := newTestEnv(t, "gw\n")
	m := NewManager()
	_ = m.Add(NewV4Client("eth0", env.cfg))

	assert.Nil(t, m.EnsureStopped("eth0", 4), "already stopped")
	assert.Empty(t, env.runner.calls, "no process invocation")

	assert.Nil(t, m.EnsureStarted("eth0", 4), "start")
	assert.Nil(t, m.EnsureStarted("eth0", 4), "already started")
	assert.Equal(t, 1, len(env.runner.calls), "started once")

	assert.Nil(t, m.EnsureStopped("eth0", 4), "stop")
	assert.Nil(t, m.EnsureStopped("eth0", 4), "already stopped")
	assert.Equal(t, 2, len(env.runner.calls), "stopped once")

	assert.True(t, errors.Is(m.EnsureStarted("eth9", 4), ErrNotFound), "not found")
}

func TestManagerAll(t *testing.T) {
	env := newTestEnv(t, "gw\n")
	m := NewManager()
	v6 := NewV6Client("eth1", env.cfg)
	v6.SetOptions(V6Options{ParamsOnly: true, Temporary: true})
	_ = m.Add(NewV4Client("eth0", env.cfg))
	_ = m.Add(v6)

	before := testutil.ToFloat64(runningGauge.WithLabelValues("v4"))
	err := m.StartAll()
	assert.True(t, IsConfig(err), "v6 refused")
	c, _ := m.Get("eth0", 4)
	assert.Equal(t, Running, c.State(), "v4 started anyway")
	assert.Equal(t, before+1, testutil.ToFloat64(runningGauge.WithLabelValues("v4")), "gauge up")

	assert.Nil(t, m.StopAll(), "stop all")
	assert.Equal(t, Stopped, c.State(), "be the same.")
	assert.Equal(t, before, testutil.ToFloat64(runningGauge.WithLabelValues("v4")), "gauge down")

	assert.Nil(t, m.Del("eth0", 4), "del")
	assert.Equal(t, 1, len(m.List()), "be the same.")
}

func TestManagerAddConcurrent(t *testing.T) {
	env := newTestEnv(t, "gw\n")
	m := NewManager()
	var added int32
	wg := sync.WaitGroup{}
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if m.Add(NewV4Client("eth0", env.cfg)) == nil {
				atomic.AddInt32(&added, 1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), added, "only one added")
	assert.Equal(t, 1, len(m.List()), "be the same.")
}

func TestManagerDelStale(t *testing.T) {
	env := newTestEnv(t, "gw\n")
	m := NewManager()
	_ = m.Add(NewV4Client("eth0", env.cfg))
	assert.Nil(t, m.EnsureStarted("eth0", 4), "start")

	e, _ := m.entry("eth0", 4)
	assert.Nil(t, m.Del("eth0", 4), "del")
	assert.True(t, e.removed, "marked")
	assert.Equal(t, Stopped, e.client.State(), "stopped before removal")
	calls := len(env.runner.calls)

	// a caller that looked the entry up before Del must not revive it
	_ = m.clients.Set(Key("eth0", 4), e)
	assert.True(t, errors.Is(m.EnsureStarted("eth0", 4), ErrNotFound), "not found")
	assert.Equal(t, calls, len(env.runner.calls), "not started")
}

func TestManagerDelWhileStarting(t *testing.T) {
	for i := 0; i < 20; i++ {
		env := newTestEnv(t, "gw\n")
		m := NewManager()
		c := NewV4Client("eth0", env.cfg)
		_ = m.Add(c)

		wg := sync.WaitGroup{}
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = m.EnsureStarted("eth0", 4)
		}()
		go func() {
			defer wg.Done()
			_ = m.Del("eth0", 4)
		}()
		wg.Wait()

		assert.Equal(t, 0, len(m.List()), "forgotten")
		assert.Equal(t, Stopped, c.State(), "never left running")
		assert.False(t, exists(env.base+"eth0.pid"), "no pid file")
	}
}

func TestNewClient(t *testing.T) {
	env := newTestEnv(t, "gw\n")

	c, err := NewClient(&config.Dhcp{Interface: "eth0", Version: 4, ClientId: "abc"}, env.cfg)
	assert.Nil(t, err, "v4")
	assert.Equal(t, "abc", c.(*V4Client).Options().ClientId, "be the same.")

	c, err = NewClient(&config.Dhcp{Interface: "eth1", Version: 6, Temporary: true}, env.cfg)
	assert.Nil(t, err, "v6")
	assert.True(t, c.(*V6Client).Options().Temporary, "temporary")

	_, err = NewClient(&config.Dhcp{Interface: "eth1", Version: 5}, env.cfg)
	assert.True(t, IsConfig(err), "unknown version")
}
