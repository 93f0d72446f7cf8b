package dhcpc

import (
	"fmt"
	"sync"

	"github.com/luscis/ifdhcp/pkg/libol"
	"github.com/pkg/errors"
)

func Key(name string, version int) string {
	return fmt.Sprintf("%s/%d", name, version)
}

type entry struct {
	lock    sync.Mutex
	client  Client
	removed bool
}

// Manager keeps one client per interface and version. Start and stop
// of the same client are serialized, different clients do not block
// each other.
type Manager struct {
	clients *libol.SafeStrMap
	out     *libol.SubLogger
}

func NewManager() *Manager {
	return &Manager{
		clients: libol.NewSafeStrMap(0),
		out:     libol.NewSubLogger("manager"),
	}
}

func (m *Manager) entry(name string, version int) (*entry, error) {
	if v, ok := m.clients.GetEx(Key(name, version)); ok {
		return v.(*entry), nil
	}
	return nil, errors.Wrap(ErrNotFound, Key(name, version))
}

// locked returns the entry with its lock held. An entry deleted while
// waiting for the lock is reported as not found.
func (m *Manager) locked(name string, version int) (*entry, error) {
	e, err := m.entry(name, version)
	if err != nil {
		return nil, err
	}
	e.lock.Lock()
	if e.removed {
		e.lock.Unlock()
		return nil, errors.Wrap(ErrNotFound, Key(name, version))
	}
	return e, nil
}

func (m *Manager) Add(c Client) error {
	key := Key(c.Name(), c.Version())
	if err := m.clients.Set(key, &entry{client: c}); err != nil {
		return libol.NewErr("Manager.Add %s", err)
	}
	m.out.Debug("Manager.Add %s", key)
	return nil
}

func (m *Manager) Get(name string, version int) (Client, error) {
	e, err := m.entry(name, version)
	if err != nil {
		return nil, err
	}
	return e.client, nil
}

// Del stops the client before forgetting it, both under the entry lock.
func (m *Manager) Del(name string, version int) error {
	e, err := m.locked(name, version)
	if err != nil {
		return err
	}
	defer e.lock.Unlock()
	if err := e.client.Stop(); err != nil {
		return err
	}
	e.removed = true
	m.out.Debug("Manager.Del %s", Key(name, version))
	m.clients.Del(Key(name, version))
	return nil
}

func (m *Manager) List() []Client {
	items := make([]Client, 0, m.clients.Len())
	for _, key := range m.clients.Keys() {
		if v, ok := m.clients.GetEx(key); ok {
			items = append(items, v.(*entry).client)
		}
	}
	return items
}

// EnsureStarted does nothing when the client is running with a live
// process, otherwise it starts the client.
func (m *Manager) EnsureStarted(name string, version int) error {
	e, err := m.locked(name, version)
	if err != nil {
		return err
	}
	defer e.lock.Unlock()
	c := e.client
	if c.State() == Running && c.Running() {
		m.out.Debug("Manager.EnsureStarted %s already running", Key(name, version))
		return nil
	}
	return c.Start()
}

// EnsureStopped stops the client, a client without pid file is a no-op.
func (m *Manager) EnsureStopped(name string, version int) error {
	e, err := m.locked(name, version)
	if err != nil {
		return err
	}
	defer e.lock.Unlock()
	return e.client.Stop()
}

// StartAll starts every client and returns the first failure.
func (m *Manager) StartAll() error {
	var first error
	for _, c := range m.List() {
		if err := m.EnsureStarted(c.Name(), c.Version()); err != nil {
			m.out.Warn("Manager.StartAll %s", err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}

func (m *Manager) StopAll() error {
	var first error
	for _, c := range m.List() {
		if err := m.EnsureStopped(c.Name(), c.Version()); err != nil {
			m.out.Warn("Manager.StopAll %s", err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}
