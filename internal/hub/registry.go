package hub

import (
	"errors"
	"sync"
)

// ErrNameTaken indicates the nickname is held by another live connection.
var ErrNameTaken = errors.New("nickname already taken")

// Registry 在线用户表: 昵称 -> 连接。所有修改都持锁进行。
type Registry struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

// NewRegistry returns an empty presence registry.
func NewRegistry() *Registry {
	return &Registry{clients: make(map[string]*Client)}
}

// Register claims name for c. Claiming a name held by a different live
// client fails with ErrNameTaken; re-registering the same client under the
// same name is a no-op.
func (r *Registry) Register(name string, c *Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.clients[name]; ok && current != c {
		return ErrNameTaken
	}
	r.clients[name] = c
	return nil
}

// Unregister removes the mapping only when c is still the registered owner
// of name, so a late close of a superseded duplicate cannot evict a newer
// valid registration. Reports whether an entry was removed.
func (r *Registry) Unregister(name string, c *Client) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.clients[name]; ok && current == c {
		delete(r.clients, name)
		return true
	}
	return false
}

// Contains reports whether name is currently claimed. Advisory only: a
// check-then-connect race is still resolved by Register.
func (r *Registry) Contains(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.clients[name]
	return ok
}

// Names returns a snapshot of the online nicknames.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.clients))
	for name := range r.clients {
		names = append(names, name)
	}
	return names
}

// snapshot returns the recipients for one broadcast. Concurrent joins and
// leaves never mutate the returned slice.
func (r *Registry) snapshot() []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clients := make([]*Client, 0, len(r.clients))
	for _, c := range r.clients {
		clients = append(clients, c)
	}
	return clients
}
