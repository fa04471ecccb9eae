// Package keylock provides named mutexes so work on one key is serialized
// while work on different keys runs concurrently
package keylock

import (
	"sync"
)

type entry struct {
	mu   sync.Mutex
	refs int
}

// Manager hands out one mutex per key. A key's mutex lives only while some caller holds
// or waits for it, so the map stays bounded by the work in flight.
type Manager struct {
	mu    sync.Mutex
	locks map[string]*entry
}

// New creates a new Manager
func New() *Manager {
	return &Manager{locks: make(map[string]*entry)}
}

// Lock locks the key and returns the matching unlock
func (m *Manager) Lock(key string) func() {
	m.mu.Lock()
	e, ok := m.locks[key]
	if !ok {
		e = &entry{}
		m.locks[key] = e
	}
	e.refs++
	m.mu.Unlock()

	e.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Unlock()

			m.mu.Lock()
			e.refs--
			if e.refs == 0 {
				delete(m.locks, key)
			}
			m.mu.Unlock()
		})
	}
}

// Len returns the number of keys currently held or waited on
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}
