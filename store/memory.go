package store

import (
	"slices"
	"sync"
)

// MemoryBackend keeps values in a map. It backs tests and the offline
// export command.
type MemoryBackend struct {
	mu     sync.Mutex
	values map[string][]byte

	// FailWrites, when set, is returned by every Save.
	FailWrites error
	// Writes counts successful saves.
	Writes int
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string][]byte)}
}

func (m *MemoryBackend) Load(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.values[key]
	return slices.Clone(v), ok, nil
}

func (m *MemoryBackend) Save(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.values[key] = slices.Clone(value)
	m.Writes++
	return nil
}
