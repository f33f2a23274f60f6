package memory

import (
	"sync"

	"github.com/custodia-labs/grepl/internal/core/ports/driven"
)

var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is an in-memory implementation of driven.ConfigStore.
// Settings live only for the process; Save and Load are no-ops so the
// store can stand in for the TOML-backed one wherever nothing should
// touch the user's config file.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewConfigStore returns an empty store.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		values: make(map[string]any),
	}
}

// Get retrieves a setting by its dotted key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.values[key]
	return val, ok
}

// GetString retrieves a string setting, or "" when the key is absent or
// holds another type.
func (s *ConfigStore) GetString(key string) string {
	val, ok := s.Get(key)
	if !ok {
		return ""
	}
	str, _ := val.(string)
	return str
}

// GetInt retrieves an integer setting. TOML decodes integers as int64
// and flag plumbing hands over plain ints, so both convert; anything
// else yields zero.
func (s *ConfigStore) GetInt(key string) int {
	val, ok := s.Get(key)
	if !ok {
		return 0
	}
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// GetBool retrieves a boolean setting, or false when the key is absent
// or holds another type.
func (s *ConfigStore) GetBool(key string) bool {
	val, ok := s.Get(key)
	if !ok {
		return false
	}
	b, _ := val.(bool)
	return b
}

// Set stores a setting under its dotted key.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

// Save is a no-op; there is no backing file.
func (s *ConfigStore) Save() error {
	return nil
}

// Load is a no-op; there is no backing file.
func (s *ConfigStore) Load() error {
	return nil
}

// Path identifies the store where output would otherwise show a file path.
func (s *ConfigStore) Path() string {
	return ":memory:"
}
