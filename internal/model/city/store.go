package city

import "strings"

// Store exposes city lookups for HTTP handlers.
type Store interface {
	Find(name string) []City
}

// MemoryStore implements Store with an in-memory slice.
type MemoryStore struct {
	items []City
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied cities.
func NewMemoryStore(items []City) *MemoryStore {
	return &MemoryStore{items: append([]City(nil), items...)}
}

// Find returns every city whose name contains the query, 模糊匹配。
func (s *MemoryStore) Find(name string) []City {
	if name == "" {
		return nil
	}

	var matched []City
	for _, item := range s.items {
		if strings.Contains(item.Name, name) {
			matched = append(matched, item)
		}
	}
	return matched
}
