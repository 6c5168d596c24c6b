// Package cache is the invalidate-and-refetch list cache behind the views.
// A view reads its list through the cache; a successful mutation invalidates
// the matching key so the next read refetches. There is no TTL and no
// cross-view sharing beyond these named keys.
package cache

import "sync"

// Cache keys, one per backing list.
const (
	KeyCategories = "categoryData"
	KeyProducts   = "productData"
	KeyBills      = "billData"
	KeyUsers      = "userData"
	KeyDashboard  = "dashboardData"
)

type Store struct {
	mu      sync.RWMutex
	entries map[string]any
}

func New() *Store {
	return &Store{entries: make(map[string]any)}
}

func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok
}

func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
}

func (s *Store) Invalidate(keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.entries, key)
	}
}

// Reset drops every entry, e.g. on logout.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]any)
}
