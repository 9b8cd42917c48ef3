package store

import "github.com/amishk599/jobfinder/internal/model"

var _ model.PreferenceStore = (*MemoryStore)(nil)

// MemoryStore keeps preferences for the current process only. It backs
// sessions started with theme.persist: false.
type MemoryStore struct {
	values map[string]string
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{values: make(map[string]string)} }

func (s *MemoryStore) Get(key string) (string, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Close() error { return nil }
