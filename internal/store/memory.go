package store

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryStore keeps records in memory. Used for dry runs and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
	folders map[string]struct{}
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string][]byte),
		folders: make(map[string]struct{}),
	}
}

// Read returns a copy of the record stored at path.
func (s *MemoryStore) Read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.records[path]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

// Write replaces the record at path.
func (s *MemoryStore) Write(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[path] = append([]byte(nil), data...)
	return nil
}

// List returns the sorted record paths below scope.
func (s *MemoryStore) List(ctx context.Context, scope string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	prefix := scopePrefix(scope)
	result := make([]string, 0, len(s.records))
	for p := range s.records {
		if strings.HasPrefix(p, prefix) {
			result = append(result, p)
		}
	}
	sort.Strings(result)
	return result, nil
}

// FolderExists reports whether path was created as a folder.
func (s *MemoryStore) FolderExists(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.folders[path]
	return ok, nil
}

// CreateFolder records parent/name as a folder.
func (s *MemoryStore) CreateFolder(ctx context.Context, parent, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.folders[JoinFolder(parent, name)] = struct{}{}
	return nil
}

// Len returns the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }

func scopePrefix(scope string) string {
	scope = strings.TrimRight(scope, "/")
	if scope == "" {
		return ""
	}
	return scope + "/"
}
