package storage

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// MemoryStore keeps objects in process. It backs tests and local runs
// without a MinIO endpoint.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	baseURL string

	// FailPut and FailRemove inject errors for keys they match.
	FailPut    func(key string) error
	FailRemove func(key string) error
}

func NewMemoryStore(baseURL string) *MemoryStore {
	return &MemoryStore{objects: map[string][]byte{}, baseURL: baseURL}
}

func (s *MemoryStore) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	if s.FailPut != nil {
		if err := s.FailPut(key); err != nil {
			return "", err
		}
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return fmt.Sprintf("%s/%s", s.baseURL, key), nil
}

func (s *MemoryStore) Remove(ctx context.Context, key string) error {
	if s.FailRemove != nil {
		if err := s.FailRemove(key); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *MemoryStore) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	return ok
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
