package storage

import (
	"context"
	"sync"
)

// StorageStub is an in-memory Storage with injectable failures for tests.
type StorageStub struct {
	mu       sync.RWMutex
	values   map[string]string
	ReadErr  error
	WriteErr error
}

func NewStorageStub() *StorageStub {
	return &StorageStub{values: make(map[string]string)}
}

func (s *StorageStub) Read(ctx context.Context, key string) (*string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	value, ok := s.values[key]
	if !ok {
		return nil, nil
	}
	return &value, nil
}

func (s *StorageStub) Write(ctx context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.values[key] = value
	return nil
}

// Set seeds a value directly, bypassing Write failures.
func (s *StorageStub) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Get returns the raw stored value, or empty string when absent.
func (s *StorageStub) Get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}
