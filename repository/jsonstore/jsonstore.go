// Package jsonstore persists one resource collection as a single
// pretty-printed JSON array file. Every read parses the whole file and
// every mutation rewrites it; there is no indexing and no cross-process
// protection.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

type Store[T any] struct {
	path     string
	lazyInit bool
	mu       sync.Mutex
}

func New[T any](path string) *Store[T] { return &Store[T]{path: path} }

// NewLazy returns a store that treats a missing file as an empty
// collection instead of failing the read. Used for the users file, which
// does not ship with seed data.
func NewLazy[T any](path string) *Store[T] {
	return &Store[T]{path: path, lazyInit: true}
}

func (s *Store[T]) Load() ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store[T]) Save(records []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(records)
}

// Mutate loads the collection, applies fn and saves the result, all under
// the store lock so concurrent in-process writers cannot lose updates. If
// fn returns an error nothing is written.
func (s *Store[T]) Mutate(fn func(records []T) ([]T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}
	next, err := fn(records)
	if err != nil {
		return err
	}
	return s.save(next)
}

func (s *Store[T]) load() ([]T, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if s.lazyInit && os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	var records []T
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return records, nil
}

func (s *Store[T]) save(records []T) error {
	if records == nil {
		records = []T{}
	}
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}
	if err := os.WriteFile(s.path, b, 0644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
