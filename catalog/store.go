// Package catalog provides storage for named function declarations, so a
// deployment can keep its tool surface in one place and load it at startup.
//
// Declarations are persisted in their serialized wire form. Get hands that
// form back verbatim as raw JSON, ready to embed in a request payload; the
// library serializes schemas but never parses them back.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/halcyonlabs/gemschema/tool"
)

// ErrNotFound is returned by Get and Delete for unknown declaration names.
var ErrNotFound = errors.New("declaration not found")

// Store defines the interface for persisting function declarations.
type Store interface {
	// Put inserts or replaces a declaration, keyed by its name. The
	// declaration is serialized on the way in.
	Put(decl tool.FunctionDeclaration) error

	// Get retrieves the serialized declaration by name.
	Get(name string) (json.RawMessage, error)

	// List returns all declaration names in lexicographic order.
	List() ([]string, error)

	// Delete removes a declaration by name.
	Delete(name string) error

	// Close closes the store and releases resources.
	Close() error
}

// MemoryStore provides an in-memory implementation of Store.
type MemoryStore struct {
	mu    sync.RWMutex
	decls map[string]json.RawMessage
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		decls: make(map[string]json.RawMessage),
	}
}

// Put implements Store.
func (s *MemoryStore) Put(decl tool.FunctionDeclaration) error {
	if decl.Name == "" {
		return fmt.Errorf("declaration missing name")
	}

	definition, err := json.Marshal(decl)
	if err != nil {
		return fmt.Errorf("encode declaration: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.decls[decl.Name] = definition
	return nil
}

// Get implements Store.
func (s *MemoryStore) Get(name string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	definition, ok := s.decls[name]
	if !ok {
		return nil, fmt.Errorf("get %q: %w", name, ErrNotFound)
	}
	return definition, nil
}

// List implements Store.
func (s *MemoryStore) List() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.decls))
	for name := range s.decls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.decls[name]; !ok {
		return fmt.Errorf("delete %q: %w", name, ErrNotFound)
	}
	delete(s.decls, name)
	return nil
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	return nil
}
