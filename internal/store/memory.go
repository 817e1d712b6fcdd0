package store

import (
	"context"
	"errors"
	"slices"
	"sync"
)

// Memory is a Backend held entirely in process memory.
type Memory struct {
	mu     sync.Mutex
	values map[string][]byte
	saves  int
}

// NewMemory returns an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(v), nil
}

func (m *Memory) Save(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = slices.Clone(value)
	m.saves++
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *Memory) Close() error { return nil }

// Saves returns how many times Save has been called.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Seed stores a raw value without counting it as a save.
func (m *Memory) Seed(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = slices.Clone(value)
}

// ErrUnavailable is returned by every call on an Unavailable backend.
var ErrUnavailable = errors.New("storage unavailable")

// Unavailable is a Backend whose every operation fails, standing in for
// disabled or full storage.
type Unavailable struct{}

func (Unavailable) Load(context.Context, string) ([]byte, error) { return nil, ErrUnavailable }
func (Unavailable) Save(context.Context, string, []byte) error   { return ErrUnavailable }
func (Unavailable) Delete(context.Context, string) error         { return ErrUnavailable }
func (Unavailable) Close() error                                 { return nil }
