package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"slices"
	"sync"
	"time"
)

// WorksheetStore persists generated worksheets.
type WorksheetStore interface {
	// Save assigns an ID and creation time to w and stores it.
	Save(ctx context.Context, w *Worksheet) error
	// Get returns ErrNotFound for unknown IDs.
	Get(ctx context.Context, id string) (*Worksheet, error)
	// List returns worksheets, most recent first.
	List(ctx context.Context) ([]*Worksheet, error)
}

// MemoryStore holds worksheets in memory.
type MemoryStore struct {
	mu         sync.RWMutex
	worksheets map[string]*Worksheet
}

var _ WorksheetStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{worksheets: make(map[string]*Worksheet)}
}

func (s *MemoryStore) Save(_ context.Context, w *Worksheet) error {
	w.ID = generateID()
	w.CreatedAt = time.Now()

	s.mu.Lock()
	s.worksheets[w.ID] = w
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Worksheet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.worksheets[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return w, nil
}

func (s *MemoryStore) List(_ context.Context) ([]*Worksheet, error) {
	s.mu.RLock()
	list := make([]*Worksheet, 0, len(s.worksheets))
	for _, w := range s.worksheets {
		list = append(list, w)
	}
	s.mu.RUnlock()

	sortNewestFirst(list)
	return list, nil
}

func sortNewestFirst(list []*Worksheet) {
	slices.SortStableFunc(list, func(a, b *Worksheet) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}

// generateID returns 8 random bytes as hex.
func generateID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("read random id: %v", err))
	}
	return hex.EncodeToString(b)
}
