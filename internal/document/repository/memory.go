package repository

import (
	"errors"
	"sync"
	"time"

	"github.com/docqa/docqa/internal/document"
)

var (
	ErrNotFound = errors.New("document not found")
)

// MemoryRepo keeps every uploaded document in process memory. Nothing is
// evicted and nothing survives a restart. A single RWMutex serialises writers
// so concurrent requests always observe the last completed Put.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*document.Document
	order []string
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*document.Document)}
}

// Put inserts or overwrites the document stored under id. An overwrite keeps
// the original listing position and creation time.
func (m *MemoryRepo) Put(id, content, fileType string) *document.Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	d := &document.Document{ID: id, Content: content, FileType: fileType, CreatedAt: now, UpdatedAt: now}
	if prev, ok := m.store[id]; ok {
		d.CreatedAt = prev.CreatedAt
	} else {
		m.order = append(m.order, id)
	}
	m.store[id] = d
	return copyDoc(d)
}

func (m *MemoryRepo) Get(id string) (*document.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if d, ok := m.store[id]; ok {
		return copyDoc(d), nil
	}
	return nil, ErrNotFound
}

// List returns one summary per document in first-upload order.
func (m *MemoryRepo) List() []document.Summary {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]document.Summary, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, document.Summary{ID: id, Size: m.store[id].Size()})
	}
	return out
}

// Len reports the number of stored documents.
func (m *MemoryRepo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store)
}

func copyDoc(d *document.Document) *document.Document {
	c := *d
	return &c
}
