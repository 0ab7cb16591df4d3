package item

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"cart-api/internal/domain"
)

// Memory holds the catalog in memory, loaded once at startup. The catalog
// is read-only after construction, so lookups need no locking.
type Memory struct {
	items map[string]domain.Item
	order []string
}

// NewMemory builds a catalog from the given items. Later duplicates of an
// item ID win.
func NewMemory(items []domain.Item) *Memory {
	m := &Memory{items: make(map[string]domain.Item, len(items))}
	for _, it := range items {
		if _, seen := m.items[it.ID]; !seen {
			m.order = append(m.order, it.ID)
		}
		m.items[it.ID] = it
	}
	return m
}

// NewMemoryFromFile loads the catalog dataset from a JSON file. A missing or
// malformed file degrades to an empty catalog rather than failing startup;
// every lookup then reports the item as absent.
func NewMemoryFromFile(path string, logger *log.Logger) *Memory {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Printf("load items from %s: %v; starting with empty catalog", path, err)
		return NewMemory(nil)
	}
	var items []domain.Item
	if err := json.Unmarshal(data, &items); err != nil {
		logger.Printf("parse items from %s: %v; starting with empty catalog", path, err)
		return NewMemory(nil)
	}
	return NewMemory(items)
}

func (m *Memory) GetByID(_ context.Context, id string) (*domain.Item, error) {
	it, ok := m.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &it, nil
}

func (m *Memory) Exists(_ context.Context, id string) bool {
	_, ok := m.items[id]
	return ok
}

func (m *Memory) List(_ context.Context) ([]domain.Item, error) {
	out := make([]domain.Item, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.items[id])
	}
	return out, nil
}
