package cart

import (
	"sync"
	"time"

	"cart-api/internal/domain"
)

// Memory implements Repository with in-memory storage. History is never
// pruned: superseded carts stay in the sequence until Delete or Clear.
type Memory struct {
	mu    sync.RWMutex
	carts map[string][]domain.CartVersionRecord

	now func() time.Time
}

// NewMemory creates an empty in-memory cart store.
func NewMemory() *Memory {
	return &Memory{
		carts: make(map[string][]domain.CartVersionRecord),
		now:   time.Now,
	}
}

func (m *Memory) GetCurrent(userID string) (domain.CartVersionRecord, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := m.carts[userID]
	if len(records) == 0 {
		return domain.CartVersionRecord{}, false
	}
	return cloneRecord(records[len(records)-1]), true
}

func (m *Memory) GetAll(userID string) []domain.CartVersionRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := m.carts[userID]
	out := make([]domain.CartVersionRecord, len(records))
	for i, rec := range records {
		out[i] = cloneRecord(rec)
	}
	return out
}

func (m *Memory) Save(userID string, cart domain.Cart) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	cart.UpdatedAt = now
	rec := domain.CartVersionRecord{
		Cart:      cloneCart(cart),
		UpdatedAt: now.UnixMilli(),
	}

	records := m.carts[userID]
	for i := range records {
		if records[i].Cart.ID == cart.ID {
			records[i] = rec
			return
		}
	}
	m.carts[userID] = append(records, rec)
}

func (m *Memory) Delete(userID, cartID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	records, ok := m.carts[userID]
	if !ok {
		return false
	}
	for i := range records {
		if records[i].Cart.ID == cartID {
			m.carts[userID] = append(records[:i], records[i+1:]...)
			return true
		}
	}
	return false
}

func (m *Memory) Clear(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.carts, userID)
}

func (m *Memory) ListUsers() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]string, 0, len(m.carts))
	for userID := range m.carts {
		users = append(users, userID)
	}
	return users
}

func cloneRecord(rec domain.CartVersionRecord) domain.CartVersionRecord {
	rec.Cart = cloneCart(rec.Cart)
	return rec
}

func cloneCart(c domain.Cart) domain.Cart {
	items := make([]domain.CartItem, len(c.Items))
	copy(items, c.Items)
	c.Items = items
	return c
}
