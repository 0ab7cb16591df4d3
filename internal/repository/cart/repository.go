package cart

import (
	"cart-api/internal/domain"
)

// Repository is keyed, history-preserving cart storage. A user maps to an
// ordered sequence of version records; the current cart is the last element
// of that sequence, by position, not by timestamp.
type Repository interface {
	// GetCurrent returns the last record of the user's sequence.
	GetCurrent(userID string) (domain.CartVersionRecord, bool)
	// GetAll returns every record ever stored for the user, oldest first.
	GetAll(userID string) []domain.CartVersionRecord
	// Save replaces the record with a matching cart ID in place, or appends
	// a new one. The stored cart's update timestamp is stamped here,
	// overriding whatever the caller set.
	Save(userID string, cart domain.Cart)
	// Delete removes the record with the given cart ID and reports whether
	// a removal occurred.
	Delete(userID, cartID string) bool
	// Clear drops the user's entire sequence.
	Clear(userID string)
	// ListUsers returns every known user ID.
	ListUsers() []string
}
