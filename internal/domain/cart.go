package domain

import "time"

type Cart struct {
	ID         string     `json:"cartId"`
	Items      []CartItem `json:"items"`
	TotalCents int64      `json:"totalCents"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	ExpiresAt  time.Time  `json:"expiresAt"`
}

type CartItem struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
	// UnitPriceCents is snapshotted from the catalog when the line is first
	// added and never re-read afterwards.
	UnitPriceCents int64 `json:"unitPriceCents"`
}

// CartVersionRecord wraps a cart with the update timestamp assigned by the
// store (Unix milliseconds) at the last write.
type CartVersionRecord struct {
	Cart      Cart  `json:"cart"`
	UpdatedAt int64 `json:"updatedAt"`
}
