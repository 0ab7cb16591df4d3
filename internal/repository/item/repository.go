package item

import (
	"context"

	"cart-api/internal/domain"
)

// Repository is the read-only item catalog.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	Exists(ctx context.Context, id string) bool
	List(ctx context.Context) ([]domain.Item, error)
}
