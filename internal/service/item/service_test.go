package item

import (
	"context"
	"errors"
	"testing"

	"cart-api/internal/domain"
	itemrepo "cart-api/internal/repository/item"
)

func TestServiceDelegatesToRepo(t *testing.T) {
	repo := itemrepo.NewMemory([]domain.Item{
		{ID: "item-001", Name: "Mouse", PriceCents: 2999},
		{ID: "item-002", Name: "Keyboard", PriceCents: 8950},
	})
	svc := New(repo)
	ctx := context.Background()

	items, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	it, err := svc.Get(ctx, "item-001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.Name != "Mouse" {
		t.Fatalf("unexpected item: %+v", it)
	}

	if _, err := svc.Get(ctx, "item-999"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !svc.Exists(ctx, "item-002") || svc.Exists(ctx, "item-999") {
		t.Fatalf("unexpected existence results")
	}
}
