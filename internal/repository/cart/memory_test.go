package cart

import (
	"testing"
	"time"

	"cart-api/internal/domain"
)

func makeCart(id string) domain.Cart {
	now := time.Now()
	return domain.Cart{
		ID:        id,
		Items:     []domain.CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func TestGetCurrentEmptyStore(t *testing.T) {
	store := NewMemory()
	if _, ok := store.GetCurrent("user-1"); ok {
		t.Fatalf("expected no record for unknown user")
	}
	if all := store.GetAll("user-1"); len(all) != 0 {
		t.Fatalf("expected empty history, got %d records", len(all))
	}
}

func TestSaveAppendsAndGetCurrentReturnsLast(t *testing.T) {
	store := NewMemory()
	store.Save("user-1", makeCart("cart-a"))
	store.Save("user-1", makeCart("cart-b"))

	rec, ok := store.GetCurrent("user-1")
	if !ok {
		t.Fatalf("expected a current record")
	}
	if rec.Cart.ID != "cart-b" {
		t.Fatalf("expected last-appended cart to be current, got %s", rec.Cart.ID)
	}
	if got := store.GetAll("user-1"); len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
}

func TestSaveReplacesInPlaceKeepingPosition(t *testing.T) {
	store := NewMemory()
	store.Save("user-1", makeCart("cart-a"))
	store.Save("user-1", makeCart("cart-b"))

	updated := makeCart("cart-a")
	updated.Items = []domain.CartItem{{ItemID: "item-001", Quantity: 2, UnitPriceCents: 100}}
	updated.TotalCents = 200
	store.Save("user-1", updated)

	all := store.GetAll("user-1")
	if len(all) != 2 {
		t.Fatalf("replace must not grow the sequence, got %d records", len(all))
	}
	if all[0].Cart.ID != "cart-a" || len(all[0].Cart.Items) != 1 {
		t.Fatalf("expected cart-a updated in place at position 0, got %+v", all[0].Cart)
	}

	// Current cart is positional, so cart-b stays current even though
	// cart-a was written more recently.
	rec, _ := store.GetCurrent("user-1")
	if rec.Cart.ID != "cart-b" {
		t.Fatalf("expected cart-b to remain current, got %s", rec.Cart.ID)
	}
}

func TestSaveStampsUpdateTimestamp(t *testing.T) {
	store := NewMemory()
	stamp := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return stamp }

	cart := makeCart("cart-a")
	cart.UpdatedAt = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC) // caller value must be overridden
	store.Save("user-1", cart)

	rec, _ := store.GetCurrent("user-1")
	if !rec.Cart.UpdatedAt.Equal(stamp) {
		t.Fatalf("expected store to stamp cart.UpdatedAt, got %v", rec.Cart.UpdatedAt)
	}
	if rec.UpdatedAt != stamp.UnixMilli() {
		t.Fatalf("expected record timestamp %d, got %d", stamp.UnixMilli(), rec.UpdatedAt)
	}
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	store := NewMemory()
	cart := makeCart("cart-a")
	cart.Items = []domain.CartItem{{ItemID: "item-001", Quantity: 1, UnitPriceCents: 100}}
	store.Save("user-1", cart)

	rec, _ := store.GetCurrent("user-1")
	rec.Cart.Items[0].Quantity = 99

	again, _ := store.GetCurrent("user-1")
	if again.Cart.Items[0].Quantity != 1 {
		t.Fatalf("store state leaked through returned record")
	}
}

func TestDelete(t *testing.T) {
	store := NewMemory()
	store.Save("user-1", makeCart("cart-a"))
	store.Save("user-1", makeCart("cart-b"))

	if !store.Delete("user-1", "cart-a") {
		t.Fatalf("expected delete to report a removal")
	}
	if store.Delete("user-1", "cart-a") {
		t.Fatalf("expected second delete to report nothing removed")
	}
	if store.Delete("user-2", "cart-a") {
		t.Fatalf("expected delete for unknown user to report nothing removed")
	}

	all := store.GetAll("user-1")
	if len(all) != 1 || all[0].Cart.ID != "cart-b" {
		t.Fatalf("unexpected history after delete: %+v", all)
	}
}

func TestClearAndListUsers(t *testing.T) {
	store := NewMemory()
	store.Save("user-1", makeCart("cart-a"))
	store.Save("user-2", makeCart("cart-b"))

	users := store.ListUsers()
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %v", users)
	}

	store.Clear("user-1")
	if _, ok := store.GetCurrent("user-1"); ok {
		t.Fatalf("expected no current cart after clear")
	}
	if users := store.ListUsers(); len(users) != 1 || users[0] != "user-2" {
		t.Fatalf("expected only user-2 left, got %v", users)
	}
}
