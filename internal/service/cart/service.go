package cart

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"cart-api/internal/domain"
	cartrepo "cart-api/internal/repository/cart"
)

// Failure kinds returned by cart operations. All are expected outcomes: the
// operation also hands back the unmodified current cart alongside the error.
var (
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrItemNotFound    = errors.New("item not found")
	ErrCartFull        = errors.New("cart is full")
	ErrItemNotInCart   = errors.New("item not found in cart")
)

type catalog interface {
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	Exists(ctx context.Context, id string) bool
}

// Service owns all business rules around cart mutation, expiry and
// validation. It is the only writer of the cart store.
type Service struct {
	// mu serializes each read-modify-write cycle; the store itself is
	// last-write-wins and offers no compare-and-swap.
	mu       sync.Mutex
	store    cartrepo.Repository
	catalog  catalog
	ttl      time.Duration
	maxItems int

	now func() time.Time
}

func New(store cartrepo.Repository, catalog catalog, ttl time.Duration, maxItems int) *Service {
	return &Service{
		store:    store,
		catalog:  catalog,
		ttl:      ttl,
		maxItems: maxItems,
		now:      time.Now,
	}
}

// GetCart returns the user's current cart, creating a fresh one when none
// exists or the previous one has expired. Expiry is silent: the caller gets
// a brand-new empty cart with a new identifier and no indication that the
// old one lapsed. Reads are therefore not side-effect-free.
func (s *Service) GetCart(ctx context.Context, userID string) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrCreate(userID)
}

// AddItem appends a new line with the catalog's current price as the frozen
// snapshot, or increments the quantity of an existing line without touching
// its snapshot.
func (s *Service) AddItem(ctx context.Context, userID, itemID string, quantity int) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.catalog.Exists(ctx, itemID) {
		return s.getOrCreate(userID), ErrItemNotFound
	}
	if quantity <= 0 {
		return s.getOrCreate(userID), ErrInvalidQuantity
	}

	cart := s.getOrCreate(userID)
	idx := findLine(cart.Items, itemID)
	if idx < 0 && len(cart.Items) >= s.maxItems {
		return cart, ErrCartFull
	}

	if idx >= 0 {
		cart.Items[idx].Quantity += quantity
	} else {
		item, err := s.catalog.GetByID(ctx, itemID)
		if err != nil {
			return cart, ErrItemNotFound
		}
		cart.Items = append(cart.Items, domain.CartItem{
			ItemID:         itemID,
			Quantity:       quantity,
			UnitPriceCents: item.PriceCents,
		})
	}

	s.finalize(&cart)
	s.store.Save(userID, cart)
	return cart, nil
}

// UpdateQuantity sets the line's quantity to the given value. It replaces,
// never increments.
func (s *Service) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return s.getOrCreate(userID), ErrInvalidQuantity
	}

	cart := s.getOrCreate(userID)
	idx := findLine(cart.Items, itemID)
	if idx < 0 {
		return cart, ErrItemNotInCart
	}

	cart.Items[idx].Quantity = quantity
	s.finalize(&cart)
	s.store.Save(userID, cart)
	return cart, nil
}

// RemoveItem drops the line entirely. The cart is persisted even when it
// becomes empty; an empty cart is still a valid entity, distinct from
// having no cart at all.
func (s *Service) RemoveItem(ctx context.Context, userID, itemID string) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.getOrCreate(userID)
	idx := findLine(cart.Items, itemID)
	if idx < 0 {
		return cart, ErrItemNotInCart
	}

	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	s.finalize(&cart)
	s.store.Save(userID, cart)
	return cart, nil
}

func (s *Service) getOrCreate(userID string) domain.Cart {
	rec, ok := s.store.GetCurrent(userID)
	if ok && !s.now().After(rec.Cart.ExpiresAt) {
		return rec.Cart
	}

	cart := s.newCart()
	s.store.Save(userID, cart)
	return cart
}

func (s *Service) newCart() domain.Cart {
	now := s.now()
	return domain.Cart{
		ID:        uuid.NewString(),
		Items:     []domain.CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
}

// finalize recomputes the total from scratch and renews the cart's update
// and expiry timestamps. The total is never adjusted incrementally.
func (s *Service) finalize(c *domain.Cart) {
	var total int64
	for _, line := range c.Items {
		total += int64(line.Quantity) * line.UnitPriceCents
	}
	c.TotalCents = total

	now := s.now()
	c.UpdatedAt = now
	c.ExpiresAt = now.Add(s.ttl)
}

func findLine(items []domain.CartItem, itemID string) int {
	for i := range items {
		if items[i].ItemID == itemID {
			return i
		}
	}
	return -1
}
