package services

import (
	"context"

	"trendyshop/internal/domain"
	"trendyshop/internal/metrics"
)

// CartService applies quantity changes to a user's cart. Every call is a
// fresh read-modify-write against the store; nothing is cached, and two
// concurrent changes for one user may lose an update.
type CartService struct {
	Users CredentialStore
}

func NewCartService(users CredentialStore) *CartService {
	return &CartService{Users: users}
}

func (s *CartService) Increment(ctx context.Context, userID string, itemID int) error {
	return s.mutate(ctx, userID, itemID, "add", domain.Cart.Add)
}

// Decrement floors at zero; removing an item the user does not hold is a no-op.
func (s *CartService) Decrement(ctx context.Context, userID string, itemID int) error {
	return s.mutate(ctx, userID, itemID, "remove", domain.Cart.Remove)
}

func (s *CartService) Snapshot(ctx context.Context, userID string) (domain.Cart, error) {
	u, err := s.Users.ByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.Cart == nil {
		return domain.Cart{}, nil
	}
	return u.Cart, nil
}

func (s *CartService) mutate(ctx context.Context, userID string, itemID int, op string, apply func(domain.Cart, int)) error {
	if itemID < 0 {
		return invalid("itemId", "must be a non-negative integer")
	}
	u, err := s.Users.ByID(ctx, userID)
	if err != nil {
		return err
	}
	if u.Cart == nil {
		u.Cart = domain.Cart{}
	}
	apply(u.Cart, itemID)
	if err := s.Users.UpdateCart(ctx, userID, u.Cart); err != nil {
		return err
	}
	metrics.CartMutation(op)
	return nil
}
