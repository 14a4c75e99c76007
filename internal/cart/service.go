package cart

import (
	"context"

	"storefront-be/internal/product"
)

// Service defines the business logic for carts.
type Service interface {
	List(ctx context.Context, userID uint) ([]*CartLine, error)
	Upsert(ctx context.Context, params UpsertParams) (*CartLine, error)
	UpdateQuantity(ctx context.Context, params UpdateQuantityParams) (*CartLine, error)
	Remove(ctx context.Context, userID, lineID uint) error
	ClearAll(ctx context.Context, userID uint) error
}

type service struct {
	repo        Repository
	productRepo product.Repository
}

func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

func (s *service) List(ctx context.Context, userID uint) ([]*CartLine, error) {
	if userID == 0 {
		return nil, ErrUserRequired
	}
	return s.repo.List(ctx, userID)
}

// Upsert puts a product in the user's cart with a fresh price snapshot.
// An existing line for the same product is replaced, never duplicated.
func (s *service) Upsert(ctx context.Context, params UpsertParams) (*CartLine, error) {
	if params.UserID == 0 {
		return nil, ErrUserRequired
	}
	if params.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if params.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	p, err := s.productRepo.GetByID(ctx, params.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	return s.repo.Upsert(ctx, params)
}

func (s *service) UpdateQuantity(ctx context.Context, params UpdateQuantityParams) (*CartLine, error) {
	if params.UserID == 0 {
		return nil, ErrUserRequired
	}
	if params.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	return s.repo.UpdateQuantity(ctx, params)
}

func (s *service) Remove(ctx context.Context, userID, lineID uint) error {
	if userID == 0 {
		return ErrUserRequired
	}
	return s.repo.Remove(ctx, userID, lineID)
}

func (s *service) ClearAll(ctx context.Context, userID uint) error {
	if userID == 0 {
		return ErrUserRequired
	}
	return s.repo.ClearAll(ctx, userID)
}
