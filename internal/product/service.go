package product

import (
	"context"
)

// Service defines the business logic for the catalog.
type Service interface {
	GetList(ctx context.Context, opts ListOptions) ([]*Product, error)
	GetByID(ctx context.Context, id uint) (*Product, error)
	Create(ctx context.Context, p *Product) (*Product, error)
	Update(ctx context.Context, p *Product) (*Product, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetList(ctx context.Context, opts ListOptions) ([]*Product, error) {
	return s.repo.GetList(ctx, opts)
}

func (s *service) GetByID(ctx context.Context, id uint) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *service) Create(ctx context.Context, p *Product) (*Product, error) {
	if err := validate(p); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *service) Update(ctx context.Context, p *Product) (*Product, error) {
	if err := validate(p); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func validate(p *Product) error {
	if p.Title == "" {
		return ErrMissingTitle
	}
	if p.Price.IsNegative() {
		return ErrInvalidPrice
	}
	if p.Stock < 0 {
		return ErrInvalidStock
	}
	if p.MinimumOrderQuantity < 1 {
		return ErrInvalidMinOrderQty
	}
	if !p.AvailabilityStatus.Valid() {
		return ErrInvalidStatus
	}
	return nil
}
