package address

import "context"

// Service defines the business logic for the address book. Every operation
// is scoped to the owning user; foreign rows surface as not found.
type Service interface {
	List(ctx context.Context, userID uint) ([]*Address, error)
	Get(ctx context.Context, userID, id uint) (*Address, error)
	Create(ctx context.Context, addr *Address) (*Address, error)
	Update(ctx context.Context, addr *Address) (*Address, error)
	Delete(ctx context.Context, userID, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, userID uint) ([]*Address, error) {
	if userID == 0 {
		return nil, ErrUserRequired
	}
	return s.repo.GetByUserID(ctx, userID)
}

func (s *service) Get(ctx context.Context, userID, id uint) (*Address, error) {
	if userID == 0 {
		return nil, ErrUserRequired
	}
	return s.repo.GetByID(ctx, userID, id)
}

func (s *service) Create(ctx context.Context, addr *Address) (*Address, error) {
	if addr.UserID == 0 {
		return nil, ErrUserRequired
	}

	if err := s.repo.Create(ctx, addr); err != nil {
		return nil, err
	}

	return addr, nil
}

func (s *service) Update(ctx context.Context, addr *Address) (*Address, error) {
	if addr.UserID == 0 {
		return nil, ErrUserRequired
	}

	if err := s.repo.Update(ctx, addr); err != nil {
		return nil, err
	}

	return addr, nil
}

func (s *service) Delete(ctx context.Context, userID, id uint) error {
	if userID == 0 {
		return ErrUserRequired
	}
	return s.repo.Delete(ctx, userID, id)
}
