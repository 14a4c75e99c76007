package order

import (
	"context"

	"storefront-be/internal/logger"
	"storefront-be/internal/metrics"

	"go.uber.org/zap"
)

type Service interface {
	// PlaceOrder converts the caller's cart into a durable order,
	// atomically. There is no retry policy; the caller resubmits.
	PlaceOrder(ctx context.Context, params PlaceOrderParams) (*Order, error)
	ListForUser(ctx context.Context, userID uint) ([]*Order, error)
	GetOrderDetail(ctx context.Context, userID, orderID uint) (*Order, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) PlaceOrder(ctx context.Context, params PlaceOrderParams) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "PlaceOrder"),
	)

	if params.UserID == 0 {
		return nil, ErrUserRequired
	}
	if params.ShippingAddress == "" || params.BillingAddress == "" {
		return nil, ErrMissingAddress
	}
	if params.PaymentMethod == "" {
		return nil, ErrMissingPayment
	}

	timer := metrics.StartTimer()

	o, err := s.repo.PlaceOrder(ctx, params)
	if err != nil {
		if err == ErrCartEmpty {
			metrics.EmptyCartHits.Inc()
			return nil, err
		}
		metrics.OrdersFailed.Inc()
		log.Error("checkout failed", zap.Error(err))
		return nil, err
	}

	metrics.OrdersPlaced.Inc()
	log.Info("order placed",
		zap.Uint("order_id", o.ID),
		zap.String("total_amount", o.TotalAmount.String()),
		zap.Duration("checkout_duration", timer.Duration()),
	)

	return o, nil
}

func (s *service) ListForUser(ctx context.Context, userID uint) ([]*Order, error) {
	if userID == 0 {
		return nil, ErrUserRequired
	}
	return s.repo.ListForUser(ctx, userID)
}

func (s *service) GetOrderDetail(ctx context.Context, userID, orderID uint) (*Order, error) {
	if userID == 0 {
		return nil, ErrUserRequired
	}
	return s.repo.GetByID(ctx, userID, orderID)
}
