package order

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"storefront-be/internal/logger"
	"storefront-be/internal/utils"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository interface {
	// PlaceOrder runs the whole read-compute-write-clear checkout sequence
	// as one transaction.
	PlaceOrder(ctx context.Context, params PlaceOrderParams) (*Order, error)
	ListForUser(ctx context.Context, userID uint) ([]*Order, error)
	GetByID(ctx context.Context, userID, orderID uint) (*Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// PlaceOrder converts the user's cart into a durable order. The cart rows are
// locked for the duration of the transaction, so a concurrent checkout for the
// same user observes either the full cart or an already-empty one, never an
// interleaving. On any failure everything rolls back and the cart is untouched.
func (r *repository) PlaceOrder(ctx context.Context, params PlaceOrderParams) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "PlaceOrder"),
	)

	log.Debug("starting checkout transaction")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			} else {
				log.Debug("transaction rolled back")
			}
		}
	}()

	// 1. Load and lock the cart. FOR UPDATE serializes concurrent checkouts
	// for the same user on these rows.
	rows, err := tx.QueryContext(ctx, `
		SELECT id, product_id, quantity, price
		FROM carts
		WHERE user_id = $1
		ORDER BY id
		FOR UPDATE
	`, params.UserID)
	if err != nil {
		log.Error("failed to load cart", zap.Error(err))
		return nil, err
	}

	var items []OrderItem
	total := decimal.Zero

	for rows.Next() {
		var lineID uint
		var item OrderItem
		if err := rows.Scan(&lineID, &item.ProductID, &item.Quantity, &item.Price); err != nil {
			rows.Close()
			log.Error("failed to scan cart line", zap.Error(err))
			return nil, err
		}

		// Billed from the snapshot price on the line, never the live
		// catalog price.
		item.Total = item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(item.Total)
		items = append(items, item)
	}
	rows.Close()

	if err := rows.Err(); err != nil {
		log.Error("cart rows iteration failed", zap.Error(err))
		return nil, err
	}

	if len(items) == 0 {
		log.Info("checkout attempted with empty cart")
		return nil, ErrCartEmpty
	}

	// 2. Insert the order.
	o := &Order{
		UserID:          params.UserID,
		Status:          StatusPending,
		TotalAmount:     total,
		ShippingAddress: params.ShippingAddress,
		BillingAddress:  params.BillingAddress,
		PaymentMethod:   params.PaymentMethod,
		TransactionID:   utils.GenerateOrderReference(),
		Notes:           params.Notes,
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (
			user_id, status, total_amount,
			shipping_address, billing_address,
			payment_method, transaction_id, notes
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id, created_at, updated_at
	`,
		o.UserID,
		o.Status,
		o.TotalAmount,
		o.ShippingAddress,
		o.BillingAddress,
		o.PaymentMethod,
		o.TransactionID,
		o.Notes,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, err
	}

	// 3. Insert one item per cart line. The subtotal column mirrors total
	// for schema compatibility.
	for i := range items {
		items[i].OrderID = o.ID

		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (
				order_id, product_id, quantity, price, total, subtotal
			) VALUES ($1,$2,$3,$4,$5,$5)
			RETURNING id
		`,
			items[i].OrderID,
			items[i].ProductID,
			items[i].Quantity,
			items[i].Price,
			items[i].Total,
		).Scan(&items[i].ID)
		if err != nil {
			log.Error("failed to insert order item",
				zap.Int("item_index", i),
				zap.Uint("product_id", items[i].ProductID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	// 4. Clear the cart.
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM carts
		WHERE user_id = $1
	`, params.UserID); err != nil {
		log.Error("failed to clear cart", zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit checkout transaction", zap.Error(err))
		return nil, err
	}

	committed = true
	o.Items = items

	log.Info("checkout transaction committed",
		zap.Uint("order_id", o.ID),
		zap.String("total_amount", o.TotalAmount.String()),
		zap.Int("item_count", len(items)),
	)

	return o, nil
}

func (r *repository) ListForUser(ctx context.Context, userID uint) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListForUser"),
	)

	start := time.Now()

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, user_id, status, total_amount,
			shipping_address, billing_address,
			payment_method, transaction_id, notes,
			created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		log.Error("failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	byID := make(map[uint]*Order)
	ids := make([]int64, 0)

	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.Status, &o.TotalAmount,
			&o.ShippingAddress, &o.BillingAddress,
			&o.PaymentMethod, &o.TransactionID, &o.Notes,
			&o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			log.Error("failed to scan order row", zap.Error(err))
			return nil, err
		}
		o.Items = []OrderItem{}
		orders = append(orders, &o)
		byID[o.ID] = &o
		ids = append(ids, int64(o.ID))
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration error", zap.Error(err))
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		log.Error("failed to load order items", zap.Error(err))
		return nil, err
	}

	for _, item := range items {
		if o, ok := byID[item.OrderID]; ok {
			o.Items = append(o.Items, item)
		}
	}

	log.Debug("get orders success",
		zap.Int("count", len(orders)),
		zap.Duration("duration", time.Since(start)),
	)

	return orders, nil
}

func (r *repository) GetByID(ctx context.Context, userID, orderID uint) (*Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx, `
		SELECT
			id, user_id, status, total_amount,
			shipping_address, billing_address,
			payment_method, transaction_id, notes,
			created_at, updated_at
		FROM orders
		WHERE id = $1 AND user_id = $2
	`, orderID, userID).Scan(
		&o.ID, &o.UserID, &o.Status, &o.TotalAmount,
		&o.ShippingAddress, &o.BillingAddress,
		&o.PaymentMethod, &o.TransactionID, &o.Notes,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	items, err := r.loadItems(ctx, []int64{int64(o.ID)})
	if err != nil {
		return nil, err
	}
	o.Items = items

	return &o, nil
}

func (r *repository) loadItems(ctx context.Context, orderIDs []int64) ([]OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			oi.id, oi.order_id, oi.product_id, oi.quantity,
			oi.price, oi.total, oi.notes,
			p.product_title, p.thumbnail
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.id
	`, pq.Array(orderIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		var item OrderItem
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.Quantity,
			&item.Price, &item.Total, &item.Notes,
			&item.ProductTitle, &item.Thumbnail,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
