package cart

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"storefront-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, userID uint) ([]*CartLine, error)
	Upsert(ctx context.Context, params UpsertParams) (*CartLine, error)
	UpdateQuantity(ctx context.Context, params UpdateQuantityParams) (*CartLine, error)
	Remove(ctx context.Context, userID, lineID uint) error
	ClearAll(ctx context.Context, userID uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, userID uint) ([]*CartLine, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "List"),
	)

	start := time.Now()

	query := `
	SELECT
		c.id,
		c.user_id,
		c.product_id,
		c.quantity,
		c.price,
		c.created_at,
		c.updated_at,

		p.id,
		p.product_title,
		p.price,
		p.stock,
		p.availability_status,
		p.thumbnail
	FROM carts c
	JOIN products p ON p.id = c.product_id
	WHERE c.user_id = $1
	ORDER BY c.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("query failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}
	defer rows.Close()

	var lines []*CartLine

	for rows.Next() {
		line := &CartLine{Product: &LineProduct{}}
		if err := rows.Scan(
			&line.ID,
			&line.UserID,
			&line.ProductID,
			&line.Quantity,
			&line.Price,
			&line.CreatedAt,
			&line.UpdatedAt,

			&line.Product.ID,
			&line.Product.Title,
			&line.Product.Price,
			&line.Product.Stock,
			&line.Product.AvailabilityStatus,
			&line.Product.Thumbnail,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	log.Debug("query success",
		zap.Int("rows", len(lines)),
		zap.Duration("duration", time.Since(start)),
	)

	return lines, nil
}

// Upsert replaces quantity and price snapshot when a line for
// (user_id, product_id) already exists. Last write wins, not "add N more".
func (r *repository) Upsert(ctx context.Context, params UpsertParams) (*CartLine, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Upsert"),
		zap.Uint("product_id", params.ProductID),
	)

	query := `
	INSERT INTO carts (user_id, product_id, quantity, price)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (user_id, product_id)
	DO UPDATE SET
		quantity = EXCLUDED.quantity,
		price = EXCLUDED.price,
		updated_at = NOW()
	RETURNING id, user_id, product_id, quantity, price, created_at, updated_at
	`

	var line CartLine
	err := r.db.QueryRowContext(ctx, query,
		params.UserID,
		params.ProductID,
		params.Quantity,
		params.Price,
	).Scan(
		&line.ID,
		&line.UserID,
		&line.ProductID,
		&line.Quantity,
		&line.Price,
		&line.CreatedAt,
		&line.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to upsert cart line", zap.Error(err))
		return nil, err
	}

	log.Info("cart line upserted", zap.Uint("cart_line_id", line.ID))
	return &line, nil
}

func (r *repository) UpdateQuantity(ctx context.Context, params UpdateQuantityParams) (*CartLine, error) {
	query := `
	UPDATE carts
	SET quantity = $1,
	    updated_at = NOW()
	WHERE id = $2 AND user_id = $3
	RETURNING id, user_id, product_id, quantity, price, created_at, updated_at
	`

	var line CartLine
	err := r.db.QueryRowContext(ctx, query,
		params.Quantity,
		params.LineID,
		params.UserID,
	).Scan(
		&line.ID,
		&line.UserID,
		&line.ProductID,
		&line.Quantity,
		&line.Price,
		&line.CreatedAt,
		&line.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCartLineNotFound
	}
	if err != nil {
		return nil, err
	}

	return &line, nil
}

func (r *repository) Remove(ctx context.Context, userID, lineID uint) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM carts
		WHERE id = $1 AND user_id = $2
	`, lineID, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrCartLineNotFound
	}

	return nil
}

func (r *repository) ClearAll(ctx context.Context, userID uint) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM carts
		WHERE user_id = $1
	`, userID)
	return err
}
