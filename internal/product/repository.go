package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"storefront-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetList(ctx context.Context, opts ListOptions) ([]*Product, error)
	GetByID(ctx context.Context, id uint) (*Product, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id uint) error
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `
	id, product_title, product_description, category, brand, sku,
	price, discount_percentage, rating, stock, availability_status,
	minimum_order_quantity, weight,
	warranty_information, shipping_information, return_policy,
	tags, dimensions, reviews, meta, thumbnail, images,
	created_at, updated_at
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*Product, error) {
	var p Product
	var dims DimensionsColumn

	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Category, &p.Brand, &p.SKU,
		&p.Price, &p.DiscountPercentage, &p.Rating, &p.Stock, &p.AvailabilityStatus,
		&p.MinimumOrderQuantity, &p.Weight,
		&p.WarrantyInformation, &p.ShippingInformation, &p.ReturnPolicy,
		&p.Tags, &dims, &p.Reviews, &p.Meta, &p.Thumbnail, &p.Images,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Dimensions = dims.D
	return &p, nil
}

func (r *repository) GetList(ctx context.Context, opts ListOptions) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetList"),
	)

	start := time.Now()

	// ---------- pagination ----------
	finalLimit := int32(20)
	if opts.Limit != nil && *opts.Limit > 0 {
		finalLimit = *opts.Limit
	}
	if finalLimit > 100 {
		finalLimit = 100
	}

	finalPage := int32(1)
	if opts.Page != nil && *opts.Page > 0 {
		finalPage = *opts.Page
	}

	offset := (finalPage - 1) * finalLimit

	// ---------- where ----------
	query := `SELECT` + productColumns + `FROM products WHERE 1=1`
	args := []any{}
	argIndex := 1

	if opts.Category != nil && *opts.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argIndex)
		args = append(args, *opts.Category)
		argIndex++
	}

	if opts.Brand != nil && *opts.Brand != "" {
		query += fmt.Sprintf(" AND brand = $%d", argIndex)
		args = append(args, *opts.Brand)
		argIndex++
	}

	if opts.AvailabilityStatus != nil && *opts.AvailabilityStatus != "" {
		query += fmt.Sprintf(" AND availability_status = $%d", argIndex)
		args = append(args, *opts.AvailabilityStatus)
		argIndex++
	}

	if opts.Search != nil && *opts.Search != "" {
		query += fmt.Sprintf(
			" AND (product_title ILIKE $%d OR product_description ILIKE $%d)",
			argIndex, argIndex,
		)
		args = append(args, "%"+*opts.Search+"%")
		argIndex++
	}

	query += fmt.Sprintf(" ORDER BY id LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, finalLimit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return nil, err
	}
	defer rows.Close()

	products := make([]*Product, 0, finalLimit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	log.Debug("query success",
		zap.Int("rows", len(products)),
		zap.Duration("duration", time.Since(start)),
	)

	return products, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Product, error) {
	query := `SELECT` + productColumns + `FROM products WHERE id = $1`

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *repository) Create(ctx context.Context, p *Product) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("title", p.Title),
	)

	query := `
	INSERT INTO products (
		product_title, product_description, category, brand, sku,
		price, discount_percentage, rating, stock, availability_status,
		minimum_order_quantity, weight,
		warranty_information, shipping_information, return_policy,
		tags, dimensions, reviews, meta, thumbnail, images
	)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)
	RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		p.Title, p.Description, p.Category, p.Brand, p.SKU,
		p.Price, p.DiscountPercentage, p.Rating, p.Stock, p.AvailabilityStatus,
		p.MinimumOrderQuantity, p.Weight,
		p.WarrantyInformation, p.ShippingInformation, p.ReturnPolicy,
		p.Tags, DimensionsColumn{D: p.Dimensions}, p.Reviews, p.Meta, p.Thumbnail, p.Images,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return err
	}

	log.Info("product created", zap.Uint("product_id", p.ID))
	return nil
}

func (r *repository) Update(ctx context.Context, p *Product) error {
	query := `
	UPDATE products SET
		product_title = $1, product_description = $2, category = $3, brand = $4, sku = $5,
		price = $6, discount_percentage = $7, rating = $8, stock = $9, availability_status = $10,
		minimum_order_quantity = $11, weight = $12,
		warranty_information = $13, shipping_information = $14, return_policy = $15,
		tags = $16, dimensions = $17, reviews = $18, meta = $19, thumbnail = $20, images = $21,
		updated_at = NOW()
	WHERE id = $22
	RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		p.Title, p.Description, p.Category, p.Brand, p.SKU,
		p.Price, p.DiscountPercentage, p.Rating, p.Stock, p.AvailabilityStatus,
		p.MinimumOrderQuantity, p.Weight,
		p.WarrantyInformation, p.ShippingInformation, p.ReturnPolicy,
		p.Tags, DimensionsColumn{D: p.Dimensions}, p.Reviews, p.Meta, p.Thumbnail, p.Images,
		p.ID,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrProductNotFound
	}

	return err
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

func (r *repository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM products WHERE sku = $1)`, sku,
	).Scan(&exists)
	return exists, err
}
