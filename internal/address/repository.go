package address

import (
	"context"
	"database/sql"
	"errors"

	"storefront-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetByUserID(ctx context.Context, userID uint) ([]*Address, error)
	GetByID(ctx context.Context, userID, id uint) (*Address, error)
	Create(ctx context.Context, addr *Address) error
	Update(ctx context.Context, addr *Address) error
	Delete(ctx context.Context, userID, id uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const addressColumns = `
	id, user_id,
	first_name, last_name, company,
	address_1, address_2,
	city, state, postal_code, country,
	phone, email, additional_info,
	created_at, updated_at
`

func scanAddress(row interface{ Scan(dest ...any) error }) (*Address, error) {
	var a Address
	err := row.Scan(
		&a.ID, &a.UserID,
		&a.FirstName, &a.LastName, &a.Company,
		&a.Address1, &a.Address2,
		&a.City, &a.State, &a.PostalCode, &a.Country,
		&a.Phone, &a.Email, &a.AdditionalInfo,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) GetByUserID(ctx context.Context, userID uint) ([]*Address, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "GetByUserID"),
	)

	query := `SELECT` + addressColumns + `
	FROM addresses
	WHERE user_id = $1
	ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var res []*Address
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		res = append(res, a)
	}

	return res, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, userID, id uint) (*Address, error) {
	query := `SELECT` + addressColumns + `
	FROM addresses
	WHERE id = $1 AND user_id = $2
	LIMIT 1`

	a, err := scanAddress(r.db.QueryRowContext(ctx, query, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAddressNotFound
	}
	if err != nil {
		return nil, err
	}

	return a, nil
}

func (r *repository) Create(ctx context.Context, addr *Address) error {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "Create"),
	)

	query := `
	INSERT INTO addresses (
		user_id,
		first_name, last_name, company,
		address_1, address_2,
		city, state, postal_code, country,
		phone, email, additional_info
	)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		addr.UserID,
		addr.FirstName, addr.LastName, addr.Company,
		addr.Address1, addr.Address2,
		addr.City, addr.State, addr.PostalCode, addr.Country,
		addr.Phone, addr.Email, addr.AdditionalInfo,
	).Scan(&addr.ID, &addr.CreatedAt, &addr.UpdatedAt)
	if err != nil {
		log.Error("insert failed", zap.Error(err))
		return err
	}

	log.Info("address created", zap.Uint("address_id", addr.ID))
	return nil
}

func (r *repository) Update(ctx context.Context, addr *Address) error {
	query := `
	UPDATE addresses SET
		first_name = $1, last_name = $2, company = $3,
		address_1 = $4, address_2 = $5,
		city = $6, state = $7, postal_code = $8, country = $9,
		phone = $10, email = $11, additional_info = $12,
		updated_at = NOW()
	WHERE id = $13 AND user_id = $14
	RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		addr.FirstName, addr.LastName, addr.Company,
		addr.Address1, addr.Address2,
		addr.City, addr.State, addr.PostalCode, addr.Country,
		addr.Phone, addr.Email, addr.AdditionalInfo,
		addr.ID, addr.UserID,
	).Scan(&addr.CreatedAt, &addr.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrAddressNotFound
	}

	return err
}

func (r *repository) Delete(ctx context.Context, userID, id uint) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM addresses
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrAddressNotFound
	}

	return nil
}
