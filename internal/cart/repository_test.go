package cart

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	params := UpsertParams{
		UserID:    1,
		ProductID: 7,
		Quantity:  2,
		Price:     decimal.RequireFromString("10.00"),
	}

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "user_id", "product_id", "quantity", "price", "created_at", "updated_at"}).
			AddRow(3, 1, 7, 2, "10.00", time.Now(), time.Now())

		mock.ExpectQuery("INSERT INTO carts").
			WithArgs(params.UserID, params.ProductID, params.Quantity, sqlmock.AnyArg()).
			WillReturnRows(rows)

		res, err := repo.Upsert(context.Background(), params)
		assert.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, uint(3), res.ID)
		assert.True(t, res.Price.Equal(params.Price))
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO carts").
			WillReturnError(errors.New("db error"))

		_, err := repo.Upsert(context.Background(), params)
		assert.Error(t, err)
	})
}

func TestRepository_UpdateQuantity(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	params := UpdateQuantityParams{
		UserID:   1,
		LineID:   3,
		Quantity: 5,
	}

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "user_id", "product_id", "quantity", "price", "created_at", "updated_at"}).
			AddRow(3, 1, 7, 5, "10.00", time.Now(), time.Now())

		mock.ExpectQuery("UPDATE carts").
			WithArgs(params.Quantity, params.LineID, params.UserID).
			WillReturnRows(rows)

		res, err := repo.UpdateQuantity(context.Background(), params)
		assert.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, 5, res.Quantity)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("UPDATE carts").
			WithArgs(params.Quantity, params.LineID, params.UserID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.UpdateQuantity(context.Background(), params)
		assert.ErrorIs(t, err, ErrCartLineNotFound)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("UPDATE carts").
			WillReturnError(errors.New("db error"))

		_, err := repo.UpdateQuantity(context.Background(), params)
		assert.Error(t, err)
	})
}

func TestRepository_Remove(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM carts").
			WithArgs(uint(3), uint(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Remove(context.Background(), 1, 3)
		assert.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM carts").
			WithArgs(uint(99), uint(1)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Remove(context.Background(), 1, 99)
		assert.ErrorIs(t, err, ErrCartLineNotFound)
	})
}

func TestRepository_ClearAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM carts").
			WithArgs(uint(1)).
			WillReturnResult(sqlmock.NewResult(0, 2))

		err := repo.ClearAll(context.Background(), 1)
		assert.NoError(t, err)
	})

	t.Run("EmptyCartIsFine", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM carts").
			WithArgs(uint(1)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.ClearAll(context.Background(), 1)
		assert.NoError(t, err)
	})
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{
			"c_id", "c_user_id", "c_product_id", "c_quantity", "c_price", "c_created_at", "c_updated_at",
			"p_id", "p_title", "p_price", "p_stock", "p_status", "p_thumbnail",
		}).AddRow(
			3, 1, 7, 2, "10.00", time.Now(), time.Now(),
			7, "Wireless Mouse", "12.50", 40, "In Stock", nil,
		)

		mock.ExpectQuery("FROM carts c").
			WithArgs(uint(1)).
			WillReturnRows(rows)

		lines, err := repo.List(context.Background(), 1)
		assert.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, "Wireless Mouse", lines[0].Product.Title)
		// The snapshot on the line, not the live catalog price, is what checkout bills.
		assert.True(t, lines[0].Price.Equal(decimal.RequireFromString("10.00")))
		assert.True(t, lines[0].Product.Price.Equal(decimal.RequireFromString("12.50")))
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("FROM carts c").
			WillReturnError(errors.New("db error"))

		_, err := repo.List(context.Background(), 1)
		assert.Error(t, err)
	})
}
