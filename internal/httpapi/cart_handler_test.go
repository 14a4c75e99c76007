package httpapi

import (
	"net/http"
	"testing"

	"storefront-be/internal/cart"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUpsertCartLine(t *testing.T) {
	body := map[string]any{
		"product_id": 7,
		"quantity":   2,
		"price":      "10.00",
	}

	t.Run("Success", func(t *testing.T) {
		r, m := newTestRouter(1, "USER")

		m.carts.On("Upsert", mock.Anything, mock.MatchedBy(func(p cart.UpsertParams) bool {
			return p.UserID == 1 && p.ProductID == 7 && p.Quantity == 2 &&
				p.Price.Equal(decimal.RequireFromString("10.00"))
		})).Return(&cart.CartLine{ID: 3, UserID: 1, ProductID: 7, Quantity: 2}, nil)

		w := doJSON(t, r, http.MethodPost, "/api/cart", body)

		assert.Equal(t, http.StatusOK, w.Code)
		res := decodeBody(t, w)
		assert.Equal(t, true, res["success"])
		m.carts.AssertExpectations(t)
	})

	t.Run("ProductNotFound", func(t *testing.T) {
		r, m := newTestRouter(1, "USER")

		m.carts.On("Upsert", mock.Anything, mock.Anything).Return(nil, cart.ErrProductNotFound)

		w := doJSON(t, r, http.MethodPost, "/api/cart", body)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		res := decodeBody(t, w)
		fields := res["fields"].(map[string]any)
		assert.Contains(t, fields, "product_id")
	})

	t.Run("MissingPriceFailsValidation", func(t *testing.T) {
		r, m := newTestRouter(1, "USER")

		w := doJSON(t, r, http.MethodPost, "/api/cart", map[string]any{
			"product_id": 7,
			"quantity":   2,
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		res := decodeBody(t, w)
		fields := res["fields"].(map[string]any)
		assert.Contains(t, fields, "price")
		m.carts.AssertNotCalled(t, "Upsert")
	})

	t.Run("ExplicitZeroPriceAllowed", func(t *testing.T) {
		r, m := newTestRouter(1, "USER")

		m.carts.On("Upsert", mock.Anything, mock.MatchedBy(func(p cart.UpsertParams) bool {
			return p.Price.IsZero()
		})).Return(&cart.CartLine{ID: 3, UserID: 1, ProductID: 7, Quantity: 2}, nil)

		w := doJSON(t, r, http.MethodPost, "/api/cart", map[string]any{
			"product_id": 7,
			"quantity":   2,
			"price":      "0.00",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		m.carts.AssertExpectations(t)
	})

	t.Run("ZeroQuantityFailsValidation", func(t *testing.T) {
		r, m := newTestRouter(1, "USER")

		w := doJSON(t, r, http.MethodPost, "/api/cart", map[string]any{
			"product_id": 7,
			"quantity":   0,
			"price":      "10.00",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		m.carts.AssertNotCalled(t, "Upsert")
	})

	t.Run("NegativePrice", func(t *testing.T) {
		r, m := newTestRouter(1, "USER")

		m.carts.On("Upsert", mock.Anything, mock.Anything).Return(nil, cart.ErrInvalidPrice)

		w := doJSON(t, r, http.MethodPost, "/api/cart", map[string]any{
			"product_id": 7,
			"quantity":   2,
			"price":      "-1.00",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		res := decodeBody(t, w)
		fields := res["fields"].(map[string]any)
		assert.Contains(t, fields, "price")
	})
}

func TestListCart(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, m := newTestRouter(1, "USER")

		m.carts.On("List", mock.Anything, uint(1)).Return([]*cart.CartLine{
			{ID: 3, UserID: 1, ProductID: 7, Quantity: 2},
		}, nil)

		w := doJSON(t, r, http.MethodGet, "/api/cart", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("EmptyCartIsNotNull", func(t *testing.T) {
		r, m := newTestRouter(1, "USER")

		m.carts.On("List", mock.Anything, uint(1)).Return(nil, nil)

		w := doJSON(t, r, http.MethodGet, "/api/cart", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})
}

func TestUpdateCartLine(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, m := newTestRouter(1, "USER")

		m.carts.On("UpdateQuantity", mock.Anything, cart.UpdateQuantityParams{
			UserID:   1,
			LineID:   3,
			Quantity: 5,
		}).Return(&cart.CartLine{ID: 3, Quantity: 5}, nil)

		w := doJSON(t, r, http.MethodPut, "/api/cart/3", map[string]int{"quantity": 5})

		assert.Equal(t, http.StatusOK, w.Code)
		m.carts.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		r, m := newTestRouter(1, "USER")

		m.carts.On("UpdateQuantity", mock.Anything, mock.Anything).
			Return(nil, cart.ErrCartLineNotFound)

		w := doJSON(t, r, http.MethodPut, "/api/cart/99", map[string]int{"quantity": 5})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRemoveCartLine(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, m := newTestRouter(1, "USER")

		m.carts.On("Remove", mock.Anything, uint(1), uint(3)).Return(nil)

		w := doJSON(t, r, http.MethodDelete, "/api/cart/3", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		r, m := newTestRouter(1, "USER")

		m.carts.On("Remove", mock.Anything, uint(1), uint(99)).Return(cart.ErrCartLineNotFound)

		w := doJSON(t, r, http.MethodDelete, "/api/cart/99", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestClearCart(t *testing.T) {
	r, m := newTestRouter(1, "USER")

	m.carts.On("ClearAll", mock.Anything, uint(1)).Return(nil)

	w := doJSON(t, r, http.MethodDelete, "/api/cart", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	m.carts.AssertExpectations(t)
}
