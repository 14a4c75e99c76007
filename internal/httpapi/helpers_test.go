package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"storefront-be/internal/address"
	"storefront-be/internal/cart"
	"storefront-be/internal/order"
	"storefront-be/internal/product"
	"storefront-be/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) GetList(ctx context.Context, opts product.ListOptions) ([]*product.Product, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id uint) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, p *product.Product) (*product.Product, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, p *product.Product) (*product.Product, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) List(ctx context.Context, userID uint) ([]*cart.CartLine, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cart.CartLine), args.Error(1)
}

func (m *MockCartService) Upsert(ctx context.Context, params cart.UpsertParams) (*cart.CartLine, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.CartLine), args.Error(1)
}

func (m *MockCartService) UpdateQuantity(ctx context.Context, params cart.UpdateQuantityParams) (*cart.CartLine, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.CartLine), args.Error(1)
}

func (m *MockCartService) Remove(ctx context.Context, userID, lineID uint) error {
	args := m.Called(ctx, userID, lineID)
	return args.Error(0)
}

func (m *MockCartService) ClearAll(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockAddressService struct {
	mock.Mock
}

func (m *MockAddressService) List(ctx context.Context, userID uint) ([]*address.Address, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*address.Address), args.Error(1)
}

func (m *MockAddressService) Get(ctx context.Context, userID, id uint) (*address.Address, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*address.Address), args.Error(1)
}

func (m *MockAddressService) Create(ctx context.Context, addr *address.Address) (*address.Address, error) {
	args := m.Called(ctx, addr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*address.Address), args.Error(1)
}

func (m *MockAddressService) Update(ctx context.Context, addr *address.Address) (*address.Address, error) {
	args := m.Called(ctx, addr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*address.Address), args.Error(1)
}

func (m *MockAddressService) Delete(ctx context.Context, userID, id uint) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) PlaceOrder(ctx context.Context, params order.PlaceOrderParams) (*order.Order, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) ListForUser(ctx context.Context, userID uint) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderService) GetOrderDetail(ctx context.Context, userID, orderID uint) (*order.Order, error) {
	args := m.Called(ctx, userID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type testMocks struct {
	products  *MockProductService
	carts     *MockCartService
	addresses *MockAddressService
	orders    *MockOrderService
}

// newTestRouter wires the handler routes behind a middleware that stamps the
// given user into the request context, standing in for the JWT middleware.
func newTestRouter(userID uint, role string) (*gin.Engine, *testMocks) {
	m := &testMocks{
		products:  new(MockProductService),
		carts:     new(MockCartService),
		addresses: new(MockAddressService),
		orders:    new(MockOrderService),
	}
	h := NewHandler(m.products, m.carts, m.addresses, m.orders)

	r := gin.New()
	if userID != 0 {
		r.Use(func(c *gin.Context) {
			ctx := utils.SetUserContext(c.Request.Context(), userID, "user@example.com", role)
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}

	api := r.Group("/api")
	api.GET("/products", h.listProducts)
	api.GET("/products/:id", h.getProduct)
	api.POST("/products", h.createProduct)
	api.PUT("/products/:id", h.updateProduct)
	api.DELETE("/products/:id", h.deleteProduct)

	api.GET("/cart", h.listCart)
	api.POST("/cart", h.upsertCartLine)
	api.PUT("/cart/:id", h.updateCartLine)
	api.DELETE("/cart/:id", h.removeCartLine)
	api.DELETE("/cart", h.clearCart)

	api.GET("/orders", h.listOrders)
	api.POST("/orders", h.placeOrder)
	api.GET("/orders/:id", h.getOrder)

	api.GET("/addresses", h.listAddresses)
	api.POST("/addresses", h.createAddress)
	api.PUT("/addresses/:id", h.updateAddress)
	api.DELETE("/addresses/:id", h.deleteAddress)

	return r, m
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
