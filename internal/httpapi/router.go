package httpapi

import (
	"net/http"
	"reflect"
	"strings"

	"storefront-be/internal/address"
	"storefront-be/internal/cart"
	"storefront-be/internal/metrics"
	"storefront-be/internal/middleware"
	"storefront-be/internal/order"
	"storefront-be/internal/product"

	"storefront-be/internal/logger"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

// Handler groups the services behind the REST API.
type Handler struct {
	products  product.Service
	carts     cart.Service
	addresses address.Service
	orders    order.Service
	validate  *validatorv10.Validate
}

func NewHandler(
	products product.Service,
	carts cart.Service,
	addresses address.Service,
	orders order.Service,
) *Handler {
	return &Handler{
		products:  products,
		carts:     carts,
		addresses: addresses,
		orders:    orders,
		validate:  newValidator(),
	}
}

// newValidator keys validation errors by json tag so 422 field maps use the
// same names the client sent.
func newValidator() *validatorv10.Validate {
	v := validatorv10.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// NewRouter builds the gin engine with the full middleware chain and routes.
func NewRouter(h *Handler, appEnv string) *gin.Engine {
	if appEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestIDMiddleware())
	r.Use(logger.LoggingMiddleware())
	r.Use(middleware.AuthMiddleware())
	r.Use(middleware.RateLimitMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"checkout": metrics.CheckoutStats(),
		})
	})

	api := r.Group("/api")

	// Public catalog
	api.GET("/products", h.listProducts)
	api.GET("/products/:id", h.getProduct)

	// Admin catalog management
	admin := api.Group("/products", middleware.RequireAuth(), middleware.RequireAdmin())
	admin.POST("", h.createProduct)
	admin.PUT("/:id", h.updateProduct)
	admin.DELETE("/:id", h.deleteProduct)

	// Authenticated storefront
	authed := api.Group("", middleware.RequireAuth())

	authed.GET("/cart", h.listCart)
	authed.POST("/cart", h.upsertCartLine)
	authed.PUT("/cart/:id", h.updateCartLine)
	authed.DELETE("/cart/:id", h.removeCartLine)
	authed.DELETE("/cart", h.clearCart)

	authed.GET("/orders", h.listOrders)
	authed.POST("/orders", h.placeOrder)
	authed.GET("/orders/:id", h.getOrder)

	authed.GET("/addresses", h.listAddresses)
	authed.POST("/addresses", h.createAddress)
	authed.PUT("/addresses/:id", h.updateAddress)
	authed.DELETE("/addresses/:id", h.deleteAddress)

	return r
}
