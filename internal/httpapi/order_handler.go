package httpapi

import (
	"errors"
	"net/http"

	"storefront-be/internal/order"
	"storefront-be/internal/utils"

	"github.com/gin-gonic/gin"
)

type placeOrderRequest struct {
	ShippingAddress string  `json:"shipping_address" validate:"required"`
	BillingAddress  string  `json:"billing_address" validate:"required"`
	PaymentMethod   string  `json:"payment_method" validate:"required"`
	Notes           *string `json:"notes"`
}

func (h *Handler) listOrders(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	orders, err := h.orders.ListForUser(ctx, userID)
	if err != nil {
		internalError(c)
		return
	}

	if orders == nil {
		orders = []*order.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

// placeOrder is the one endpoint with a transactional core behind it: the
// cart is read, totalled from its snapshot prices, written as an order and
// cleared, all-or-nothing.
func (h *Handler) placeOrder(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	var req placeOrderRequest
	if err := bindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	o, err := h.orders.PlaceOrder(ctx, order.PlaceOrderParams{
		UserID:          userID,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, order.ErrCartEmpty):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		case errors.Is(err, order.ErrMissingAddress):
			fieldError(c, "shipping_address", "shipping and billing address are required")
		case errors.Is(err, order.ErrMissingPayment):
			fieldError(c, "payment_method", "payment method is required")
		default:
			internalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": o})
}

func (h *Handler) getOrder(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	orderID, err := utils.ToUint(c.Param("id"))
	if err != nil {
		notFound(c, "order not found")
		return
	}

	o, err := h.orders.GetOrderDetail(ctx, userID, orderID)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			notFound(c, "order not found")
			return
		}
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, o)
}
