package httpapi

import (
	"errors"
	"net/http"

	"storefront-be/internal/cart"
	"storefront-be/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type upsertCartRequest struct {
	ProductID uint             `json:"product_id" validate:"required"`
	Quantity  int              `json:"quantity" validate:"required,min=1"`
	Price     *decimal.Decimal `json:"price" validate:"required"`
}

type updateCartRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

func (h *Handler) listCart(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	lines, err := h.carts.List(ctx, userID)
	if err != nil {
		internalError(c)
		return
	}

	if lines == nil {
		lines = []*cart.CartLine{}
	}
	c.JSON(http.StatusOK, lines)
}

func (h *Handler) upsertCartLine(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	var req upsertCartRequest
	if err := bindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	line, err := h.carts.Upsert(ctx, cart.UpsertParams{
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Price:     *req.Price,
	})
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrProductNotFound):
			fieldError(c, "product_id", "product not found")
		case errors.Is(err, cart.ErrInvalidPrice):
			fieldError(c, "price", "price must not be negative")
		case errors.Is(err, cart.ErrInvalidQuantity):
			fieldError(c, "quantity", "quantity must be at least 1")
		default:
			internalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "item": line})
}

func (h *Handler) updateCartLine(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	lineID, err := utils.ToUint(c.Param("id"))
	if err != nil {
		notFound(c, "cart line not found")
		return
	}

	var req updateCartRequest
	if err := bindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	line, err := h.carts.UpdateQuantity(ctx, cart.UpdateQuantityParams{
		UserID:   userID,
		LineID:   lineID,
		Quantity: req.Quantity,
	})
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrCartLineNotFound):
			notFound(c, "cart line not found")
		case errors.Is(err, cart.ErrInvalidQuantity):
			fieldError(c, "quantity", "quantity must be at least 1")
		default:
			internalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "item": line})
}

func (h *Handler) removeCartLine(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	lineID, err := utils.ToUint(c.Param("id"))
	if err != nil {
		notFound(c, "cart line not found")
		return
	}

	if err := h.carts.Remove(ctx, userID, lineID); err != nil {
		if errors.Is(err, cart.ErrCartLineNotFound) {
			notFound(c, "cart line not found")
			return
		}
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) clearCart(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	if err := h.carts.ClearAll(ctx, userID); err != nil {
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
