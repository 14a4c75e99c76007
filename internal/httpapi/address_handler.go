package httpapi

import (
	"errors"
	"net/http"

	"storefront-be/internal/address"
	"storefront-be/internal/utils"

	"github.com/gin-gonic/gin"
)

type addressRequest struct {
	FirstName      string  `json:"first_name" validate:"required,max=255"`
	LastName       string  `json:"last_name" validate:"required,max=255"`
	Company        *string `json:"company" validate:"omitempty,max=255"`
	Address1       string  `json:"address_1" validate:"required,max=255"`
	Address2       *string `json:"address_2" validate:"omitempty,max=255"`
	City           string  `json:"city" validate:"required,max=255"`
	State          string  `json:"state" validate:"required,max=255"`
	PostalCode     string  `json:"postal_code" validate:"required,max=20"`
	Country        string  `json:"country" validate:"required,max=255"`
	Phone          *string `json:"phone" validate:"omitempty,max=20"`
	Email          string  `json:"email" validate:"required,email,max=255"`
	AdditionalInfo *string `json:"additional_info"`
}

func (r *addressRequest) toModel(userID uint) *address.Address {
	return &address.Address{
		UserID:         userID,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Company:        r.Company,
		Address1:       r.Address1,
		Address2:       r.Address2,
		City:           r.City,
		State:          r.State,
		PostalCode:     r.PostalCode,
		Country:        r.Country,
		Phone:          r.Phone,
		Email:          r.Email,
		AdditionalInfo: r.AdditionalInfo,
	}
}

func (h *Handler) listAddresses(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	addrs, err := h.addresses.List(ctx, userID)
	if err != nil {
		internalError(c)
		return
	}

	if addrs == nil {
		addrs = []*address.Address{}
	}
	c.JSON(http.StatusOK, addrs)
}

func (h *Handler) createAddress(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	var req addressRequest
	if err := bindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	addr, err := h.addresses.Create(ctx, req.toModel(userID))
	if err != nil {
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "address": addr})
}

func (h *Handler) updateAddress(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	addrID, err := utils.ToUint(c.Param("id"))
	if err != nil {
		notFound(c, "address not found")
		return
	}

	var req addressRequest
	if err := bindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	addr := req.toModel(userID)
	addr.ID = addrID

	updated, err := h.addresses.Update(ctx, addr)
	if err != nil {
		if errors.Is(err, address.ErrAddressNotFound) {
			notFound(c, "address not found")
			return
		}
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "address": updated})
}

func (h *Handler) deleteAddress(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	addrID, err := utils.ToUint(c.Param("id"))
	if err != nil {
		notFound(c, "address not found")
		return
	}

	if err := h.addresses.Delete(ctx, userID, addrID); err != nil {
		if errors.Is(err, address.ErrAddressNotFound) {
			notFound(c, "address not found")
			return
		}
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
