package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"storefront-be/internal/product"
	"storefront-be/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type productRequest struct {
	Title                string              `json:"product_title" validate:"required,max=255"`
	Description          string              `json:"product_description" validate:"required"`
	Category             *string             `json:"category" validate:"omitempty,max=255"`
	Brand                *string             `json:"brand" validate:"omitempty,max=255"`
	SKU                  *string             `json:"sku" validate:"omitempty,max=100"`
	Price                decimal.Decimal     `json:"price"`
	DiscountPercentage   decimal.NullDecimal `json:"discount_percentage"`
	Rating               decimal.NullDecimal `json:"rating"`
	Stock                int                 `json:"stock"`
	AvailabilityStatus   string              `json:"availability_status" validate:"required"`
	MinimumOrderQuantity int                 `json:"minimum_order_quantity" validate:"required,min=1"`
	Weight               decimal.NullDecimal `json:"weight"`
	WarrantyInformation  *string             `json:"warranty_information" validate:"omitempty,max=500"`
	ShippingInformation  *string             `json:"shipping_information" validate:"omitempty,max=500"`
	ReturnPolicy         *string             `json:"return_policy" validate:"omitempty,max=500"`
	Tags                 []string            `json:"tags" validate:"omitempty,dive,max=50"`
	Dimensions           *product.Dimensions `json:"dimensions"`
	Reviews              []product.Review    `json:"reviews"`
	Meta                 map[string]any      `json:"meta"`
	Thumbnail            *string             `json:"thumbnail" validate:"omitempty,url,max=255"`
	Images               []string            `json:"images" validate:"omitempty,dive,url,max=255"`
}

func (r *productRequest) toModel() *product.Product {
	return &product.Product{
		Title:                r.Title,
		Description:          r.Description,
		Category:             r.Category,
		Brand:                r.Brand,
		SKU:                  r.SKU,
		Price:                r.Price,
		DiscountPercentage:   r.DiscountPercentage,
		Rating:               r.Rating,
		Stock:                r.Stock,
		AvailabilityStatus:   product.AvailabilityStatus(r.AvailabilityStatus),
		MinimumOrderQuantity: r.MinimumOrderQuantity,
		Weight:               r.Weight,
		WarrantyInformation:  r.WarrantyInformation,
		ShippingInformation:  r.ShippingInformation,
		ReturnPolicy:         r.ReturnPolicy,
		Tags:                 product.StringList(r.Tags),
		Dimensions:           r.Dimensions,
		Reviews:              product.ReviewList(r.Reviews),
		Meta:                 product.MetaMap(r.Meta),
		Thumbnail:            r.Thumbnail,
		Images:               product.StringList(r.Images),
	}
}

func (h *Handler) listProducts(c *gin.Context) {
	ctx := c.Request.Context()

	opts := product.ListOptions{}

	if v := c.Query("category"); v != "" {
		opts.Category = &v
	}
	if v := c.Query("brand"); v != "" {
		opts.Brand = &v
	}
	if v := c.Query("availability_status"); v != "" {
		status := product.AvailabilityStatus(v)
		opts.AvailabilityStatus = &status
	}
	if v := c.Query("search"); v != "" {
		opts.Search = &v
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			limit := int32(n)
			opts.Limit = &limit
		}
	}
	if v := c.Query("page"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			page := int32(n)
			opts.Page = &page
		}
	}

	products, err := h.products.GetList(ctx, opts)
	if err != nil {
		internalError(c)
		return
	}

	if products == nil {
		products = []*product.Product{}
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) getProduct(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := utils.ToUint(c.Param("id"))
	if err != nil {
		notFound(c, "product not found")
		return
	}

	p, err := h.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			notFound(c, "product not found")
			return
		}
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *Handler) createProduct(c *gin.Context) {
	ctx := c.Request.Context()

	var req productRequest
	if err := bindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	p, err := h.products.Create(ctx, req.toModel())
	if err != nil {
		h.productError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": p})
}

func (h *Handler) updateProduct(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := utils.ToUint(c.Param("id"))
	if err != nil {
		notFound(c, "product not found")
		return
	}

	var req productRequest
	if err := bindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	p := req.toModel()
	p.ID = id

	updated, err := h.products.Update(ctx, p)
	if err != nil {
		h.productError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": updated})
}

func (h *Handler) deleteProduct(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := utils.ToUint(c.Param("id"))
	if err != nil {
		notFound(c, "product not found")
		return
	}

	if err := h.products.Delete(ctx, id); err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			notFound(c, "product not found")
			return
		}
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) productError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, product.ErrProductNotFound):
		notFound(c, "product not found")
	case errors.Is(err, product.ErrMissingTitle):
		fieldError(c, "product_title", err.Error())
	case errors.Is(err, product.ErrInvalidPrice):
		fieldError(c, "price", err.Error())
	case errors.Is(err, product.ErrInvalidStock):
		fieldError(c, "stock", err.Error())
	case errors.Is(err, product.ErrInvalidMinOrderQty):
		fieldError(c, "minimum_order_quantity", err.Error())
	case errors.Is(err, product.ErrInvalidStatus):
		fieldError(c, "availability_status", err.Error())
	default:
		internalError(c)
	}
}
