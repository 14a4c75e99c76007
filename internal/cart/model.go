package cart

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine holds one user's chosen quantity and the price snapshot captured
// when the line was added or last updated. Checkout bills from this snapshot,
// never from the live catalog price.
type CartLine struct {
	ID        uint            `json:"id"`
	UserID    uint            `json:"user_id"`
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	Product *LineProduct `json:"product,omitempty"`
}

// LineProduct is the slice of the catalog record joined in for display.
type LineProduct struct {
	ID                 uint            `json:"id"`
	Title              string          `json:"product_title"`
	Price              decimal.Decimal `json:"price"`
	Stock              int             `json:"stock"`
	AvailabilityStatus string          `json:"availability_status"`
	Thumbnail          *string         `json:"thumbnail,omitempty"`
}

type UpsertParams struct {
	UserID    uint
	ProductID uint
	Quantity  int
	Price     decimal.Decimal
}

type UpdateQuantityParams struct {
	UserID   uint
	LineID   uint
	Quantity int
}
