package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// Order is created exactly once per successful checkout and is immutable
// afterwards except for status transitions driven by fulfilment.
type Order struct {
	ID              uint            `json:"id"`
	UserID          uint            `json:"user_id"`
	Status          OrderStatus     `json:"status"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	ShippingAddress string          `json:"shipping_address"`
	BillingAddress  string          `json:"billing_address"`
	PaymentMethod   string          `json:"payment_method"`
	TransactionID   string          `json:"transaction_id"`
	Notes           *string         `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	Items []OrderItem `json:"items"`
}

// OrderItem is the denormalized purchased-line snapshot. Price and Total are
// taken from the cart line at placement time and never recomputed.
type OrderItem struct {
	ID        uint            `json:"id"`
	OrderID   uint            `json:"order_id"`
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Total     decimal.Decimal `json:"total"`
	Notes     *string         `json:"notes,omitempty"`

	ProductTitle string  `json:"product_title,omitempty"`
	Thumbnail    *string `json:"thumbnail,omitempty"`
}

type PlaceOrderParams struct {
	UserID          uint
	ShippingAddress string
	BillingAddress  string
	PaymentMethod   string
	Notes           *string
}
