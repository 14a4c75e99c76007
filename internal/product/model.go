package product

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type AvailabilityStatus string

const (
	StatusInStock      AvailabilityStatus = "In Stock"
	StatusOutOfStock   AvailabilityStatus = "Out of Stock"
	StatusLowStock     AvailabilityStatus = "Low Stock"
	StatusPreorder     AvailabilityStatus = "Preorder"
	StatusDiscontinued AvailabilityStatus = "Discontinued"
)

func (s AvailabilityStatus) Valid() bool {
	switch s {
	case StatusInStock, StatusOutOfStock, StatusLowStock, StatusPreorder, StatusDiscontinued:
		return true
	}
	return false
}

type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

type Review struct {
	User    string  `json:"user"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

// Product is the catalog record. The descriptive jsonb blobs (tags, reviews,
// dimensions, meta, images) are stored and served verbatim; checkout never
// interprets them.
type Product struct {
	ID                   uint                `json:"id"`
	Title                string              `json:"product_title"`
	Description          string              `json:"product_description"`
	Category             *string             `json:"category,omitempty"`
	Brand                *string             `json:"brand,omitempty"`
	SKU                  *string             `json:"sku,omitempty"`
	Price                decimal.Decimal     `json:"price"`
	DiscountPercentage   decimal.NullDecimal `json:"discount_percentage,omitempty"`
	Rating               decimal.NullDecimal `json:"rating,omitempty"`
	Stock                int                 `json:"stock"`
	AvailabilityStatus   AvailabilityStatus  `json:"availability_status"`
	MinimumOrderQuantity int                 `json:"minimum_order_quantity"`
	Weight               decimal.NullDecimal `json:"weight,omitempty"`
	WarrantyInformation  *string             `json:"warranty_information,omitempty"`
	ShippingInformation  *string             `json:"shipping_information,omitempty"`
	ReturnPolicy         *string             `json:"return_policy,omitempty"`
	Tags                 StringList          `json:"tags,omitempty"`
	Dimensions           *Dimensions         `json:"dimensions,omitempty"`
	Reviews              ReviewList          `json:"reviews,omitempty"`
	Meta                 MetaMap             `json:"meta,omitempty"`
	Thumbnail            *string             `json:"thumbnail,omitempty"`
	Images               StringList          `json:"images,omitempty"`
	CreatedAt            time.Time           `json:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at"`
}

type ListOptions struct {
	Category           *string
	Brand              *string
	AvailabilityStatus *AvailabilityStatus
	Search             *string
	Limit              *int32
	Page               *int32
}

// StringList maps to a jsonb array column.
type StringList []string

func (l StringList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *StringList) Scan(src any) error          { return jsonbScan(src, l) }

// ReviewList maps to a jsonb array column.
type ReviewList []Review

func (l ReviewList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *ReviewList) Scan(src any) error          { return jsonbScan(src, l) }

// MetaMap maps to a jsonb object column (barcode, qrCode, ...).
type MetaMap map[string]any

func (m MetaMap) Value() (driver.Value, error) { return jsonbValue(m) }
func (m *MetaMap) Scan(src any) error          { return jsonbScan(src, m) }

// DimensionsColumn wraps the nullable jsonb dimensions object for scanning.
type DimensionsColumn struct {
	D *Dimensions
}

func (d DimensionsColumn) Value() (driver.Value, error) {
	if d.D == nil {
		return nil, nil
	}
	return jsonbValue(d.D)
}

func (d *DimensionsColumn) Scan(src any) error {
	if src == nil {
		d.D = nil
		return nil
	}
	d.D = &Dimensions{}
	return jsonbScan(src, d.D)
}

func jsonbValue(v any) (driver.Value, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal jsonb: %w", err)
	}
	return b, nil
}

func jsonbScan(src any, dst any) error {
	if src == nil {
		return nil
	}
	switch s := src.(type) {
	case []byte:
		return json.Unmarshal(s, dst)
	case string:
		return json.Unmarshal([]byte(s), dst)
	}
	return errors.New("unsupported jsonb source type")
}
