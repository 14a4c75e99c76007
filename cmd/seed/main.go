package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"storefront-be/internal/config"
	"storefront-be/internal/db"
	"storefront-be/internal/product"

	"github.com/shopspring/decimal"
)

const catalogURL = "https://dummyjson.com/products"

type apiReview struct {
	Rating        float64 `json:"rating"`
	Comment       string  `json:"comment"`
	ReviewerName  string  `json:"reviewerName"`
	ReviewerEmail string  `json:"reviewerEmail"`
}

type apiProduct struct {
	ID                   int                 `json:"id"`
	Title                string              `json:"title"`
	Description          string              `json:"description"`
	Category             string              `json:"category"`
	Price                decimal.Decimal     `json:"price"`
	DiscountPercentage   decimal.Decimal     `json:"discountPercentage"`
	Rating               decimal.Decimal     `json:"rating"`
	Stock                int                 `json:"stock"`
	Tags                 []string            `json:"tags"`
	Brand                string              `json:"brand"`
	Weight               decimal.Decimal     `json:"weight"`
	Dimensions           *product.Dimensions `json:"dimensions"`
	WarrantyInformation  string              `json:"warrantyInformation"`
	ShippingInformation  string              `json:"shippingInformation"`
	Reviews              []apiReview         `json:"reviews"`
	ReturnPolicy         string              `json:"returnPolicy"`
	MinimumOrderQuantity int                 `json:"minimumOrderQuantity"`
	Meta                 map[string]any      `json:"meta"`
	Thumbnail            string              `json:"thumbnail"`
	Images               []string            `json:"images"`
}

type apiResponse struct {
	Products []apiProduct `json:"products"`
}

func main() {
	count := flag.Int("count", 30, "number of products to import")
	flag.Parse()

	cfg := config.LoadConfig()
	database := db.InitDB(cfg)
	defer database.Close()

	repo := product.NewRepository(database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	imported, err := seed(ctx, repo, *count)
	if err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	log.Printf("Successfully imported %d products", imported)
}

func seed(ctx context.Context, repo product.Repository, count int) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s?limit=%d", catalogURL, count), nil)
	if err != nil {
		return 0, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch products from API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("catalog API returned status %d", resp.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	imported := 0
	for _, ap := range body.Products {
		sku := fmt.Sprintf("API-%d", ap.ID)

		// Skip if already imported
		exists, err := repo.ExistsBySKU(ctx, sku)
		if err != nil {
			return imported, err
		}
		if exists {
			continue
		}

		if err := repo.Create(ctx, toProduct(ap, sku)); err != nil {
			return imported, fmt.Errorf("failed to import %q: %w", ap.Title, err)
		}
		imported++
	}

	return imported, nil
}

func toProduct(ap apiProduct, sku string) *product.Product {
	status := product.StatusInStock
	if ap.Stock <= 0 {
		status = product.StatusOutOfStock
	}

	brand := ap.Brand
	if brand == "" {
		brand = "Unknown Brand"
	}

	minQty := ap.MinimumOrderQuantity
	if minQty < 1 {
		minQty = 1
	}

	reviews := make(product.ReviewList, 0, len(ap.Reviews))
	for _, r := range ap.Reviews {
		reviews = append(reviews, product.Review{
			User:    r.ReviewerName,
			Rating:  r.Rating,
			Comment: r.Comment,
		})
	}

	return &product.Product{
		Title:                ap.Title,
		Description:          ap.Description,
		Category:             strPtr(ap.Category),
		Brand:                &brand,
		SKU:                  &sku,
		Price:                ap.Price,
		DiscountPercentage:   decimal.NewNullDecimal(ap.DiscountPercentage),
		Rating:               decimal.NewNullDecimal(ap.Rating),
		Stock:                ap.Stock,
		AvailabilityStatus:   status,
		MinimumOrderQuantity: minQty,
		Weight:               decimal.NewNullDecimal(ap.Weight),
		WarrantyInformation:  strPtr(ap.WarrantyInformation),
		ShippingInformation:  strPtr(ap.ShippingInformation),
		ReturnPolicy:         strPtr(ap.ReturnPolicy),
		Tags:                 product.StringList(ap.Tags),
		Dimensions:           ap.Dimensions,
		Reviews:              reviews,
		Meta:                 product.MetaMap(ap.Meta),
		Thumbnail:            strPtr(ap.Thumbnail),
		Images:               product.StringList(ap.Images),
	}
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
