package main

import (
	"log"

	"storefront-be/internal/address"
	"storefront-be/internal/cart"
	"storefront-be/internal/config"
	"storefront-be/internal/db"
	"storefront-be/internal/httpapi"
	"storefront-be/internal/logger"
	"storefront-be/internal/order"
	"storefront-be/internal/product"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, productRepo)

	addressRepo := address.NewRepository(database)
	addressSvc := address.NewService(addressRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	handler := httpapi.NewHandler(productSvc, cartSvc, addressSvc, orderSvc)
	router := httpapi.NewRouter(handler, cfg.AppEnv)

	log.Printf("🚀 storefront API running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(router.Run(":" + cfg.AppPort))
}
