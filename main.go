package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mconrado/fast-ecommerce-back/config"
	"github.com/mconrado/fast-ecommerce-back/controllers"
	_ "github.com/mconrado/fast-ecommerce-back/docs"
	"github.com/mconrado/fast-ecommerce-back/libs"
	"github.com/mconrado/fast-ecommerce-back/middleware"
	"github.com/mconrado/fast-ecommerce-back/repositories"
	"github.com/mconrado/fast-ecommerce-back/routes"
	"github.com/mconrado/fast-ecommerce-back/services"
)

// @title Fast Ecommerce API
// @version 1.0
// @description E-commerce backend: product catalog, cart pricing, checkout and orders.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	ctx := context.Background()

	if err := config.RunMigrations(cfg); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	pool, err := config.NewDBPool(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()
	log.Println("Database connected successfully")

	redisClient, err := config.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Redis connected")

	productRepo := repositories.NewProductRepository(pool)
	orderRepo := repositories.NewOrderRepository(pool)
	userRepo := repositories.NewUserRepository(pool)
	cartCache := repositories.NewCartCache(redisClient, 72*time.Hour)

	var freight services.FreightCalculator = libs.NewMemoryFreight()
	if cfg.FreightURL != "" {
		freight = libs.NewFreightClient(cfg.FreightURL, cfg.ExternalTimeout)
	}

	cartService := services.NewCartService(productRepo, cartCache, freight, cfg.ExternalTimeout)
	orderService := services.NewOrderService(cartService, orderRepo, libs.NewMemoryPaymentGateway())
	productService := services.NewProductService(productRepo)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	routes.SetupRoutes(router, routes.Controllers{
		Auth:    controllers.NewAuthController(authService),
		Product: controllers.NewProductController(productService),
		Cart:    controllers.NewCartController(cartService),
		Order:   controllers.NewOrderController(orderService),
	}, cfg.JWTSecret)

	port := ":" + cfg.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
