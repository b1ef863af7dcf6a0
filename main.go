// @title Paida All Store API
// @version 1.0
// @description Wholesale storefront backend for Paida All
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Paida-All/paidaall-store-backend/config"
	"github.com/Paida-All/paidaall-store-backend/controllers/storefront/cart_controller"
	"github.com/Paida-All/paidaall-store-backend/controllers/storefront/filter_controller"
	"github.com/Paida-All/paidaall-store-backend/controllers/storefront/product_controller"
	"github.com/Paida-All/paidaall-store-backend/middleware"
	"github.com/Paida-All/paidaall-store-backend/routes/storefront_routes"
	"github.com/Paida-All/paidaall-store-backend/services"
	"github.com/Paida-All/paidaall-store-backend/sources"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	if err := config.Load(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	// Redis connection (carts + rate limiting)
	config.ConnectRedis()

	// Catalog source selection
	var source sources.ProductSource
	switch config.App.CatalogSource {
	case "rest":
		source = sources.NewRESTSource(config.App.RestBaseURL, config.App.RestAPIKey)
		log.Println("✅ Catalog source: REST")
	default:
		config.InitDB()
		defer config.CloseDB()
		source = sources.NewPostgresSource(config.StoreGorm)
		log.Println("✅ Catalog source: Postgres")
	}

	catalogService := services.NewCatalogService(source)
	cartService := services.NewCartService(
		services.NewRedisCartStore(config.RedisClient),
		config.App.CartTTL,
	)

	product_controller.Init(catalogService)
	filter_controller.Init(catalogService)
	cart_controller.Init(cartService, catalogService)

	if config.App.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Cart-Session", "X-Requested-With"},
		ExposeHeaders:    []string{"X-Cart-Session"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthCheck)

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(config.App.RateLimitPerMinute, time.Minute))

	storefront_routes.SetupStorefrontRoutes(api)
	log.Println("✅ Storefront routes registered")

	log.Printf("✅ Listening on :%s", config.App.Port)
	if err := router.Run(":" + config.App.Port); err != nil {
		log.Fatalf("❌ Server exited: %v", err)
	}
}

// healthCheck pings the backing stores that are actually wired. The REST
// catalog source has no pool to ping, so only Redis is checked then.
func healthCheck(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.RedisClient.Ping(ctx).Err(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "redis": err.Error()})
		return
	}
	if config.StoreDB != nil {
		if err := config.StoreDB.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "postgres": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
