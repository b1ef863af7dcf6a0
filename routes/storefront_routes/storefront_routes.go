package storefront_routes

import (
	store_cart "github.com/Paida-All/paidaall-store-backend/controllers/storefront/cart_controller"
	store_content "github.com/Paida-All/paidaall-store-backend/controllers/storefront/content_controller"
	store_filter "github.com/Paida-All/paidaall-store-backend/controllers/storefront/filter_controller"
	store_product "github.com/Paida-All/paidaall-store-backend/controllers/storefront/product_controller"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts)            // List with filters
		products.GET("/:slug", store_product.GetStorefrontProductBySlug) // Single product
	}

	store.GET("/filters", store_filter.GetFilterMetadata)

	// Cart routes
	cart := store.Group("/cart")
	{
		cart.GET("", store_cart.GetCart)
		cart.DELETE("", store_cart.ClearCart)
		cart.POST("/items", store_cart.AddCartItem)
		cart.PUT("/items/:productId", store_cart.UpdateCartItem)
		cart.DELETE("/items/:productId", store_cart.RemoveCartItem)
		cart.POST("/checkout", store_cart.CheckoutCart)
	}

	// Content routes
	store.GET("/site", store_content.GetSiteConfig)
	store.GET("/pages/:slug", store_content.GetPage)
}
