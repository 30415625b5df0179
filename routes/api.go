package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/real-danalex/butterburst-api/controllers/cart"
	productControllers "github.com/real-danalex/butterburst-api/controllers/product"
)

// SetupAPIRoutes registers the JSON read endpoints used by the storefront's
// AJAX widgets.
func SetupAPIRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	{
		api.GET("/products", productControllers.APIProducts(db))
		api.GET("/search", productControllers.APISearch(db))
		api.GET("/cart-count", cartControllers.APICartCount())
	}
}
