package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/real-danalex/butterburst-api/controllers/cart"
	contactControllers "github.com/real-danalex/butterburst-api/controllers/contact"
	productControllers "github.com/real-danalex/butterburst-api/controllers/product"
	"github.com/real-danalex/butterburst-api/mailer"
	"github.com/real-danalex/butterburst-api/session"
)

// SetupStorefrontRoutes registers the public catalog, cart, and
// lead-capture endpoints. None of them require a login.
func SetupStorefrontRoutes(r *gin.Engine, db *gorm.DB, store *session.Store, m mailer.Mailer) {
	// ──────────────── Catalog ────────────────
	r.GET("/", productControllers.GetFeaturedProducts(db))
	r.GET("/products", productControllers.GetProducts(db))
	r.GET("/product/:id", productControllers.GetProductByID(db))

	// ──────────────── Shopping Cart ────────────────
	r.GET("/cart", cartControllers.GetCart(db))
	r.POST("/add-to-cart/:id", cartControllers.AddToCart(db, store))
	r.POST("/update-cart/:id", cartControllers.UpdateCart(store))
	r.GET("/remove-from-cart/:id", cartControllers.RemoveFromCart(store))

	// ──────────────── Lead Capture ────────────────
	r.POST("/contact", contactControllers.SubmitContact(db, m))
	r.POST("/become-distributor", contactControllers.SubmitDistributorApplication(db, m))
	r.POST("/wholesale", contactControllers.SubmitWholesaleInquiry(db, m))
}
