package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authControllers "github.com/real-danalex/butterburst-api/controllers/auth"
	contactControllers "github.com/real-danalex/butterburst-api/controllers/contact"
	orderControllers "github.com/real-danalex/butterburst-api/controllers/order"
	"github.com/real-danalex/butterburst-api/middleware"
	"github.com/real-danalex/butterburst-api/models"
	"github.com/real-danalex/butterburst-api/session"
)

// SetupAccountRoutes registers authentication and the login-gated
// dashboard/checkout/order endpoints.
func SetupAccountRoutes(r *gin.Engine, db *gorm.DB, store *session.Store) {
	// ──────────────── Authentication ────────────────
	r.POST("/register", authControllers.Register(db))
	r.POST("/login", authControllers.Login(db, store))
	r.GET("/logout", authControllers.Logout())

	// ──────────────── Customer Area ────────────────
	authed := r.Group("/")
	authed.Use(middleware.RequireLogin)
	{
		authed.GET("/dashboard", orderControllers.GetDashboard(db))
		authed.GET("/checkout", orderControllers.GetCheckout(db))
		authed.POST("/checkout", orderControllers.Checkout(db, store))
		authed.GET("/order-confirmation/:id", orderControllers.GetOrderConfirmation(db))
		authed.GET("/order/:id", orderControllers.GetOrderByID(db))
	}

	// ──────────────── Distributor / Wholesale Area ────────────────
	r.GET("/distributor-dashboard",
		middleware.RequireAccountKind(models.AccountDistributor),
		orderControllers.GetDistributorDashboard(db))

	wholesale := r.Group("/wholesale-order")
	wholesale.Use(middleware.RequireAccountKind(models.AccountWholesale, models.AccountDistributor))
	{
		wholesale.GET("", contactControllers.GetWholesaleCatalog(db))
		wholesale.POST("", contactControllers.SubmitWholesaleOrder())
	}
}
