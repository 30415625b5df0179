package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/real-danalex/butterburst-api/mailer"
	"github.com/real-danalex/butterburst-api/middleware"
	"github.com/real-danalex/butterburst-api/session"
)

// SetupRoutes is the single entry-point that wires up the storefront,
// account, and API route groups. Every route runs with the session attached.
func SetupRoutes(r *gin.Engine, db *gorm.DB, store *session.Store, m mailer.Mailer) {
	r.Use(middleware.AttachSession(store))

	SetupStorefrontRoutes(r, db, store, m)
	SetupAccountRoutes(r, db, store)
	SetupAPIRoutes(r, db)
}
