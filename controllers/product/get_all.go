package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/real-danalex/butterburst-api/models"
)

// GET /products?category=&search=
// Catalog listing: in-stock products, filterable by category tag and
// free-text name search. The category list covers every distinct tag in the
// catalog, including ones whose products are all out of stock.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.DefaultQuery("category", "all")
		search := c.Query("search")

		query := db.Model(&models.Product{}).Where("in_stock = ?", true)
		if category != "all" {
			query = query.Where("category = ?", category)
		}
		if search != "" {
			query = query.Where("name LIKE ?", "%"+search+"%")
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		var categories []string
		if err := db.Model(&models.Product{}).Distinct("category").
			Pluck("category", &categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products":   products,
			"categories": categories,
			"category":   category,
			"search":     search,
		})
	}
}

// GET /
// Front-page sampler: up to six in-stock products.
func GetFeaturedProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Where("in_stock = ?", true).Limit(6).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}
