package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/real-danalex/butterburst-api/models"
)

const searchResultLimit = 10

type productSummary struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Category string `json:"category,omitempty"`
	Image    string `json:"image"`
}

func summarize(products []models.Product, withCategory bool) []productSummary {
	out := make([]productSummary, 0, len(products))
	for _, p := range products {
		s := productSummary{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Price.StringFixed(2),
			Image: p.Image,
		}
		if withCategory {
			s.Category = p.Category
		}
		out = append(out, s)
	}
	return out
}

// GET /api/products
func APIProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Where("in_stock = ?", true).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, summarize(products, true))
	}
}

// GET /api/search?q=
// Name search over in-stock products. Queries shorter than two characters
// return an empty result rather than an error.
func APISearch(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Query("q")
		if len(q) < 2 {
			c.JSON(http.StatusOK, []productSummary{})
			return
		}

		var products []models.Product
		if err := db.Where("name LIKE ? AND in_stock = ?", "%"+q+"%", true).
			Limit(searchResultLimit).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
			return
		}
		c.JSON(http.StatusOK, summarize(products, false))
	}
}
