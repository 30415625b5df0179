package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/real-danalex/butterburst-api/cart"
	"github.com/real-danalex/butterburst-api/middleware"
	"github.com/real-danalex/butterburst-api/models"
	"github.com/real-danalex/butterburst-api/session"
)

type quantityInput struct {
	Quantity int `form:"quantity" json:"quantity"`
}

func productIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return 0, false
	}
	return uint(id), true
}

// GET /cart
// The cart view joins each stored line against the live product row;
// lines whose product was deleted are dropped from the response.
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Current(c)
		lines, total, err := cart.Materialize(db, sess.Cart)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"cart":  lines,
			"total": total.StringFixed(2),
		})
	}
}

// POST /add-to-cart/:id
// Repeated adds of the same product accumulate; quantity defaults to 1.
// Out-of-stock products are rejected without touching the cart.
func AddToCart(db *gorm.DB, store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := productIDParam(c)
		if !ok {
			return
		}

		var product models.Product
		if err := db.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			}
			return
		}
		if !product.InStock {
			c.JSON(http.StatusConflict, gin.H{"error": "Sorry, this product is out of stock"})
			return
		}

		var input quantityInput
		_ = c.ShouldBind(&input)

		sess := middleware.Current(c)
		sess.Cart = sess.Cart.Add(productID, input.Quantity)
		if err := middleware.Save(c, store, sess); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":    product.Name + " added to cart",
			"cart_count": sess.Cart.Count(),
		})
	}
}

// POST /update-cart/:id
// A quantity of zero or less removes the line.
func UpdateCart(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := productIDParam(c)
		if !ok {
			return
		}

		var input quantityInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sess := middleware.Current(c)
		sess.Cart = sess.Cart.SetQuantity(productID, input.Quantity)
		if err := middleware.Save(c, store, sess); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart updated successfully"})
	}
}

// GET /remove-from-cart/:id
// Idempotent; removing an absent product is not an error.
func RemoveFromCart(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := productIDParam(c)
		if !ok {
			return
		}

		sess := middleware.Current(c)
		sess.Cart = sess.Cart.Remove(productID)
		if err := middleware.Save(c, store, sess); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product removed from cart"})
	}
}

// GET /api/cart-count
func APICartCount() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"count": middleware.Current(c).Cart.Count()})
	}
}
