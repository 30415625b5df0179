package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/real-danalex/butterburst-api/cart"
	"github.com/real-danalex/butterburst-api/middleware"
	"github.com/real-danalex/butterburst-api/models"
	"github.com/real-danalex/butterburst-api/session"
)

var (
	// ErrEmptyCart covers both a cart with no lines and a cart whose every
	// line points at a product that no longer exists.
	ErrEmptyCart = errors.New("cart is empty")

	ErrOrderNotFound = errors.New("order not found")
	ErrNotOwner      = errors.New("order belongs to another user")
)

type checkoutInput struct {
	DeliveryAddress string `form:"delivery_address" json:"delivery_address" binding:"required"`
	PaymentMethod   string `form:"payment_method" json:"payment_method"`
}

// PlaceOrder converts the session cart into a persisted order. Prices are
// resolved at checkout time; lines whose product has been deleted are
// skipped. The order header and all line items commit as one transaction,
// so a failure leaves no partial order behind.
func PlaceOrder(db *gorm.DB, userID uint, lines cart.Cart, deliveryAddress, paymentMethod string) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		total := decimal.Zero
		var items []models.OrderItem

		for _, line := range lines {
			var product models.Product
			if err := tx.First(&product, line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}

			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
			items = append(items, models.OrderItem{
				ProductID: product.ID,
				Quantity:  line.Quantity,
				Price:     product.Price,
			})
		}

		if len(items) == 0 {
			return ErrEmptyCart
		}

		order = models.Order{
			UserID:          userID,
			Items:           items,
			TotalAmount:     total,
			Status:          models.OrderStatusPending,
			DeliveryAddress: deliveryAddress,
			PaymentMethod:   paymentMethod,
			PaymentStatus:   models.PaymentStatusPending,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// fetchOwnedOrder loads an order and enforces ownership. A foreign order
// yields ErrNotOwner without exposing any of its fields.
func fetchOwnedOrder(db *gorm.DB, orderID, userID uint) (*models.Order, error) {
	var order models.Order
	if err := db.Preload("Items").Preload("Items.Product").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrNotOwner
	}
	return &order, nil
}

// GET /checkout
// Preview of the materialized cart and the total that checkout would charge.
func GetCheckout(db *gorm.DB) gin.HandlerFunc {
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

// POST /checkout
func Checkout(db *gorm.DB, store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Current(c)
		if len(sess.Cart) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
			return
		}

		var input checkoutInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.PaymentMethod == "" {
			input.PaymentMethod = "cash"
		}

		order, err := PlaceOrder(db, sess.UserID, sess.Cart, input.DeliveryAddress, input.PaymentMethod)
		if err != nil {
			if errors.Is(err, ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		// The cart is cleared only after the transaction committed.
		sess.Cart = nil
		if err := middleware.Save(c, store, sess); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update session"})
			return
		}

		location := "/order-confirmation/" + strconv.FormatUint(uint64(order.ID), 10)
		c.Header("Location", location)
		c.JSON(http.StatusCreated, gin.H{
			"message":  "Order placed successfully! We will contact you soon.",
			"order_id": order.ID,
			"location": location,
		})
	}
}

func getOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		sess := middleware.Current(c)
		order, err := fetchOwnedOrder(db, uint(id), sess.UserID)
		switch {
		case errors.Is(err, ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found", "location": "/dashboard"})
		case errors.Is(err, ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized access", "location": "/dashboard"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		default:
			c.JSON(http.StatusOK, order)
		}
	}
}

// GET /order-confirmation/:id
func GetOrderConfirmation(db *gorm.DB) gin.HandlerFunc {
	return getOrder(db)
}

// GET /order/:id
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return getOrder(db)
}

// GET /dashboard
// The authenticated user's orders, newest first.
func GetDashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Current(c)

		var orders []models.Order
		if err := db.Where("user_id = ?", sess.UserID).
			Preload("Items").
			Preload("Items.Product").
			Order("order_date DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user": gin.H{
				"id":   sess.UserID,
				"name": sess.Name,
				"kind": sess.AccountKind,
			},
			"orders": orders,
		})
	}
}

// GET /distributor-dashboard
// Reachable only by distributor accounts; the route guard enforces that.
func GetDistributorDashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Current(c)

		var user models.User
		if err := db.First(&user, sess.UserID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}
