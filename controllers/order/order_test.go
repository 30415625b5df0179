package orderControllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/real-danalex/butterburst-api/cart"
	"github.com/real-danalex/butterburst-api/middleware"
	"github.com/real-danalex/butterburst-api/models"
	"github.com/real-danalex/butterburst-api/session"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func seedBread(t *testing.T, db *gorm.DB) (white, wheat models.Product) {
	t.Helper()
	white = models.Product{Name: "White Bread", Price: decimal.NewFromInt(500), Category: "white", InStock: true}
	wheat = models.Product{Name: "Wheat Bread", Price: decimal.NewFromInt(600), Category: "wheat", InStock: true}
	require.NoError(t, db.Create(&white).Error)
	require.NoError(t, db.Create(&wheat).Error)
	return white, wheat
}

func TestPlaceOrderTotalsAndItems(t *testing.T) {
	db := testDB(t)
	white, wheat := seedBread(t, db)

	lines := cart.Cart{
		{ProductID: white.ID, Quantity: 2},
		{ProductID: wheat.ID, Quantity: 1},
	}
	order, err := PlaceOrder(db, 1, lines, "12 Main St", "cash")
	require.NoError(t, err)

	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(1600)), "total = %s", order.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)

	var stored models.Order
	require.NoError(t, db.Preload("Items").First(&stored, order.ID).Error)
	require.Len(t, stored.Items, 2)
	assert.True(t, stored.TotalAmount.Equal(decimal.NewFromInt(1600)))
	assert.True(t, stored.Items[0].Price.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, 2, stored.Items[0].Quantity)
}

func TestPlaceOrderSnapshotsPriceAtCheckout(t *testing.T) {
	db := testDB(t)
	white, _ := seedBread(t, db)

	// Price changes between add-to-cart and checkout resolve to the
	// checkout-time price.
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", white.ID).
		Update("price", decimal.NewFromInt(550)).Error)

	order, err := PlaceOrder(db, 1, cart.Cart{{ProductID: white.ID, Quantity: 1}}, "addr", "cash")
	require.NoError(t, err)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(550)))

	// A later price change must not touch the stored snapshot.
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", white.ID).
		Update("price", decimal.NewFromInt(900)).Error)

	var item models.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).First(&item).Error)
	assert.True(t, item.Price.Equal(decimal.NewFromInt(550)))
}

func TestPlaceOrderSkipsDanglingLines(t *testing.T) {
	db := testDB(t)
	white, _ := seedBread(t, db)

	lines := cart.Cart{
		{ProductID: white.ID, Quantity: 1},
		{ProductID: 9999, Quantity: 3},
	}
	order, err := PlaceOrder(db, 1, lines, "addr", "cash")
	require.NoError(t, err)

	var stored models.Order
	require.NoError(t, db.Preload("Items").First(&stored, order.ID).Error)
	require.Len(t, stored.Items, 1)
	assert.True(t, stored.TotalAmount.Equal(decimal.NewFromInt(500)))
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	db := testDB(t)

	_, err := PlaceOrder(db, 1, nil, "addr", "cash")
	assert.ErrorIs(t, err, ErrEmptyCart)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPlaceOrderRejectsFullyDanglingCart(t *testing.T) {
	db := testDB(t)

	_, err := PlaceOrder(db, 1, cart.Cart{{ProductID: 777, Quantity: 2}}, "addr", "cash")
	assert.ErrorIs(t, err, ErrEmptyCart)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestFetchOwnedOrder(t *testing.T) {
	db := testDB(t)
	white, _ := seedBread(t, db)

	order, err := PlaceOrder(db, 7, cart.Cart{{ProductID: white.ID, Quantity: 1}}, "addr", "cash")
	require.NoError(t, err)

	got, err := fetchOwnedOrder(db, order.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	_, err = fetchOwnedOrder(db, order.ID, 8)
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = fetchOwnedOrder(db, 12345, 7)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

// ---- handler-level flow ----

func testRouter(db *gorm.DB, store *session.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.AttachSession(store))
	r.POST("/checkout", middleware.RequireLogin, Checkout(db, store))
	r.GET("/order/:id", middleware.RequireLogin, GetOrderByID(db))
	return r
}

func sessionCookie(t *testing.T, store *session.Store, sess session.Session) *http.Cookie {
	t.Helper()
	token, err := store.Issue(sess)
	require.NoError(t, err)
	return &http.Cookie{Name: session.CookieName, Value: token}
}

func TestCheckoutHandlerClearsCart(t *testing.T) {
	db := testDB(t)
	white, _ := seedBread(t, db)
	store := session.NewStore("test-secret", time.Hour)
	r := testRouter(db, store)

	form := url.Values{}
	form.Set("delivery_address", "12 Main St")
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(sessionCookie(t, store, session.Session{
		UserID: 1,
		Name:   "Dan",
		Cart:   cart.Cart{{ProductID: white.ID, Quantity: 2}},
	}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Header().Get("Location"), "/order-confirmation/")

	// The re-issued session cookie must carry an empty cart.
	var refreshed *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			refreshed = c
		}
	}
	require.NotNil(t, refreshed)
	sess, err := store.Parse(refreshed.Value)
	require.NoError(t, err)
	assert.Empty(t, sess.Cart)
}

func TestCheckoutHandlerRequiresLogin(t *testing.T) {
	db := testDB(t)
	store := session.NewStore("test-secret", time.Hour)
	r := testRouter(db, store)

	req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOrderHandlerHidesForeignOrders(t *testing.T) {
	db := testDB(t)
	white, _ := seedBread(t, db)
	store := session.NewStore("test-secret", time.Hour)
	r := testRouter(db, store)

	order, err := PlaceOrder(db, 1, cart.Cart{{ProductID: white.ID, Quantity: 1}}, "addr", "cash")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/order/1", nil)
	req.AddCookie(sessionCookie(t, store, session.Session{UserID: 2, Name: "Eve"}))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NotContains(t, w.Body.String(), order.TotalAmount.StringFixed(2))
	assert.NotContains(t, w.Body.String(), "addr")
}
