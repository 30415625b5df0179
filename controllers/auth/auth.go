package authControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/real-danalex/butterburst-api/middleware"
	"github.com/real-danalex/butterburst-api/models"
	"github.com/real-danalex/butterburst-api/session"
)

type registerInput struct {
	Name     string `form:"name" json:"name" binding:"required"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Phone    string `form:"phone" json:"phone" binding:"required"`
	Password string `form:"password" json:"password" binding:"required,min=6"`
	Kind     string `form:"user_type" json:"user_type"`
}

type loginInput struct {
	Email    string `form:"email" json:"email" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

func accountKind(s string) models.AccountKind {
	switch models.AccountKind(s) {
	case models.AccountDistributor:
		return models.AccountDistributor
	case models.AccountWholesale:
		return models.AccountWholesale
	default:
		return models.AccountCustomer
	}
}

// POST /register
// A duplicate email is rejected and the existing account is left untouched.
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input registerInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var existing models.User
		err := db.Where("email = ?", input.Email).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered. Please login."})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
			return
		}

		user := models.User{
			Name:     input.Name,
			Email:    input.Email,
			Phone:    input.Phone,
			Password: string(hash),
			Kind:     accountKind(input.Kind),
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Registration successful! Please login."})
	}
}

// POST /login
// An unknown email and a wrong password produce the same response so the
// caller cannot probe which accounts exist.
func Login(db *gorm.DB, store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input loginInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password."})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password."})
			return
		}

		// Keep whatever the visitor carted before logging in.
		sess := middleware.Current(c)
		sess.UserID = user.ID
		sess.Name = user.Name
		sess.AccountKind = user.Kind
		if err := middleware.Save(c, store, sess); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			return
		}

		location := "/dashboard"
		if user.Kind == models.AccountDistributor {
			location = "/distributor-dashboard"
		}
		c.JSON(http.StatusOK, gin.H{
			"message":  "Welcome back, " + user.Name + "!",
			"location": location,
		})
	}
}

// GET /logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.Clear(c)
		c.JSON(http.StatusOK, gin.H{"message": "You have been logged out successfully."})
	}
}
