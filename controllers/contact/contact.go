package contactControllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/real-danalex/butterburst-api/mailer"
	"github.com/real-danalex/butterburst-api/models"
)

type contactInput struct {
	Name    string `form:"name" json:"name" binding:"required"`
	Email   string `form:"email" json:"email" binding:"required,email"`
	Subject string `form:"subject" json:"subject"`
	Message string `form:"message" json:"message" binding:"required"`
}

type distributorInput struct {
	Name       string `form:"name" json:"name" binding:"required"`
	Email      string `form:"email" json:"email" binding:"required,email"`
	Phone      string `form:"phone" json:"phone" binding:"required"`
	Location   string `form:"location" json:"location"`
	Experience string `form:"experience" json:"experience"`
}

type wholesaleInput struct {
	BusinessName string `form:"businessName" json:"businessName" binding:"required"`
	ContactName  string `form:"contactName" json:"contactName" binding:"required"`
	Email        string `form:"email" json:"email" binding:"required,email"`
	Phone        string `form:"phone" json:"phone" binding:"required"`
	OrderDetails string `form:"orderDetails" json:"orderDetails" binding:"required"`
}

// notify sends the operator mail after the durable write committed. A send
// failure is logged and reported as a warning; it never rolls anything back.
func notify(m mailer.Mailer, subject, body string) (warning string) {
	if err := m.Notify(subject, body); err != nil {
		log.Printf("⚠️ Notification email failed: %v", err)
		return "Your message was saved but could not be sent via email."
	}
	return ""
}

func respond(c *gin.Context, message, warning string) {
	resp := gin.H{"message": message}
	if warning != "" {
		resp["warning"] = warning
	}
	c.JSON(http.StatusCreated, resp)
}

// POST /contact
func SubmitContact(db *gorm.DB, m mailer.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input contactInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Subject == "" {
			input.Subject = "No Subject"
		}

		contact := models.Contact{
			Name:    input.Name,
			Email:   input.Email,
			Subject: input.Subject,
			Message: input.Message,
			Status:  models.ContactStatusNew,
		}
		if err := db.Create(&contact).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
			return
		}

		body := fmt.Sprintf(
			"You have received a new message from the Butterburst Bakery contact form.\n\n"+
				"Name: %s\nEmail: %s\nSubject: %s\nMessage:\n%s\n",
			input.Name, input.Email, input.Subject, input.Message)
		warning := notify(m, "New Contact Message: "+input.Subject, body)

		respond(c, "Thank you! Your message has been sent successfully.", warning)
	}
}

// POST /become-distributor
// Accepts form-encoded or JSON bodies.
func SubmitDistributorApplication(db *gorm.DB, m mailer.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input distributorInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		application := models.DistributorApplication{
			Name:       input.Name,
			Email:      input.Email,
			Phone:      input.Phone,
			Location:   input.Location,
			Experience: input.Experience,
			Status:     models.ApplicationStatusPending,
		}
		if err := db.Create(&application).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save application"})
			return
		}

		experience := input.Experience
		if experience == "" {
			experience = "N/A"
		}
		body := fmt.Sprintf(
			"New Distributor Application Received:\n\n"+
				"Name: %s\nEmail: %s\nPhone: %s\nLocation: %s\nExperience: %s\n",
			input.Name, input.Email, input.Phone, input.Location, experience)
		warning := notify(m, "New Distributor Application from "+input.Name, body)

		respond(c, "Your application has been received.", warning)
	}
}

// POST /wholesale
// Accepts form-encoded or JSON bodies. The inquiry is kept as an
// inbox-style contact record before the notification is attempted.
func SubmitWholesaleInquiry(db *gorm.DB, m mailer.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input wholesaleInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		body := fmt.Sprintf(
			"New Wholesale Inquiry Received:\n\n"+
				"Business Name: %s\nContact Name: %s\nEmail: %s\nPhone: %s\nOrder Details:\n%s\n",
			input.BusinessName, input.ContactName, input.Email, input.Phone, input.OrderDetails)

		inquiry := models.Contact{
			Name:    input.ContactName,
			Email:   input.Email,
			Subject: "Wholesale quote request from " + input.BusinessName,
			Message: body,
			Status:  models.ContactStatusNew,
		}
		if err := db.Create(&inquiry).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save inquiry"})
			return
		}

		warning := notify(m, "New Wholesale Quote Request from "+input.ContactName, body)

		respond(c, "Your wholesale request has been sent successfully! We'll get back to you shortly.", warning)
	}
}

// GET /wholesale-order
// Full catalog for wholesale/distributor accounts; the route guard
// enforces the account kind.
func GetWholesaleCatalog(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// POST /wholesale-order
func SubmitWholesaleOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":  "Wholesale order submitted! We will contact you with a quote.",
			"location": "/dashboard",
		})
	}
}
