package contactControllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/real-danalex/butterburst-api/mailer"
	"github.com/real-danalex/butterburst-api/models"
)

type stubMailer struct {
	subjects []string
	err      error
}

func (s *stubMailer) Notify(subject, body string) error {
	s.subjects = append(s.subjects, subject)
	return s.err
}

func testSetup(t *testing.T, m mailer.Mailer) (*gorm.DB, *gin.Engine) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Contact{}, &models.DistributorApplication{}))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/contact", SubmitContact(db, m))
	r.POST("/become-distributor", SubmitDistributorApplication(db, m))
	r.POST("/wholesale", SubmitWholesaleInquiry(db, m))
	return db, r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func contactForm() url.Values {
	form := url.Values{}
	form.Set("name", "Dan")
	form.Set("email", "dan@example.com")
	form.Set("message", "Do you deliver on Sundays?")
	return form
}

func TestContactPersistsAndNotifies(t *testing.T) {
	m := &stubMailer{}
	db, r := testSetup(t, m)

	w := postForm(r, "/contact", contactForm())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "warning")

	var contact models.Contact
	require.NoError(t, db.First(&contact).Error)
	assert.Equal(t, "No Subject", contact.Subject)
	assert.Equal(t, models.ContactStatusNew, contact.Status)

	require.Len(t, m.subjects, 1)
	assert.Contains(t, m.subjects[0], "New Contact Message")
}

func TestContactMailFailureIsSoft(t *testing.T) {
	m := &stubMailer{err: mailer.ErrNotConfigured}
	db, r := testSetup(t, m)

	w := postForm(r, "/contact", contactForm())

	// The record survives and the submitter gets a warning, not an error.
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "warning")

	var count int64
	require.NoError(t, db.Model(&models.Contact{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestContactValidatesInput(t *testing.T) {
	m := &stubMailer{}
	db, r := testSetup(t, m)

	form := contactForm()
	form.Del("message")
	w := postForm(r, "/contact", form)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, m.subjects)

	var count int64
	require.NoError(t, db.Model(&models.Contact{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDistributorApplicationAcceptsJSON(t *testing.T) {
	m := &stubMailer{}
	db, r := testSetup(t, m)

	body := `{"name":"Dan","email":"dan@example.com","phone":"0700000000","location":"Nairobi","experience":"5 years"}`
	req := httptest.NewRequest(http.MethodPost, "/become-distributor", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var app models.DistributorApplication
	require.NoError(t, db.First(&app).Error)
	assert.Equal(t, "Nairobi", app.Location)
	assert.Equal(t, models.ApplicationStatusPending, app.Status)
	require.Len(t, m.subjects, 1)
	assert.Contains(t, m.subjects[0], "Distributor Application")
}

func TestWholesaleInquiryPersistsBeforeNotifying(t *testing.T) {
	m := &stubMailer{err: mailer.ErrNotConfigured}
	db, r := testSetup(t, m)

	form := url.Values{}
	form.Set("businessName", "Corner Cafe")
	form.Set("contactName", "Dan")
	form.Set("email", "dan@example.com")
	form.Set("phone", "0700000000")
	form.Set("orderDetails", "200 loaves weekly")
	w := postForm(r, "/wholesale", form)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "warning")

	var inquiry models.Contact
	require.NoError(t, db.First(&inquiry).Error)
	assert.Contains(t, inquiry.Subject, "Corner Cafe")
	assert.Contains(t, inquiry.Message, "200 loaves weekly")
}
