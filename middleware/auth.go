package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/real-danalex/butterburst-api/models"
	"github.com/real-danalex/butterburst-api/session"
)

const sessionKey = "session"

// AttachSession decodes the session cookie and stores the result in the
// request context. A missing or invalid cookie yields a fresh anonymous
// session; nothing is written back unless a handler saves a mutation.
func AttachSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := session.Session{}
		if cookie, err := c.Cookie(session.CookieName); err == nil {
			if parsed, err := store.Parse(cookie); err == nil {
				sess = parsed
			}
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// Current returns the session attached to the request.
func Current(c *gin.Context) session.Session {
	if v, ok := c.Get(sessionKey); ok {
		return v.(session.Session)
	}
	return session.Session{}
}

// Save re-issues the session token and writes it back to the client. Called
// only after an observed mutation so unchanged sessions cost nothing.
func Save(c *gin.Context, store *session.Store, sess session.Session) error {
	token, err := store.Issue(sess)
	if err != nil {
		return err
	}
	c.SetCookie(session.CookieName, token, int(store.TTL().Seconds()), "/", "", false, true)
	c.Set(sessionKey, sess)
	return nil
}

// Clear expires the session cookie.
func Clear(c *gin.Context) {
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.Set(sessionKey, session.Session{})
}

// RequireLogin aborts with 401 unless the session carries a user identity.
func RequireLogin(c *gin.Context) {
	if !Current(c).LoggedIn() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login to continue"})
		c.Abort()
		return
	}
	c.Next()
}

// RequireAccountKind aborts with 403 unless the logged-in user has one of
// the given account kinds. Nothing about the protected resource is leaked.
func RequireAccountKind(kinds ...models.AccountKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := Current(c)
		if !sess.LoggedIn() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login to continue"})
			c.Abort()
			return
		}
		for _, kind := range kinds {
			if sess.AccountKind == kind {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		c.Abort()
	}
}
