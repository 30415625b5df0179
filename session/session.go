// Package session carries visitor state in an HMAC-signed token held in a
// cookie: the logged-in identity (if any) plus the cart line sequence.
package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/real-danalex/butterburst-api/cart"
	"github.com/real-danalex/butterburst-api/models"
)

const CookieName = "bb_session"

var ErrInvalidToken = errors.New("invalid session token")

// Session is the decoded visitor state. UserID of zero means an anonymous
// visitor; anonymous sessions still carry a cart.
type Session struct {
	UserID      uint
	Name        string
	AccountKind models.AccountKind
	Cart        cart.Cart
}

func (s Session) LoggedIn() bool {
	return s.UserID != 0
}

type claims struct {
	UserID      uint               `json:"uid,omitempty"`
	Name        string             `json:"name,omitempty"`
	AccountKind models.AccountKind `json:"kind,omitempty"`
	Cart        cart.Cart          `json:"cart,omitempty"`
	jwt.RegisteredClaims
}

// Store signs and verifies session tokens.
type Store struct {
	secret []byte
	ttl    time.Duration
}

func NewStore(secret string, ttl time.Duration) *Store {
	return &Store{secret: []byte(secret), ttl: ttl}
}

// TTL is the lifetime handed to the cookie when a session is written back.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Issue signs a fresh token for the given session state.
func (s *Store) Issue(sess Session) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID:      sess.UserID,
		Name:        sess.Name,
		AccountKind: sess.AccountKind,
		Cart:        sess.Cart,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	return token.SignedString(s.secret)
}

// Parse verifies a token and returns the session it carries. Expired,
// tampered or otherwise unverifiable tokens yield ErrInvalidToken.
func (s *Store) Parse(tokenString string) (Session, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Session{}, ErrInvalidToken
	}
	return Session{
		UserID:      c.UserID,
		Name:        c.Name,
		AccountKind: c.AccountKind,
		Cart:        c.Cart,
	}, nil
}
