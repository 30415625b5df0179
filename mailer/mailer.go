// Package mailer sends operator notifications for storefront form
// submissions. Sending is best-effort: callers log failures and carry on.
package mailer

import (
	"errors"

	gomail "gopkg.in/gomail.v2"

	"github.com/real-danalex/butterburst-api/config"
)

var ErrNotConfigured = errors.New("mail is not configured")

// Mailer delivers a notification to the operator address.
type Mailer interface {
	Notify(subject, body string) error
}

// SMTP sends through the configured SMTP relay.
type SMTP struct {
	cfg config.Mail
}

func New(cfg config.Mail) *SMTP {
	return &SMTP{cfg: cfg}
}

func (m *SMTP) Notify(subject, body string) error {
	if m.cfg.Username == "" || m.cfg.Operator == "" {
		return ErrNotConfigured
	}

	msg := gomail.NewMessage()
	sender := m.cfg.Sender
	if sender == "" {
		sender = m.cfg.Username
	}
	msg.SetHeader("From", sender)
	msg.SetHeader("To", m.cfg.Operator)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	return dialer.DialAndSend(msg)
}
