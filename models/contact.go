package models

import "time"

type ContactStatus string

const (
	ContactStatusNew     ContactStatus = "new"
	ContactStatusRead    ContactStatus = "read"
	ContactStatusReplied ContactStatus = "replied"
)

// Contact is an inbox-style record with no relation to users or orders.
type Contact struct {
	ID        uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string        `gorm:"size:100;not null" json:"name"`
	Email     string        `gorm:"size:120;not null" json:"email"`
	Subject   string        `gorm:"size:200" json:"subject"`
	Message   string        `gorm:"type:TEXT;not null" json:"message"`
	Status    ContactStatus `gorm:"type:VARCHAR(20);default:'new'" json:"status"`
	CreatedAt time.Time     `gorm:"index" json:"created_at"`
}
