package models

import "time"

type AccountKind string

const (
	AccountCustomer    AccountKind = "customer"
	AccountDistributor AccountKind = "distributor"
	AccountWholesale   AccountKind = "wholesale"
)

type User struct {
	ID        uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string      `gorm:"size:100;not null" json:"name"`
	Email     string      `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Phone     string      `gorm:"size:20;not null" json:"phone"`
	Password  string      `gorm:"size:255;not null" json:"-"` // bcrypt hash, never the plaintext
	Kind      AccountKind `gorm:"type:VARCHAR(20);default:'customer'" json:"kind"`
	Orders    []Order     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"orders,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
