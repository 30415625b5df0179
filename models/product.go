package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"size:100;not null;index" json:"name"`
	Description string          `gorm:"type:TEXT" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    string          `gorm:"size:50;index" json:"category"`
	Image       string          `gorm:"size:255" json:"image"`
	InStock     bool            `gorm:"default:true" json:"in_stock"`
	CreatedAt   time.Time       `json:"created_at"`
}
