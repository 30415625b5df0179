package models

import "time"

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

type DistributorApplication struct {
	ID           uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string            `gorm:"size:100;not null" json:"name"`
	Email        string            `gorm:"size:120;not null" json:"email"`
	Phone        string            `gorm:"size:20;not null" json:"phone"`
	BusinessName string            `gorm:"size:200" json:"business_name"`
	Location     string            `gorm:"size:200" json:"location"`
	Experience   string            `gorm:"type:TEXT" json:"experience"`
	Status       ApplicationStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
}
