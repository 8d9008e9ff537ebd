package models

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMethod struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Last4       string    `gorm:"column:last4;type:varchar(4);not null"`
	Brand       string    `gorm:"type:varchar(50);not null"`
	ExpiryMonth int       `gorm:"not null"`
	ExpiryYear  int       `gorm:"not null"`
	IsDefault   bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
}

func (PaymentMethod) TableName() string { return "payment_methods" }
