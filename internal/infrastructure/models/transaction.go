package models

import (
	"time"

	"github.com/google/uuid"
)

type Transaction struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BuyerID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	SellerID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Amount          string     `gorm:"type:numeric(10,2);not null"`
	Status          string     `gorm:"type:varchar(20);not null;default:'completed'"`
	PaymentMethodID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt       time.Time
}

func (Transaction) TableName() string { return "transactions" }
