package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text;not null"`
	Price       string    `gorm:"type:numeric(10,2);not null"`
	Category    string    `gorm:"type:varchar(30);not null;index"`
	Condition   string    `gorm:"type:varchar(20);not null"`
	Location    string    `gorm:"type:varchar(200);not null"`
	ImageURL    *string   `gorm:"column:image_url;type:text"`
	Status      string    `gorm:"type:varchar(20);not null;default:'available';index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Product) TableName() string { return "products" }
