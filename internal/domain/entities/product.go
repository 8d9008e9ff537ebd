package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ProductStatus is the lifecycle state of a listing.
type ProductStatus string

const (
	ProductStatusActive    ProductStatus = "active"
	ProductStatusAvailable ProductStatus = "available"
	ProductStatusSold      ProductStatus = "sold"
	ProductStatusRemoved   ProductStatus = "removed"
)

// Valid reports whether s is a known status.
func (s ProductStatus) Valid() bool {
	switch s {
	case ProductStatusActive, ProductStatusAvailable, ProductStatusSold, ProductStatusRemoved:
		return true
	}
	return false
}

// Listed reports whether the listing shows up in the default browse view.
func (s ProductStatus) Listed() bool {
	return s == ProductStatusActive || s == ProductStatusAvailable
}

// ListedStatuses are the statuses included when no status filter is given.
var ListedStatuses = []ProductStatus{ProductStatusActive, ProductStatusAvailable}

// ProductCategory enumerates listing categories.
type ProductCategory string

const (
	CategoryTextbooks   ProductCategory = "textbooks"
	CategoryElectronics ProductCategory = "electronics"
	CategoryClothing    ProductCategory = "clothing"
	CategoryFurniture   ProductCategory = "furniture"
	CategorySports      ProductCategory = "sports"
)

// Valid reports whether c is a known category.
func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryTextbooks, CategoryElectronics, CategoryClothing, CategoryFurniture, CategorySports:
		return true
	}
	return false
}

// ProductCondition enumerates item conditions.
type ProductCondition string

const (
	ConditionNew     ProductCondition = "new"
	ConditionLikeNew ProductCondition = "like-new"
	ConditionGood    ProductCondition = "good"
	ConditionFair    ProductCondition = "fair"
	ConditionVintage ProductCondition = "vintage"
)

// Product is a listing owned by one user.
type Product struct {
	ID          uuid.UUID        `json:"id"`
	UserID      uuid.UUID        `json:"userId"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Price       string           `json:"price"`
	Category    ProductCategory  `json:"category"`
	Condition   ProductCondition `json:"condition"`
	Location    string           `json:"location"`
	ImageURL    null.String      `json:"imageUrl"`
	Status      ProductStatus    `json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// ProductFilter narrows a listing query. A nil Status means "listed only".
type ProductFilter struct {
	Category *ProductCategory
	Status   *ProductStatus
	// AllStatuses disables the default listed-only restriction when Status is nil.
	AllStatuses bool
}

// CreateProductInput represents input for creating a listing
type CreateProductInput struct {
	Title       string  `json:"title" binding:"required,min=3,max=200"`
	Description string  `json:"description" binding:"required,min=10"`
	Price       string  `json:"price" binding:"required"`
	Category    string  `json:"category" binding:"required,oneof=textbooks electronics clothing furniture sports"`
	Condition   string  `json:"condition" binding:"required,oneof=new like-new good fair vintage"`
	Location    string  `json:"location" binding:"required,min=1"`
	ImageURL    *string `json:"imageUrl"`
}

// UpdateProductInput is a partial update applied by the owner.
type UpdateProductInput struct {
	Title       *string `json:"title" binding:"omitempty,min=3,max=200"`
	Description *string `json:"description" binding:"omitempty,min=10"`
	Price       *string `json:"price"`
	Category    *string `json:"category" binding:"omitempty,oneof=textbooks electronics clothing furniture sports"`
	Condition   *string `json:"condition" binding:"omitempty,oneof=new like-new good fair vintage"`
	Location    *string `json:"location" binding:"omitempty,min=1"`
	ImageURL    *string `json:"imageUrl"`
	Status      *string `json:"status" binding:"omitempty,oneof=active available removed"`
}
