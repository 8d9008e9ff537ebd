package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"campus-market.backend/internal/domain/entities"
	domainerrors "campus-market.backend/internal/domain/errors"
	"campus-market.backend/internal/infrastructure/models"
	"campus-market.backend/pkg/utils"
)

// ProductRepository implements listing data operations
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserts a listing
func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) error {
	m := &models.Product{
		ID:          product.ID,
		UserID:      product.UserID,
		Title:       product.Title,
		Description: product.Description,
		Price:       product.Price,
		Category:    string(product.Category),
		Condition:   string(product.Condition),
		Location:    product.Location,
		ImageURL:    product.ImageURL.Ptr(),
		Status:      string(product.Status),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a listing by ID. Inside a locked unit of work the row is
// selected FOR UPDATE.
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	var m models.Product
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toProductEntity(&m), nil
}

// List returns listings matching filter, newest first
func (r *ProductRepository) List(ctx context.Context, filter entities.ProductFilter) ([]*entities.Product, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Product{})

	if filter.Category != nil {
		query = query.Where("category = ?", string(*filter.Category))
	}
	switch {
	case filter.Status != nil:
		query = query.Where("status = ?", string(*filter.Status))
	case !filter.AllStatuses:
		query = query.Where("status IN ?", statusStrings(entities.ListedStatuses))
	}

	var productModels []models.Product
	if err := query.Order("created_at DESC").Find(&productModels).Error; err != nil {
		return nil, err
	}
	return toProductEntities(productModels), nil
}

// ListByOwner returns every listing of one user regardless of status
func (r *ProductRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Product, error) {
	var productModels []models.Product
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, err
	}
	return toProductEntities(productModels), nil
}

// Update writes the editable fields of a listing
func (r *ProductRepository) Update(ctx context.Context, product *entities.Product) error {
	updates := map[string]interface{}{
		"title":       product.Title,
		"description": product.Description,
		"price":       product.Price,
		"category":    string(product.Category),
		"condition":   string(product.Condition),
		"location":    product.Location,
		"image_url":   product.ImageURL.Ptr(),
		"status":      string(product.Status),
		"updated_at":  time.Now().UTC(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Product{}).
		Where("id = ? AND status <> ?", product.ID, string(entities.ProductStatusSold)).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateStatus sets the status of a listing
func (r *ProductRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ProductStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Product{}).
		Where("id = ? AND status <> ?", id, string(entities.ProductStatusSold)).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// MarkSold flips an available listing to sold. The status guard makes the
// write a no-op for a listing another purchase already took.
func (r *ProductRepository) MarkSold(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Product{}).
		Where("id = ? AND status = ?", id, string(entities.ProductStatusAvailable)).
		Updates(map[string]interface{}{
			"status":     string(entities.ProductStatusSold),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected != 1 {
		return domainerrors.ErrConflict
	}
	return nil
}

// ListedSummary counts listed products and sums their prices
func (r *ProductRepository) ListedSummary(ctx context.Context) (int64, string, error) {
	var prices []string
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Product{}).
		Where("status IN ?", statusStrings(entities.ListedStatuses)).
		Pluck("price", &prices).Error; err != nil {
		return 0, "", err
	}

	return int64(len(prices)), utils.SumAmounts(prices), nil
}

func statusStrings(statuses []entities.ProductStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}

func toProductEntities(productModels []models.Product) []*entities.Product {
	products := make([]*entities.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, toProductEntity(&productModels[i]))
	}
	return products
}

func toProductEntity(m *models.Product) *entities.Product {
	return &entities.Product{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       m.Title,
		Description: m.Description,
		Price:       utils.FormatAmount(m.Price),
		Category:    entities.ProductCategory(m.Category),
		Condition:   entities.ProductCondition(m.Condition),
		Location:    m.Location,
		ImageURL:    null.StringFromPtr(m.ImageURL),
		Status:      entities.ProductStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
