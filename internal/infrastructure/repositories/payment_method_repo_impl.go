package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campus-market.backend/internal/domain/entities"
	domainerrors "campus-market.backend/internal/domain/errors"
	"campus-market.backend/internal/infrastructure/models"
)

// PaymentMethodRepository implements payment method data operations
type PaymentMethodRepository struct {
	db *gorm.DB
}

// NewPaymentMethodRepository creates a new payment method repository
func NewPaymentMethodRepository(db *gorm.DB) *PaymentMethodRepository {
	return &PaymentMethodRepository{db: db}
}

// Create stores card metadata
func (r *PaymentMethodRepository) Create(ctx context.Context, method *entities.PaymentMethod) error {
	m := &models.PaymentMethod{
		ID:          method.ID,
		UserID:      method.UserID,
		Last4:       method.Last4,
		Brand:       method.Brand,
		ExpiryMonth: method.ExpiryMonth,
		ExpiryYear:  method.ExpiryYear,
		IsDefault:   method.IsDefault,
		CreatedAt:   method.CreatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByIDAndUser loads a payment method only when userID owns it
func (r *PaymentMethodRepository) GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entities.PaymentMethod, error) {
	var m models.PaymentMethod
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toPaymentMethodEntity(&m), nil
}

// ListByUser returns the user's payment methods, newest first
func (r *PaymentMethodRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.PaymentMethod, error) {
	var methodModels []models.PaymentMethod
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&methodModels).Error; err != nil {
		return nil, err
	}

	methods := make([]*entities.PaymentMethod, 0, len(methodModels))
	for i := range methodModels {
		methods = append(methods, toPaymentMethodEntity(&methodModels[i]))
	}
	return methods, nil
}

// CountByUser counts the user's payment methods
func (r *PaymentMethodRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.PaymentMethod{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SetDefault makes id the only default method of userID. Call it inside a
// unit of work so the two updates land together.
func (r *PaymentMethodRepository) SetDefault(ctx context.Context, userID, id uuid.UUID) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	if err := db.Model(&models.PaymentMethod{}).
		Where("user_id = ? AND id <> ?", userID, id).
		Update("is_default", false).Error; err != nil {
		return err
	}

	result := db.Model(&models.PaymentMethod{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_default", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a payment method owned by userID
func (r *PaymentMethodRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.PaymentMethod{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toPaymentMethodEntity(m *models.PaymentMethod) *entities.PaymentMethod {
	return &entities.PaymentMethod{
		ID:          m.ID,
		UserID:      m.UserID,
		Last4:       m.Last4,
		Brand:       m.Brand,
		ExpiryMonth: m.ExpiryMonth,
		ExpiryYear:  m.ExpiryYear,
		IsDefault:   m.IsDefault,
		CreatedAt:   m.CreatedAt,
	}
}
