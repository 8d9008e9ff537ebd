package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campus-market.backend/internal/domain/entities"
	"campus-market.backend/internal/infrastructure/models"
	"campus-market.backend/pkg/utils"
)

// TransactionRepository implements purchase ledger operations
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create inserts a transaction row
func (r *TransactionRepository) Create(ctx context.Context, txn *entities.Transaction) error {
	m := &models.Transaction{
		ID:              txn.ID,
		BuyerID:         txn.BuyerID,
		SellerID:        txn.SellerID,
		ProductID:       txn.ProductID,
		Amount:          txn.Amount,
		Status:          string(txn.Status),
		PaymentMethodID: txn.PaymentMethodID,
		CreatedAt:       txn.CreatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// ListByUser returns purchases and sales of a user, newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Transaction, error) {
	var txnModels []models.Transaction
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("buyer_id = ? OR seller_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&txnModels).Error; err != nil {
		return nil, err
	}

	txns := make([]*entities.Transaction, 0, len(txnModels))
	for i := range txnModels {
		txns = append(txns, toTransactionEntity(&txnModels[i]))
	}
	return txns, nil
}

// CountByProduct counts transactions referencing a product
func (r *TransactionRepository) CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Transaction{}).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func toTransactionEntity(m *models.Transaction) *entities.Transaction {
	return &entities.Transaction{
		ID:              m.ID,
		BuyerID:         m.BuyerID,
		SellerID:        m.SellerID,
		ProductID:       m.ProductID,
		Amount:          utils.FormatAmount(m.Amount),
		Status:          entities.TransactionStatus(m.Status),
		PaymentMethodID: m.PaymentMethodID,
		CreatedAt:       m.CreatedAt,
	}
}
