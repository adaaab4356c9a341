package repository

import (
	"curr-backend/internal/database/models"

	"gorm.io/gorm"
)

// TransactionTypeRepository handles database operations for transaction types
type TransactionTypeRepository struct {
	db *gorm.DB
}

var _ TransactionTypeRepositoryInterface = (*TransactionTypeRepository)(nil)

// NewTransactionTypeRepository creates a new transaction type repository
func NewTransactionTypeRepository(db *gorm.DB) *TransactionTypeRepository {
	return &TransactionTypeRepository{db: db}
}

func (r *TransactionTypeRepository) Create(transactionType *models.TransactionType) error {
	return r.db.Create(transactionType).Error
}

func (r *TransactionTypeRepository) GetAll() ([]models.TransactionType, error) {
	var types []models.TransactionType
	if err := r.db.Order("created_at ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *TransactionTypeRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.TransactionType{}).Count(&total).Error
	return total, err
}
