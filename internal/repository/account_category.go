package repository

import (
	"curr-backend/internal/database/models"

	"gorm.io/gorm"
)

// AccountCategoryRepository handles database operations for account categories
type AccountCategoryRepository struct {
	db *gorm.DB
}

// Ensure AccountCategoryRepository implements AccountCategoryRepositoryInterface
var _ AccountCategoryRepositoryInterface = (*AccountCategoryRepository)(nil)

// NewAccountCategoryRepository creates a new account category repository
func NewAccountCategoryRepository(db *gorm.DB) *AccountCategoryRepository {
	return &AccountCategoryRepository{db: db}
}

// Create creates a new account category
func (r *AccountCategoryRepository) Create(category *models.AccountCategory) error {
	return r.db.Create(category).Error
}

// GetAll retrieves all account categories
func (r *AccountCategoryRepository) GetAll() ([]models.AccountCategory, error) {
	var categories []models.AccountCategory
	if err := r.db.Order("created_at ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Count returns the number of account categories
func (r *AccountCategoryRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.AccountCategory{}).Count(&total).Error
	return total, err
}
