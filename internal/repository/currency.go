package repository

import (
	"curr-backend/internal/database/models"

	"gorm.io/gorm"
)

// CurrencyCategoryRepository handles database operations for currency categories
type CurrencyCategoryRepository struct {
	db *gorm.DB
}

var _ CurrencyCategoryRepositoryInterface = (*CurrencyCategoryRepository)(nil)

// NewCurrencyCategoryRepository creates a new currency category repository
func NewCurrencyCategoryRepository(db *gorm.DB) *CurrencyCategoryRepository {
	return &CurrencyCategoryRepository{db: db}
}

func (r *CurrencyCategoryRepository) Create(category *models.CurrencyCategory) error {
	return r.db.Create(category).Error
}

func (r *CurrencyCategoryRepository) GetAll() ([]models.CurrencyCategory, error) {
	var categories []models.CurrencyCategory
	if err := r.db.Order("created_at ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CurrencyCategoryRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.CurrencyCategory{}).Count(&total).Error
	return total, err
}

// CurrencyTypeRepository handles database operations for currency types
type CurrencyTypeRepository struct {
	db *gorm.DB
}

var _ CurrencyTypeRepositoryInterface = (*CurrencyTypeRepository)(nil)

// NewCurrencyTypeRepository creates a new currency type repository
func NewCurrencyTypeRepository(db *gorm.DB) *CurrencyTypeRepository {
	return &CurrencyTypeRepository{db: db}
}

func (r *CurrencyTypeRepository) Create(currencyType *models.CurrencyType) error {
	return r.db.Create(currencyType).Error
}

// GetAll retrieves all currency types with their category
func (r *CurrencyTypeRepository) GetAll() ([]models.CurrencyType, error) {
	var types []models.CurrencyType
	if err := r.db.Preload("Category").Order("created_at ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *CurrencyTypeRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.CurrencyType{}).Count(&total).Error
	return total, err
}
