package repository

import (
	"curr-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountRepository handles database operations for accounts
type AccountRepository struct {
	db *gorm.DB
}

// Ensure AccountRepository implements AccountRepositoryInterface
var _ AccountRepositoryInterface = (*AccountRepository)(nil)

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create creates a new account
func (r *AccountRepository) Create(account *models.Account) error {
	return r.db.Create(account).Error
}

// GetAll retrieves all accounts ordered by code
func (r *AccountRepository) GetAll() ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Order("code ASC").Order("created_at ASC").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// GetByOrganizationID retrieves the accounts of one organization with their category
func (r *AccountRepository) GetByOrganizationID(orgID uuid.UUID) ([]models.Account, error) {
	var accounts []models.Account
	err := r.db.Preload("Category").
		Where("organization_id = ?", orgID).
		Order("code ASC").
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// Count returns the number of accounts
func (r *AccountRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.Account{}).Count(&total).Error
	return total, err
}

// Delete deletes an account
func (r *AccountRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Account{}, "id = ?", id).Error
}
