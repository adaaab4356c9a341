package repository

import (
	"curr-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByName(name string) (*models.Organization, error)
	GetAll() ([]models.Organization, error)
	Count() (int64, error)
	Delete(id uuid.UUID) error
}

// AccountRepositoryInterface defines the interface for account repository operations
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetAll() ([]models.Account, error)
	GetByOrganizationID(orgID uuid.UUID) ([]models.Account, error)
	Count() (int64, error)
	Delete(id uuid.UUID) error
}

// AccountCategoryRepositoryInterface defines the interface for account category repository operations
type AccountCategoryRepositoryInterface interface {
	Create(category *models.AccountCategory) error
	GetAll() ([]models.AccountCategory, error)
	Count() (int64, error)
}

// TransactionTypeRepositoryInterface defines the interface for transaction type repository operations
type TransactionTypeRepositoryInterface interface {
	Create(transactionType *models.TransactionType) error
	GetAll() ([]models.TransactionType, error)
	Count() (int64, error)
}

// CurrencyCategoryRepositoryInterface defines the interface for currency category repository operations
type CurrencyCategoryRepositoryInterface interface {
	Create(category *models.CurrencyCategory) error
	GetAll() ([]models.CurrencyCategory, error)
	Count() (int64, error)
}

// CurrencyTypeRepositoryInterface defines the interface for currency type repository operations
type CurrencyTypeRepositoryInterface interface {
	Create(currencyType *models.CurrencyType) error
	GetAll() ([]models.CurrencyType, error)
	Count() (int64, error)
}
