package service

import (
	"curr-backend/internal/logger"
	"curr-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// NewOrganizationInitializerForDB wires an OrganizationInitializer to GORM repositories
// and the embedded templates.
func NewOrganizationInitializerForDB(db *gorm.DB, log *logger.Logger) (*OrganizationInitializer, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}
	return NewOrganizationInitializer(
		repository.NewOrganizationRepository(db),
		repository.NewAccountRepository(db),
		repository.NewAccountCategoryRepository(db),
		templates,
		validator.New(),
		log,
	), nil
}

// NewReferenceDataSeederForDB wires a ReferenceDataSeeder to GORM repositories
// and the embedded reference data.
func NewReferenceDataSeederForDB(db *gorm.DB, log *logger.Logger) (*ReferenceDataSeeder, error) {
	data, err := LoadReferenceData()
	if err != nil {
		return nil, err
	}
	return NewReferenceDataSeeder(
		repository.NewOrganizationRepository(db),
		repository.NewTransactionTypeRepository(db),
		repository.NewCurrencyCategoryRepository(db),
		repository.NewCurrencyTypeRepository(db),
		repository.NewAccountCategoryRepository(db),
		data,
		log,
	), nil
}

// NewCleanerForDB wires a Cleaner to GORM repositories
func NewCleanerForDB(db *gorm.DB, log *logger.Logger) *Cleaner {
	return NewCleaner(
		repository.NewOrganizationRepository(db),
		repository.NewAccountRepository(db),
		log,
	)
}
