package service

import (
	"fmt"

	"curr-backend/internal/database/models"
	apperrors "curr-backend/internal/errors"
	"curr-backend/internal/logger"
	"curr-backend/internal/repository"

	"github.com/google/uuid"
)

// ReferenceData is the fixed data set every installation starts with
type ReferenceData struct {
	Organization       OrganizationSeed       `yaml:"organization"`
	TransactionTypes   []TransactionTypeSeed  `yaml:"transaction_types"`
	CurrencyCategories []CurrencyCategorySeed `yaml:"currency_categories"`
	CurrencyTypes      []CurrencyTypeSeed     `yaml:"currency_types"`
	AccountCategories  []AccountCategorySeed  `yaml:"account_categories"`
}

// OrganizationSeed is the default organization created on an empty store
type OrganizationSeed struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Address     string `yaml:"address"`
}

// TransactionTypeSeed describes one transaction type
type TransactionTypeSeed struct {
	Name        string                     `yaml:"name"`
	Category    models.TransactionCategory `yaml:"category"`
	Description string                     `yaml:"description"`
}

// CurrencyCategorySeed describes one currency category
type CurrencyCategorySeed struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// CurrencyTypeSeed describes one currency type; Category names its currency category
type CurrencyTypeSeed struct {
	Code     string `yaml:"code"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Unit     string `yaml:"unit"`
}

// AccountCategorySeed describes one account category
type AccountCategorySeed struct {
	Name        string             `yaml:"name"`
	Type        models.AccountType `yaml:"type"`
	Description string             `yaml:"description"`
	Color       string             `yaml:"color"`
}

// LoadReferenceData decodes the embedded reference data set
func LoadReferenceData() (*ReferenceData, error) {
	var data ReferenceData
	if err := loadSeedFile("data/reference.yaml", &data); err != nil {
		return nil, err
	}
	for _, t := range data.TransactionTypes {
		if !t.Category.IsValid() {
			return nil, fmt.Errorf("transaction type %q has invalid category %q", t.Name, t.Category)
		}
	}
	for _, c := range data.AccountCategories {
		if !c.Type.IsValid() {
			return nil, fmt.Errorf("account category %q has invalid type %q", c.Name, c.Type)
		}
	}
	return &data, nil
}

// ReferenceSeedSummary reports how many records each step created; zero means the step was skipped
type ReferenceSeedSummary struct {
	Organizations      int `json:"organizations"`
	TransactionTypes   int `json:"transaction_types"`
	CurrencyCategories int `json:"currency_categories"`
	CurrencyTypes      int `json:"currency_types"`
	AccountCategories  int `json:"account_categories"`
}

// Total returns the number of records created
func (s *ReferenceSeedSummary) Total() int {
	return s.Organizations + s.TransactionTypes + s.CurrencyCategories + s.CurrencyTypes + s.AccountCategories
}

// ReferenceDataSeeder fills empty tables with the reference data set
type ReferenceDataSeeder struct {
	orgRepo              repository.OrganizationRepositoryInterface
	transactionTypeRepo  repository.TransactionTypeRepositoryInterface
	currencyCategoryRepo repository.CurrencyCategoryRepositoryInterface
	currencyTypeRepo     repository.CurrencyTypeRepositoryInterface
	accountCategoryRepo  repository.AccountCategoryRepositoryInterface
	data                 *ReferenceData
	logger               *logger.Logger
}

// Ensure ReferenceDataSeeder implements ReferenceDataSeederInterface
var _ ReferenceDataSeederInterface = (*ReferenceDataSeeder)(nil)

// NewReferenceDataSeeder creates a new reference data seeder
func NewReferenceDataSeeder(
	orgRepo repository.OrganizationRepositoryInterface,
	transactionTypeRepo repository.TransactionTypeRepositoryInterface,
	currencyCategoryRepo repository.CurrencyCategoryRepositoryInterface,
	currencyTypeRepo repository.CurrencyTypeRepositoryInterface,
	accountCategoryRepo repository.AccountCategoryRepositoryInterface,
	data *ReferenceData,
	log *logger.Logger,
) *ReferenceDataSeeder {
	if log == nil {
		log = logger.New()
	}
	return &ReferenceDataSeeder{
		orgRepo:              orgRepo,
		transactionTypeRepo:  transactionTypeRepo,
		currencyCategoryRepo: currencyCategoryRepo,
		currencyTypeRepo:     currencyTypeRepo,
		accountCategoryRepo:  accountCategoryRepo,
		data:                 data,
		logger:               log.WithField("component", "reference-seeder"),
	}
}

// Seed runs every step in order and stops at the first error.
// A step only writes when its table is empty.
func (s *ReferenceDataSeeder) Seed() (*ReferenceSeedSummary, error) {
	s.logger.Info("Starting initial data seeding")

	summary := &ReferenceSeedSummary{}
	steps := []struct {
		name string
		run  func() (int, error)
		dest *int
	}{
		{"organization", s.seedOrganization, &summary.Organizations},
		{"transaction types", s.seedTransactionTypes, &summary.TransactionTypes},
		{"currency categories", s.seedCurrencyCategories, &summary.CurrencyCategories},
		{"currency types", s.seedCurrencyTypes, &summary.CurrencyTypes},
		{"account categories", s.seedAccountCategories, &summary.AccountCategories},
	}

	for _, step := range steps {
		count, err := step.run()
		*step.dest = count
		if err != nil {
			return summary, apperrors.NewSeedError(apperrors.StageReferenceData, fmt.Errorf("failed to seed %s: %w", step.name, err))
		}
	}

	s.logger.WithField("created", summary.Total()).Info("Initial data seeding completed successfully")
	return summary, nil
}

// Bootstrap is the startup variant of Seed. It does nothing in production unless forced,
// and it logs failures instead of returning them so the server still starts.
func (s *ReferenceDataSeeder) Bootstrap(production, force bool) {
	if production && !force {
		s.logger.Info("Skipping seeding in production (set FORCE_SEED=true to override)")
		return
	}
	if _, err := s.Seed(); err != nil {
		s.logger.WithError(err).Error("Error during seeding")
	}
}

func (s *ReferenceDataSeeder) seedOrganization() (int, error) {
	total, err := s.orgRepo.Count()
	if err != nil {
		return 0, err
	}
	if total > 0 {
		s.logger.Info("Organization already exists, skipping")
		return 0, nil
	}

	seed := s.data.Organization
	org := &models.Organization{
		Name:        seed.Name,
		Description: seed.Description,
		Address:     seed.Address,
	}
	if err := s.orgRepo.Create(org); err != nil {
		return 0, err
	}
	seededRecords.WithLabelValues(entityOrganization).Inc()
	s.logger.WithField("organization", org.Name).Info("Created organization")
	return 1, nil
}

func (s *ReferenceDataSeeder) seedTransactionTypes() (int, error) {
	total, err := s.transactionTypeRepo.Count()
	if err != nil {
		return 0, err
	}
	if total > 0 {
		s.logger.Info("Transaction types already exist, skipping")
		return 0, nil
	}

	created := 0
	for _, seed := range s.data.TransactionTypes {
		transactionType := &models.TransactionType{
			Name:        seed.Name,
			Category:    seed.Category,
			Description: seed.Description,
		}
		if err := s.transactionTypeRepo.Create(transactionType); err != nil {
			return created, err
		}
		seededRecords.WithLabelValues(entityTransactionType).Inc()
		created++
	}
	s.logger.WithField("count", created).Info("Created transaction types")
	return created, nil
}

func (s *ReferenceDataSeeder) seedCurrencyCategories() (int, error) {
	total, err := s.currencyCategoryRepo.Count()
	if err != nil {
		return 0, err
	}
	if total > 0 {
		s.logger.Info("Currency categories already exist, skipping")
		return 0, nil
	}

	created := 0
	for _, seed := range s.data.CurrencyCategories {
		category := &models.CurrencyCategory{
			Name:        seed.Name,
			Description: seed.Description,
		}
		if err := s.currencyCategoryRepo.Create(category); err != nil {
			return created, err
		}
		seededRecords.WithLabelValues(entityCurrencyCategory).Inc()
		created++
	}
	s.logger.WithField("count", created).Info("Created currency categories")
	return created, nil
}

func (s *ReferenceDataSeeder) seedCurrencyTypes() (int, error) {
	total, err := s.currencyTypeRepo.Count()
	if err != nil {
		return 0, err
	}
	if total > 0 {
		s.logger.Info("Currency types already exist, skipping")
		return 0, nil
	}

	categories, err := s.currencyCategoryRepo.GetAll()
	if err != nil {
		return 0, err
	}
	categoryIDs := make(map[string]uuid.UUID, len(categories))
	for _, category := range categories {
		if _, ok := categoryIDs[category.Name]; !ok {
			categoryIDs[category.Name] = category.ID
		}
	}

	created := 0
	for _, seed := range s.data.CurrencyTypes {
		currencyType := &models.CurrencyType{
			Code: seed.Code,
			Name: seed.Name,
			Unit: seed.Unit,
		}
		if categoryID, ok := categoryIDs[seed.Category]; ok {
			currencyType.CategoryID = &categoryID
		} else {
			s.logger.WithFields(map[string]interface{}{
				"currency": seed.Code,
				"category": seed.Category,
			}).Warn("Currency category not found, creating currency type without category")
		}
		if err := s.currencyTypeRepo.Create(currencyType); err != nil {
			return created, err
		}
		seededRecords.WithLabelValues(entityCurrencyType).Inc()
		created++
	}
	s.logger.WithField("count", created).Info("Created currency types")
	return created, nil
}

func (s *ReferenceDataSeeder) seedAccountCategories() (int, error) {
	total, err := s.accountCategoryRepo.Count()
	if err != nil {
		return 0, err
	}
	if total > 0 {
		s.logger.Info("Account categories already exist, skipping")
		return 0, nil
	}

	created := 0
	for _, seed := range s.data.AccountCategories {
		category := &models.AccountCategory{
			Name:        seed.Name,
			Type:        seed.Type,
			Description: seed.Description,
			Color:       seed.Color,
		}
		if err := s.accountCategoryRepo.Create(category); err != nil {
			return created, err
		}
		seededRecords.WithLabelValues(entityAccountCategory).Inc()
		created++
	}
	s.logger.WithField("count", created).Info("Created account categories")
	return created, nil
}
