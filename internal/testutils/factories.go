package testutils

import (
	"fmt"

	"curr-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		Name:        "Test Organization",
		Description: "A test organization for testing purposes",
		Address:     "Szupatak, Hungary",
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// WithParent creates a child organization of parentID
func (f *OrganizationFactory) WithParent(name string, parentID uuid.UUID) *models.Organization {
	org := f.WithName(name)
	org.ParentID = &parentID
	return org
}

// AccountFactory provides methods to create test Account data
type AccountFactory struct{}

// NewAccountFactory creates a new AccountFactory
func NewAccountFactory() *AccountFactory {
	return &AccountFactory{}
}

// Create creates a test Account owned by orgID
func (f *AccountFactory) Create(orgID uuid.UUID) *models.Account {
	return &models.Account{
		Name:           "Test Account",
		Code:           "999",
		Description:    "Test Account számla",
		OrganizationID: orgID,
	}
}

// WithCode sets a custom name and code for the account
func (f *AccountFactory) WithCode(orgID uuid.UUID, name, code string) *models.Account {
	account := f.Create(orgID)
	account.Name = name
	account.Code = code
	account.Description = fmt.Sprintf("%s számla", name)
	return account
}

// AccountCategoryFactory provides methods to create test AccountCategory data
type AccountCategoryFactory struct{}

// NewAccountCategoryFactory creates a new AccountCategoryFactory
func NewAccountCategoryFactory() *AccountCategoryFactory {
	return &AccountCategoryFactory{}
}

// Create creates a test AccountCategory of the given type
func (f *AccountCategoryFactory) Create(accountType models.AccountType) *models.AccountCategory {
	return &models.AccountCategory{
		Name:        string(accountType) + " category",
		Type:        accountType,
		Description: "Test category",
		Color:       "#000000",
	}
}

// FactorySet contains all factories for easy access
type FactorySet struct {
	Organization    *OrganizationFactory
	Account         *AccountFactory
	AccountCategory *AccountCategoryFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization:    NewOrganizationFactory(),
		Account:         NewAccountFactory(),
		AccountCategory: NewAccountCategoryFactory(),
	}
}
