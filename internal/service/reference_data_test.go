package service_test

import (
	"errors"
	"testing"

	"curr-backend/internal/database/models"
	apperrors "curr-backend/internal/errors"
	"curr-backend/internal/mocks"
	"curr-backend/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func TestLoadReferenceData(t *testing.T) {
	data, err := service.LoadReferenceData()

	require.NoError(t, err)
	assert.Equal(t, "Zöld források szövetkezet @Szupatak", data.Organization.Name)
	assert.Equal(t, "Szupatak, Hungary", data.Organization.Address)
	assert.Len(t, data.TransactionTypes, 6)
	assert.Len(t, data.CurrencyCategories, 2)
	assert.Len(t, data.CurrencyTypes, 3)
	assert.Len(t, data.AccountCategories, 5)

	types := make(map[models.AccountType]bool)
	for _, category := range data.AccountCategories {
		types[category.Type] = true
	}
	for _, accountType := range models.AccountTypes() {
		assert.True(t, types[accountType], "missing account category for %s", accountType)
	}
}

// ReferenceDataSeederTestSuite runs the reference seeder against an in-memory store
type ReferenceDataSeederTestSuite struct {
	suite.Suite
	store  *sqliteStore
	hook   *test.Hook
	seeder *service.ReferenceDataSeeder
}

func (suite *ReferenceDataSeederTestSuite) SetupTest() {
	suite.store = newSQLiteStore(suite.T())
	data, err := service.LoadReferenceData()
	suite.Require().NoError(err)

	log, hook := newTestLogger()
	suite.hook = hook
	suite.seeder = service.NewReferenceDataSeeder(
		suite.store.orgRepo,
		suite.store.transactionTypeRepo,
		suite.store.currencyCategoryRepo,
		suite.store.currencyTypeRepo,
		suite.store.accountCategoryRepo,
		data,
		log,
	)
}

// TestSeedEmptyStore tests that every step writes into an empty store
func (suite *ReferenceDataSeederTestSuite) TestSeedEmptyStore() {
	summary, err := suite.seeder.Seed()

	suite.NoError(err)
	suite.Equal(&service.ReferenceSeedSummary{
		Organizations:      1,
		TransactionTypes:   6,
		CurrencyCategories: 2,
		CurrencyTypes:      3,
		AccountCategories:  5,
	}, summary)
	suite.Equal(17, summary.Total())

	org, err := suite.store.orgRepo.GetByName("Zöld források szövetkezet @Szupatak")
	suite.Require().NoError(err)
	suite.Equal("Szupatak, Hungary", org.Address)
	suite.True(org.IsRoot())
}

// TestSeedLinksCurrencyCategories tests that currency types reference their category
func (suite *ReferenceDataSeederTestSuite) TestSeedLinksCurrencyCategories() {
	_, err := suite.seeder.Seed()
	suite.Require().NoError(err)

	currencyTypes, err := suite.store.currencyTypeRepo.GetAll()
	suite.Require().NoError(err)
	suite.Require().Len(currencyTypes, 3)

	categoryOf := make(map[string]string)
	for _, currencyType := range currencyTypes {
		suite.Require().NotNil(currencyType.Category, currencyType.Code)
		categoryOf[currencyType.Code] = currencyType.Category.Name
	}
	suite.Equal(map[string]string{"HUF": "cash", "EUR": "cash", "HOUR": "labor"}, categoryOf)
	suite.Empty(warnings(suite.hook))
}

// TestSeedIsIdempotent tests that a second run creates nothing
func (suite *ReferenceDataSeederTestSuite) TestSeedIsIdempotent() {
	_, err := suite.seeder.Seed()
	suite.Require().NoError(err)

	summary, err := suite.seeder.Seed()

	suite.NoError(err)
	suite.Zero(summary.Total())
	total, err := suite.store.transactionTypeRepo.Count()
	suite.Require().NoError(err)
	suite.Equal(int64(6), total)
}

// TestSeedSkipsNonEmptyTables tests that existing rows only skip their own step
func (suite *ReferenceDataSeederTestSuite) TestSeedSkipsNonEmptyTables() {
	suite.Require().NoError(suite.store.orgRepo.Create(&models.Organization{Name: "Existing"}))

	summary, err := suite.seeder.Seed()

	suite.NoError(err)
	suite.Zero(summary.Organizations)
	suite.Equal(6, summary.TransactionTypes)
	_, err = suite.store.orgRepo.GetByName("Zöld források szövetkezet @Szupatak")
	suite.Error(err)
}

// TestSeedWarnsOnUnknownCurrencyCategory tests currency types whose category is missing
func (suite *ReferenceDataSeederTestSuite) TestSeedWarnsOnUnknownCurrencyCategory() {
	suite.Require().NoError(suite.store.currencyCategoryRepo.Create(&models.CurrencyCategory{Name: "cash"}))

	summary, err := suite.seeder.Seed()

	suite.NoError(err)
	suite.Zero(summary.CurrencyCategories)
	suite.Equal(3, summary.CurrencyTypes)
	suite.Require().Len(warnings(suite.hook), 1)
	suite.Equal("HOUR", warnings(suite.hook)[0].Data["currency"])
}

// TestBootstrapSkipsProduction tests that production runs need FORCE_SEED
func (suite *ReferenceDataSeederTestSuite) TestBootstrapSkipsProduction() {
	suite.seeder.Bootstrap(true, false)

	total, err := suite.store.orgRepo.Count()
	suite.Require().NoError(err)
	suite.Zero(total)
}

// TestBootstrapForced tests that FORCE_SEED seeds in production
func (suite *ReferenceDataSeederTestSuite) TestBootstrapForced() {
	suite.seeder.Bootstrap(true, true)

	total, err := suite.store.accountCategoryRepo.Count()
	suite.Require().NoError(err)
	suite.Equal(int64(5), total)
}

func TestReferenceDataSeederTestSuite(t *testing.T) {
	suite.Run(t, new(ReferenceDataSeederTestSuite))
}

// ReferenceDataSeederErrorTestSuite checks failure handling with mocked repositories
type ReferenceDataSeederErrorTestSuite struct {
	suite.Suite
	ctrl                     *gomock.Controller
	mockOrgRepo              *mocks.MockOrganizationRepositoryInterface
	mockTransactionTypeRepo  *mocks.MockTransactionTypeRepositoryInterface
	mockCurrencyCategoryRepo *mocks.MockCurrencyCategoryRepositoryInterface
	mockCurrencyTypeRepo     *mocks.MockCurrencyTypeRepositoryInterface
	mockAccountCategoryRepo  *mocks.MockAccountCategoryRepositoryInterface
	hook                     *test.Hook
	seeder                   *service.ReferenceDataSeeder
}

func (suite *ReferenceDataSeederErrorTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockTransactionTypeRepo = mocks.NewMockTransactionTypeRepositoryInterface(suite.ctrl)
	suite.mockCurrencyCategoryRepo = mocks.NewMockCurrencyCategoryRepositoryInterface(suite.ctrl)
	suite.mockCurrencyTypeRepo = mocks.NewMockCurrencyTypeRepositoryInterface(suite.ctrl)
	suite.mockAccountCategoryRepo = mocks.NewMockAccountCategoryRepositoryInterface(suite.ctrl)

	data, err := service.LoadReferenceData()
	suite.Require().NoError(err)
	log, hook := newTestLogger()
	suite.hook = hook
	suite.seeder = service.NewReferenceDataSeeder(
		suite.mockOrgRepo,
		suite.mockTransactionTypeRepo,
		suite.mockCurrencyCategoryRepo,
		suite.mockCurrencyTypeRepo,
		suite.mockAccountCategoryRepo,
		data,
		log,
	)
}

func (suite *ReferenceDataSeederErrorTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestSeedStopsAtFirstError tests that later steps do not run
func (suite *ReferenceDataSeederErrorTestSuite) TestSeedStopsAtFirstError() {
	storeErr := errors.New("connection reset")
	suite.mockOrgRepo.EXPECT().
		Count().
		Return(int64(1), nil).
		Times(1)
	suite.mockTransactionTypeRepo.EXPECT().
		Count().
		Return(int64(0), nil).
		Times(1)
	suite.mockTransactionTypeRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(2)
	suite.mockTransactionTypeRepo.EXPECT().
		Create(gomock.Any()).
		Return(storeErr).
		Times(1)

	summary, err := suite.seeder.Seed()

	suite.ErrorIs(err, storeErr)
	suite.Contains(err.Error(), "failed to seed transaction types")
	suite.True(apperrors.IsSeed(err))
	suite.Equal(2, summary.TransactionTypes)
	suite.Zero(summary.CurrencyTypes)
}

// TestBootstrapSwallowsErrors tests that startup seeding only logs failures
func (suite *ReferenceDataSeederErrorTestSuite) TestBootstrapSwallowsErrors() {
	suite.mockOrgRepo.EXPECT().
		Count().
		Return(int64(0), errors.New("database unavailable")).
		Times(1)

	suite.NotPanics(func() { suite.seeder.Bootstrap(false, false) })

	entry := suite.hook.LastEntry()
	suite.Require().NotNil(entry)
	suite.Equal(logrus.ErrorLevel, entry.Level)
	suite.Equal("Error during seeding", entry.Message)
}

func TestReferenceDataSeederErrorTestSuite(t *testing.T) {
	suite.Run(t, new(ReferenceDataSeederErrorTestSuite))
}
