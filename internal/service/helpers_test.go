package service_test

import (
	"testing"

	"curr-backend/internal/logger"
	"curr-backend/internal/repository"
	"curr-backend/internal/service"
	"curr-backend/internal/testutils"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// sqliteStore bundles the repositories of one in-memory database
type sqliteStore struct {
	db                   *gorm.DB
	orgRepo              *repository.OrganizationRepository
	accountRepo          *repository.AccountRepository
	accountCategoryRepo  *repository.AccountCategoryRepository
	transactionTypeRepo  *repository.TransactionTypeRepository
	currencyCategoryRepo *repository.CurrencyCategoryRepository
	currencyTypeRepo     *repository.CurrencyTypeRepository
}

func newSQLiteStore(t *testing.T) *sqliteStore {
	t.Helper()
	db := testutils.NewSQLiteDB(t)
	return &sqliteStore{
		db:                   db,
		orgRepo:              repository.NewOrganizationRepository(db),
		accountRepo:          repository.NewAccountRepository(db),
		accountCategoryRepo:  repository.NewAccountCategoryRepository(db),
		transactionTypeRepo:  repository.NewTransactionTypeRepository(db),
		currencyCategoryRepo: repository.NewCurrencyCategoryRepository(db),
		currencyTypeRepo:     repository.NewCurrencyTypeRepository(db),
	}
}

// newTestLogger returns a logger whose entries are captured by the returned hook
func newTestLogger() (*logger.Logger, *test.Hook) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	return logger.FromLogrus(l), hook
}

// warnings returns the messages logged at warning level
func warnings(hook *test.Hook) []*logrus.Entry {
	var entries []*logrus.Entry
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			entries = append(entries, entry)
		}
	}
	return entries
}

func mustLoadTemplates(t *testing.T) *service.Templates {
	t.Helper()
	templates, err := service.LoadTemplates()
	require.NoError(t, err)
	return templates
}
