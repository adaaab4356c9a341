package models

// AccountType defines the accounting type of an account category
type AccountType string

const (
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
)

// TransactionCategory defines when a transaction type takes effect
type TransactionCategory string

const (
	TransactionCategoryFuture   TransactionCategory = "future"
	TransactionCategoryActual   TransactionCategory = "actual"
	TransactionCategoryInternal TransactionCategory = "internal"
)

// AccountTypes returns every account type in ledger order
func AccountTypes() []AccountType {
	return []AccountType{
		AccountTypeRevenue,
		AccountTypeExpense,
		AccountTypeAsset,
		AccountTypeLiability,
		AccountTypeEquity,
	}
}

// IsValid checks if the AccountType is valid
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeRevenue, AccountTypeExpense, AccountTypeAsset, AccountTypeLiability, AccountTypeEquity:
		return true
	}
	return false
}

// IsValid checks if the TransactionCategory is valid
func (c TransactionCategory) IsValid() bool {
	switch c {
	case TransactionCategoryFuture, TransactionCategoryActual, TransactionCategoryInternal:
		return true
	}
	return false
}
