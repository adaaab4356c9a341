package models

// TransactionType describes how money or value moves, e.g. a bank transfer
type TransactionType struct {
	BaseModel
	Name        string              `json:"name" gorm:"not null;size:100"`
	Category    TransactionCategory `json:"category" gorm:"not null;size:20"`
	Description string              `json:"description" gorm:"type:text"`
}

// TableName returns the table name for TransactionType
func (TransactionType) TableName() string {
	return "transaction_types"
}
