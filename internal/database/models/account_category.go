package models

// AccountCategory classifies accounts by accounting type
type AccountCategory struct {
	BaseModel
	Name        string      `json:"name" gorm:"not null;size:100"`
	Type        AccountType `json:"type" gorm:"not null;size:20;index"`
	Description string      `json:"description" gorm:"type:text"`
	Color       string      `json:"color" gorm:"size:20"`
}

// TableName returns the table name for AccountCategory
func (AccountCategory) TableName() string {
	return "account_categories"
}
