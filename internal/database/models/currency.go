package models

import "github.com/google/uuid"

// CurrencyCategory groups currency types, e.g. cash or labor
type CurrencyCategory struct {
	BaseModel
	Name        string `json:"name" gorm:"not null;size:50;index"`
	Description string `json:"description" gorm:"type:text"`
}

// TableName returns the table name for CurrencyCategory
func (CurrencyCategory) TableName() string {
	return "currency_categories"
}

// CurrencyType is a unit of value tracked by the ledger (HUF, EUR, labor hours)
type CurrencyType struct {
	BaseModel
	Code       string     `json:"code" gorm:"not null;size:10"`
	Name       string     `json:"name" gorm:"not null;size:100"`
	Unit       string     `json:"unit" gorm:"size:20"`
	CategoryID *uuid.UUID `json:"category_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Category *CurrencyCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

// TableName returns the table name for CurrencyType
func (CurrencyType) TableName() string {
	return "currency_types"
}
