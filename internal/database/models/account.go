package models

import "github.com/google/uuid"

// Account is a ledger account belonging to an organization
type Account struct {
	BaseModel
	Name           string     `json:"name" gorm:"not null;size:200"`
	Code           string     `json:"code" gorm:"size:20;index"`
	Description    string     `json:"description" gorm:"type:text"`
	CategoryID     *uuid.UUID `json:"category_id,omitempty" gorm:"type:uuid;index"`
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index"`

	// Relationships
	Category *AccountCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

// TableName returns the table name for Account
func (Account) TableName() string {
	return "accounts"
}
