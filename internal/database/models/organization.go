package models

import "github.com/google/uuid"

// Organization is a node in the cooperative's administrative hierarchy.
// Name is the business key used for lookups; it is not unique at store level.
type Organization struct {
	BaseModel
	Name        string     `json:"name" gorm:"not null;size:200;index" validate:"required,min=1,max=200"`
	Description string     `json:"description" gorm:"type:text"`
	Address     string     `json:"address" gorm:"size:255"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Children []Organization `json:"children,omitempty" gorm:"foreignKey:ParentID"`
	Accounts []Account      `json:"accounts,omitempty" gorm:"foreignKey:OrganizationID"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}

// IsRoot reports whether the organization has no parent
func (o *Organization) IsRoot() bool {
	return o.ParentID == nil
}
