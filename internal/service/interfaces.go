package service

import "github.com/google/uuid"

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationInitializerInterface defines the interface for the organization hierarchy seeder
type OrganizationInitializerInterface interface {
	Initialize(opts InitializeOptions) (*InitializeResult, error)
	BuildHierarchy(level int, parentID uuid.UUID) (int, error)
	SeedAccounts(organizationID uuid.UUID) (int, error)
}

// ReferenceDataSeederInterface defines the interface for seeding reference data
type ReferenceDataSeederInterface interface {
	Seed() (*ReferenceSeedSummary, error)
}

// CleanerInterface defines the interface for database cleanup
type CleanerInterface interface {
	Run(dryRun bool) (*CleanupReport, error)
}
