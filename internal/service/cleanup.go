package service

import (
	"fmt"

	"curr-backend/internal/database/models"
	"curr-backend/internal/logger"
	"curr-backend/internal/repository"

	"github.com/google/uuid"
)

// CleanupReport holds the record counts seen by a cleanup run
type CleanupReport struct {
	DryRun               bool  `json:"dry_run"`
	Accounts             int64 `json:"accounts"`
	Organizations        int64 `json:"organizations"`
	DeletedAccounts      int   `json:"deleted_accounts"`
	DeletedOrganizations int   `json:"deleted_organizations"`
	RemainingAccounts    int64 `json:"remaining_accounts"`
	RemainingOrgs        int64 `json:"remaining_organizations"`
}

// Complete reports whether nothing is left after a destructive run
func (r *CleanupReport) Complete() bool {
	return !r.DryRun && r.RemainingAccounts == 0 && r.RemainingOrgs == 0
}

// Cleaner removes every account and organization from the store
type Cleaner struct {
	orgRepo     repository.OrganizationRepositoryInterface
	accountRepo repository.AccountRepositoryInterface
	logger      *logger.Logger
}

var _ CleanerInterface = (*Cleaner)(nil)

// NewCleaner creates a new cleaner
func NewCleaner(
	orgRepo repository.OrganizationRepositoryInterface,
	accountRepo repository.AccountRepositoryInterface,
	log *logger.Logger,
) *Cleaner {
	if log == nil {
		log = logger.New()
	}
	return &Cleaner{
		orgRepo:     orgRepo,
		accountRepo: accountRepo,
		logger:      log.WithField("component", "cleanup"),
	}
}

// Run counts accounts and organizations and, unless dryRun is set, deletes them.
// Accounts go first since they reference organizations.
func (c *Cleaner) Run(dryRun bool) (*CleanupReport, error) {
	report := &CleanupReport{DryRun: dryRun}

	var err error
	if report.Accounts, err = c.accountRepo.Count(); err != nil {
		return nil, fmt.Errorf("failed to count accounts: %w", err)
	}
	if report.Organizations, err = c.orgRepo.Count(); err != nil {
		return nil, fmt.Errorf("failed to count organizations: %w", err)
	}
	c.logger.WithFields(map[string]interface{}{
		"accounts":      report.Accounts,
		"organizations": report.Organizations,
	}).Info("Current data")

	if dryRun {
		c.logger.Info("DRY RUN - no data will be deleted, use --confirm to delete")
		return report, nil
	}

	if report.Accounts > 0 {
		if err := c.deleteAccounts(report); err != nil {
			return report, err
		}
	}
	if report.Organizations > 0 {
		if err := c.deleteOrganizations(report); err != nil {
			return report, err
		}
	}

	if report.RemainingAccounts, err = c.accountRepo.Count(); err != nil {
		return report, fmt.Errorf("failed to count accounts: %w", err)
	}
	if report.RemainingOrgs, err = c.orgRepo.Count(); err != nil {
		return report, fmt.Errorf("failed to count organizations: %w", err)
	}

	entry := c.logger.WithFields(map[string]interface{}{
		"accounts":      report.RemainingAccounts,
		"organizations": report.RemainingOrgs,
	})
	if report.Complete() {
		entry.Info("Database cleanup completed successfully")
	} else {
		entry.Warn("Some data may still remain")
	}
	return report, nil
}

func (c *Cleaner) deleteAccounts(report *CleanupReport) error {
	accounts, err := c.accountRepo.GetAll()
	if err != nil {
		return fmt.Errorf("failed to list accounts: %w", err)
	}
	for _, account := range accounts {
		if err := c.accountRepo.Delete(account.ID); err != nil {
			return fmt.Errorf("failed to delete account %s: %w", account.ID, err)
		}
		deletedRecords.WithLabelValues(entityAccount).Inc()
		report.DeletedAccounts++
	}
	c.logger.WithField("count", report.DeletedAccounts).Info("Deleted accounts")
	return nil
}

func (c *Cleaner) deleteOrganizations(report *CleanupReport) error {
	orgs, err := c.orgRepo.GetAll()
	if err != nil {
		return fmt.Errorf("failed to list organizations: %w", err)
	}
	for _, org := range ChildrenFirst(orgs) {
		if err := c.orgRepo.Delete(org.ID); err != nil {
			return fmt.Errorf("failed to delete organization %q: %w", org.Name, err)
		}
		deletedRecords.WithLabelValues(entityOrganization).Inc()
		report.DeletedOrganizations++
	}
	c.logger.WithField("count", report.DeletedOrganizations).Info("Deleted organizations")
	return nil
}

// ChildrenFirst orders organizations deepest first so no parent is removed before its children.
// Organizations at the same depth keep their input order.
func ChildrenFirst(orgs []models.Organization) []models.Organization {
	parents := make(map[uuid.UUID]uuid.UUID, len(orgs))
	for _, org := range orgs {
		if org.ParentID != nil {
			parents[org.ID] = *org.ParentID
		}
	}

	depth := func(id uuid.UUID) int {
		d := 0
		// Bounded by len(orgs) so a corrupt parent cycle cannot loop forever.
		for parent, ok := parents[id]; ok && d < len(orgs); parent, ok = parents[parent] {
			d++
		}
		return d
	}

	maxDepth := 0
	byDepth := make(map[int][]models.Organization)
	for _, org := range orgs {
		d := depth(org.ID)
		byDepth[d] = append(byDepth[d], org)
		if d > maxDepth {
			maxDepth = d
		}
	}

	ordered := make([]models.Organization, 0, len(orgs))
	for d := maxDepth; d >= 0; d-- {
		ordered = append(ordered, byDepth[d]...)
	}
	return ordered
}
