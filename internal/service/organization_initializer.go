package service

import (
	"errors"
	"fmt"

	"curr-backend/internal/database/models"
	apperrors "curr-backend/internal/errors"
	"curr-backend/internal/logger"
	"curr-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationInitializer creates a root organization, its unit hierarchy and its ledger accounts
type OrganizationInitializer struct {
	orgRepo      repository.OrganizationRepositoryInterface
	accountRepo  repository.AccountRepositoryInterface
	categoryRepo repository.AccountCategoryRepositoryInterface
	templates    *Templates
	validator    *validator.Validate
	logger       *logger.Logger
}

// Ensure OrganizationInitializer implements OrganizationInitializerInterface
var _ OrganizationInitializerInterface = (*OrganizationInitializer)(nil)

// NewOrganizationInitializer creates a new organization initializer
func NewOrganizationInitializer(
	orgRepo repository.OrganizationRepositoryInterface,
	accountRepo repository.AccountRepositoryInterface,
	categoryRepo repository.AccountCategoryRepositoryInterface,
	templates *Templates,
	validator *validator.Validate,
	log *logger.Logger,
) *OrganizationInitializer {
	if log == nil {
		log = logger.New()
	}
	return &OrganizationInitializer{
		orgRepo:      orgRepo,
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
		templates:    templates,
		validator:    validator,
		logger:       log.WithField("component", "org-initializer"),
	}
}

// InitializeOptions selects what Initialize creates
type InitializeOptions struct {
	Name          string `json:"name" validate:"required,max=200"`
	ChildOrgLevel int    `json:"child_org_level"`
	SeedAccounts  bool   `json:"seed_accounts"`
}

// InitializeResult reports the records created by Initialize
type InitializeResult struct {
	Organization        *models.Organization `json:"organization"`
	RootCreated         bool                 `json:"root_created"`
	ChildOrganizations  int                  `json:"child_organizations"`
	Accounts            int                  `json:"accounts"`
	TotalRecordsCreated int                  `json:"total_records_created"`
}

// Initialize ensures the root organization exists, then optionally builds the hierarchy
// and seeds accounts. The first failing stage aborts the run; created rows are kept.
func (s *OrganizationInitializer) Initialize(opts InitializeOptions) (*InitializeResult, error) {
	if err := s.validator.Struct(opts); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			err = apperrors.NewValidationError(fieldErrs[0].Field(), "failed on "+fieldErrs[0].Tag())
		}
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"name":     opts.Name,
		"level":    opts.ChildOrgLevel,
		"accounts": opts.SeedAccounts,
	}).Info("Starting organization initialization")

	result := &InitializeResult{}

	org, created, err := s.EnsureRootOrganization(opts.Name)
	if err != nil {
		s.logger.WithError(err).Error("Organization initialization failed")
		return result, apperrors.NewSeedError(apperrors.StageRootOrganization, err)
	}
	result.Organization = org
	result.RootCreated = created
	if created {
		result.TotalRecordsCreated++
	}
	s.logger.WithField("created", result.TotalRecordsCreated).Info("Root organization ready")

	if opts.ChildOrgLevel > 0 {
		count, err := s.BuildHierarchy(opts.ChildOrgLevel, org.ID)
		result.ChildOrganizations = count
		result.TotalRecordsCreated += count
		if err != nil {
			s.logger.WithError(err).Error("Organization initialization failed")
			return result, apperrors.NewSeedError(apperrors.StageHierarchy, err)
		}
		s.logger.WithField("created", result.TotalRecordsCreated).Info("Organization hierarchy created")
	}

	if opts.SeedAccounts {
		count, err := s.SeedAccounts(org.ID)
		result.Accounts = count
		result.TotalRecordsCreated += count
		if err != nil {
			s.logger.WithError(err).Error("Organization initialization failed")
			return result, apperrors.NewSeedError(apperrors.StageAccounts, err)
		}
		s.logger.WithField("created", result.TotalRecordsCreated).Info("Organization accounts created")
	}

	s.logger.WithField("created", result.TotalRecordsCreated).Info("Organization initialization completed")
	return result, nil
}

// EnsureRootOrganization returns the organization with the given name, creating it when absent.
// The lookup and the insert are separate statements, so concurrent callers may both create it.
func (s *OrganizationInitializer) EnsureRootOrganization(name string) (*models.Organization, bool, error) {
	existing, err := s.orgRepo.GetByName(name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to look up organization %q: %w", name, err)
	}
	if existing != nil {
		s.logger.WithField("organization", name).Info("Organization already exists, using existing")
		return existing, false, nil
	}

	org := &models.Organization{Name: name}
	if err := s.orgRepo.Create(org); err != nil {
		return nil, false, fmt.Errorf("failed to create organization %q: %w", name, err)
	}
	seededRecords.WithLabelValues(entityOrganization).Inc()

	s.logger.WithFields(map[string]interface{}{
		"organization": org.Name,
		"id":           org.ID,
	}).Info("Created organization")
	return org, true, nil
}

// BuildHierarchy creates the template forest masked to level beneath parentID.
// It returns the number of organizations created, including those created before a failure.
func (s *OrganizationInitializer) BuildHierarchy(level int, parentID uuid.UUID) (int, error) {
	forest := s.templates.Forest(level)
	s.logger.WithFields(map[string]interface{}{
		"level":    level,
		"expected": CountNodes(forest),
	}).Info("Creating child organizations")

	total := 0
	for _, node := range forest {
		count, err := s.createSubtree(node, parentID)
		total += count
		if err != nil {
			return total, err
		}
	}

	s.logger.WithField("count", total).Info("Created child organizations")
	return total, nil
}

func (s *OrganizationInitializer) createSubtree(node TemplateNode, parentID uuid.UUID) (int, error) {
	parent := parentID
	org := &models.Organization{
		Name:        node.Name,
		Description: node.Description,
		ParentID:    &parent,
	}
	if err := s.orgRepo.Create(org); err != nil {
		return 0, fmt.Errorf("failed to create organization %q: %w", node.Name, err)
	}
	seededRecords.WithLabelValues(entityOrganization).Inc()

	created := 1
	for _, child := range node.Children {
		count, err := s.createSubtree(child, org.ID)
		created += count
		if err != nil {
			return created, err
		}
	}
	return created, nil
}

// SeedAccounts creates one account per template entry, linked to the organization named by
// the entry within the hierarchy rooted at organizationID, or to organizationID itself when
// no organization in that hierarchy has the name. Units of other roots are never used.
// When names or category types repeat, the earliest created record wins.
// Every call creates a full new set of accounts.
func (s *OrganizationInitializer) SeedAccounts(organizationID uuid.UUID) (int, error) {
	s.logger.WithField("organization_id", organizationID).Info("Seeding organization accounts")

	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return 0, fmt.Errorf("failed to load account categories: %w", err)
	}
	categoryIDs := make(map[models.AccountType]uuid.UUID, len(categories))
	for _, category := range categories {
		if _, ok := categoryIDs[category.Type]; !ok {
			categoryIDs[category.Type] = category.ID
		}
	}

	orgs, err := s.orgRepo.GetAll()
	if err != nil {
		return 0, fmt.Errorf("failed to load organizations: %w", err)
	}
	members := subtree(orgs, organizationID)
	orgIDs := make(map[string]uuid.UUID, len(members))
	for _, org := range orgs {
		if !members[org.ID] {
			continue
		}
		if _, ok := orgIDs[org.Name]; !ok {
			orgIDs[org.Name] = org.ID
		}
	}

	created := 0
	for _, tmpl := range s.templates.Accounts {
		targetID, ok := orgIDs[tmpl.Organization]
		if !ok {
			s.logger.WithFields(map[string]interface{}{
				"account":      tmpl.Name,
				"organization": tmpl.Organization,
			}).Warn("Organization not found for account, linking to root organization")
			targetID = organizationID
		}

		account := &models.Account{
			Name:           tmpl.Name,
			Code:           tmpl.Code,
			Description:    fmt.Sprintf("%s számla", tmpl.Name),
			OrganizationID: targetID,
		}
		if categoryID, ok := categoryIDs[tmpl.Type]; ok {
			account.CategoryID = &categoryID
		}

		if err := s.accountRepo.Create(account); err != nil {
			return created, fmt.Errorf("failed to create account %s %q: %w", tmpl.Code, tmpl.Name, err)
		}
		seededRecords.WithLabelValues(entityAccount).Inc()
		created++
	}

	s.logger.WithField("count", created).Info("Created accounts for organization")
	return created, nil
}

// subtree returns the ids of rootID and all of its descendants among orgs
func subtree(orgs []models.Organization, rootID uuid.UUID) map[uuid.UUID]bool {
	children := make(map[uuid.UUID][]uuid.UUID, len(orgs))
	for _, org := range orgs {
		if org.ParentID != nil {
			children[*org.ParentID] = append(children[*org.ParentID], org.ID)
		}
	}

	members := map[uuid.UUID]bool{rootID: true}
	queue := []uuid.UUID{rootID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, child := range children[id] {
			if !members[child] {
				members[child] = true
				queue = append(queue, child)
			}
		}
	}
	return members
}
