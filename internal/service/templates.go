package service

import (
	"embed"
	"fmt"

	"curr-backend/internal/database/models"

	"gopkg.in/yaml.v3"
)

// MaxHierarchyLevel is the deepest tier of the organization template
const MaxHierarchyLevel = 3

//go:embed data/*.yaml
var seedData embed.FS

// TemplateNode is one organizational unit of the template forest
type TemplateNode struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Children    []TemplateNode `yaml:"children,omitempty"`
}

// AccountTemplate is a ledger account attached to an organization by name
type AccountTemplate struct {
	Name         string             `yaml:"name"`
	Code         string             `yaml:"code"`
	Type         models.AccountType `yaml:"type"`
	Organization string             `yaml:"organization"`
}

// Templates holds the static hierarchy and account tables
type Templates struct {
	Organizations []TemplateNode
	Accounts      []AccountTemplate
}

type organizationsFile struct {
	Organizations []TemplateNode `yaml:"organizations"`
}

type accountsFile struct {
	Accounts []AccountTemplate `yaml:"accounts"`
}

// LoadTemplates decodes the embedded organization and account tables
func LoadTemplates() (*Templates, error) {
	var orgs organizationsFile
	if err := loadSeedFile("data/organizations.yaml", &orgs); err != nil {
		return nil, err
	}
	var accounts accountsFile
	if err := loadSeedFile("data/accounts.yaml", &accounts); err != nil {
		return nil, err
	}
	return &Templates{
		Organizations: orgs.Organizations,
		Accounts:      accounts.Accounts,
	}, nil
}

func loadSeedFile(name string, out interface{}) error {
	data, err := seedData.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// Forest returns the template forest cut off below the given level.
// Levels outside 1..MaxHierarchyLevel yield an empty forest.
func (t *Templates) Forest(level int) []TemplateNode {
	if level < 1 || level > MaxHierarchyLevel {
		return nil
	}
	return maskDepth(t.Organizations, level)
}

func maskDepth(nodes []TemplateNode, depth int) []TemplateNode {
	if len(nodes) == 0 {
		return nil
	}
	masked := make([]TemplateNode, len(nodes))
	for i, node := range nodes {
		masked[i] = TemplateNode{Name: node.Name, Description: node.Description}
		if depth > 1 {
			masked[i].Children = maskDepth(node.Children, depth-1)
		}
	}
	return masked
}

// CountNodes returns the number of nodes in a forest, descendants included
func CountNodes(forest []TemplateNode) int {
	total := 0
	for _, node := range forest {
		total += 1 + CountNodes(node.Children)
	}
	return total
}
