package entity

// Display is the human-facing metadata of a project.
type Display struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Purposes    []string `json:"purposes"`
	Category    string   `json:"category"`
	Links       Links    `json:"links"`
	Warning     string   `json:"warning,omitempty"`
}

// HasPurpose reports whether the project is tagged with purpose.
func (d Display) HasPurpose(purpose string) bool {
	for _, p := range d.Purposes {
		if p == purpose {
			return true
		}
	}
	return false
}

// ProjectRecord is one catalog entry.
type ProjectRecord struct {
	ID               string              `json:"id"`
	Display          Display             `json:"display"`
	Config           ProjectConfig       `json:"config"`
	RiskView         RiskView            `json:"riskView"`
	Stage            StageClassification `json:"stage"`
	Technology       Technology          `json:"technology"`
	Permissions      []PermissionEntry   `json:"permissions"`
	Contracts        Contracts           `json:"contracts"`
	Milestones       []Milestone         `json:"milestones"`
	KnowledgeNuggets []KnowledgeNugget   `json:"knowledgeNuggets"`
}

// Project categories.
const (
	CategoryOptimisticRollup = "Optimistic Rollup"
	CategoryZKRollup         = "ZK Rollup"
	CategoryOptimium         = "Optimium"
	CategoryValidium         = "Validium"
	CategoryPlasma           = "Plasma"
	CategoryOther            = "Other"
)

// ProjectSummary is the short form of a record used in listings.
type ProjectSummary struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Slug     string   `json:"slug"`
	Category string   `json:"category"`
	Purposes []string `json:"purposes"`
	Stage    Stage    `json:"stage"`
}

// Summary returns the listing form of the record.
func (r *ProjectRecord) Summary() ProjectSummary {
	return ProjectSummary{
		ID:       r.ID,
		Name:     r.Display.Name,
		Slug:     r.Display.Slug,
		Category: r.Display.Category,
		Purposes: r.Display.Purposes,
		Stage:    r.Stage.Stage,
	}
}
