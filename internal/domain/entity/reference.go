package entity

// Reference points at evidence backing a statement in a record.
type Reference struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// Links groups the external links of a project by kind.
type Links struct {
	Websites      []string `json:"websites" yaml:"websites"`
	Apps          []string `json:"apps" yaml:"apps"`
	Documentation []string `json:"documentation" yaml:"documentation"`
	Explorers     []string `json:"explorers" yaml:"explorers"`
	Repositories  []string `json:"repositories" yaml:"repositories"`
	SocialMedia   []string `json:"socialMedia" yaml:"socialMedia"`
}

// Milestone is a dated event in a project's history.
type Milestone struct {
	Name        string `json:"name"`
	Date        string `json:"date"` // RFC3339
	Link        string `json:"link"`
	Description string `json:"description"`
}

// KnowledgeNugget is an external article or video shown alongside a project.
type KnowledgeNugget struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail,omitempty"`
}
