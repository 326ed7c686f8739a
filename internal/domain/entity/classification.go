package entity

// ClassificationEntry is a canonical descriptive object from a shared table.
// The same entry shape backs risk view values and technology sections.
type ClassificationEntry struct {
	Category    string      `json:"category" yaml:"-"`
	Key         string      `json:"key" yaml:"-"`
	Label       string      `json:"label" yaml:"label"`
	Description string      `json:"description" yaml:"description"`
	Sentiment   Sentiment   `json:"sentiment,omitempty" yaml:"sentiment"`
	SecondLine  string      `json:"secondLine,omitempty" yaml:"secondLine"`
	Risks       []Risk      `json:"risks,omitempty" yaml:"risks"`
	References  []Reference `json:"references,omitempty" yaml:"references"`
}

// RiskViewEntry converts the classification into a risk view entry,
// attaching the given evidence references.
func (c ClassificationEntry) RiskViewEntry(sources ...Reference) RiskViewEntry {
	return RiskViewEntry{
		Value:       c.Label,
		Description: c.Description,
		Sentiment:   c.Sentiment,
		SecondLine:  c.SecondLine,
		Sources:     append(append([]Reference{}, c.References...), sources...),
	}
}

// Section converts the classification into a technology section.
func (c ClassificationEntry) Section(references ...Reference) TechnologySection {
	return TechnologySection{
		Name:        c.Label,
		Description: c.Description,
		Risks:       append([]Risk{}, c.Risks...),
		References:  append(append([]Reference{}, c.References...), references...),
	}
}
