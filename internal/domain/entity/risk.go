package entity

// Sentiment is the visual weight attached to a risk view value.
type Sentiment string

const (
	SentimentGood    Sentiment = "good"
	SentimentWarning Sentiment = "warning"
	SentimentBad     Sentiment = "bad"
	SentimentNeutral Sentiment = "neutral"
)

// Risk is a single risk statement attached to a technology section or contract set.
type Risk struct {
	Category   string `json:"category" yaml:"category"`
	Text       string `json:"text" yaml:"text"`
	IsCritical bool   `json:"isCritical,omitempty" yaml:"isCritical"`
}

// ExitWindowParams keeps the raw inputs an exit window entry was derived from.
type ExitWindowParams struct {
	UpgradeDelaySeconds int64 `json:"upgradeDelaySeconds"`
	ExitDelaySeconds    int64 `json:"exitDelaySeconds"`
}

// RiskViewEntry is one resolved risk dimension.
type RiskViewEntry struct {
	Value       string            `json:"value"`
	Description string            `json:"description"`
	Sentiment   Sentiment         `json:"sentiment"`
	SecondLine  string            `json:"secondLine,omitempty"`
	Sources     []Reference       `json:"sources"`
	ExitWindow  *ExitWindowParams `json:"exitWindow,omitempty"`
}

// IsZero reports whether the entry was never populated.
func (e RiskViewEntry) IsZero() bool {
	return e.Value == "" && e.Description == "" && e.Sentiment == ""
}

// RiskView holds every risk dimension a record must resolve.
type RiskView struct {
	StateValidation  RiskViewEntry `json:"stateValidation"`
	DataAvailability RiskViewEntry `json:"dataAvailability"`
	ExitWindow       RiskViewEntry `json:"exitWindow"`
	SequencerFailure RiskViewEntry `json:"sequencerFailure"`
	ProposerFailure  RiskViewEntry `json:"proposerFailure"`
	DestinationToken RiskViewEntry `json:"destinationToken"`
	ValidatedBy      RiskViewEntry `json:"validatedBy"`
}

// RiskDimension pairs a risk view field name with its entry.
type RiskDimension struct {
	Name  string
	Entry RiskViewEntry
}

// Dimensions lists the risk view in a fixed order.
func (v RiskView) Dimensions() []RiskDimension {
	return []RiskDimension{
		{Name: "stateValidation", Entry: v.StateValidation},
		{Name: "dataAvailability", Entry: v.DataAvailability},
		{Name: "exitWindow", Entry: v.ExitWindow},
		{Name: "sequencerFailure", Entry: v.SequencerFailure},
		{Name: "proposerFailure", Entry: v.ProposerFailure},
		{Name: "destinationToken", Entry: v.DestinationToken},
		{Name: "validatedBy", Entry: v.ValidatedBy},
	}
}

// TechnologySection describes one aspect of how a project works.
type TechnologySection struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Risks       []Risk      `json:"risks"`
	References  []Reference `json:"references"`
}

// Technology groups the descriptive technology sections of a record.
type Technology struct {
	StateCorrectness  TechnologySection   `json:"stateCorrectness"`
	DataAvailability  TechnologySection   `json:"dataAvailability"`
	Operator          TechnologySection   `json:"operator"`
	ForceTransactions TechnologySection   `json:"forceTransactions"`
	ExitMechanisms    []TechnologySection `json:"exitMechanisms"`
	SmartContracts    TechnologySection   `json:"smartContracts"`
}
