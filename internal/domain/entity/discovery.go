package entity

// DiscoveredContract is a contract as recorded by the discovery process.
type DiscoveredContract struct {
	Address        string          `yaml:"address" json:"address"`
	Upgradeability *Upgradeability `yaml:"upgradeability" json:"upgradeability,omitempty"`
	Values         map[string]any  `yaml:"values" json:"values,omitempty"`
}

// DiscoverySnapshot is the previously collected on-chain state of one project.
type DiscoverySnapshot struct {
	Project     string                        `yaml:"project" json:"project"`
	BlockNumber uint64                        `yaml:"blockNumber" json:"blockNumber"`
	Contracts   map[string]DiscoveredContract `yaml:"contracts" json:"contracts"`
	EOAs        []string                      `yaml:"eoas" json:"eoas,omitempty"`
	Roles       map[string][]string           `yaml:"roles" json:"roles,omitempty"`
}
