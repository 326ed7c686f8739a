package entity

// Upgradeability is the proxy metadata of a discovered contract.
type Upgradeability struct {
	Type           string  `json:"type" yaml:"type"`
	Admin          Address `json:"admin,omitempty" yaml:"admin"`
	Implementation Address `json:"implementation,omitempty" yaml:"implementation"`
}

// ContractMetadata carries the hand-written parts of a contract description.
// Empty fields are treated as "not set" when merging.
type ContractMetadata struct {
	Description  string
	UpgradableBy []string
	UpgradeDelay string
	References   []Reference
}

// MergeContractMetadata folds overrides over base. Later arguments win for
// every field they set; unset fields keep the earlier value.
func MergeContractMetadata(base ContractMetadata, overrides ...ContractMetadata) ContractMetadata {
	merged := base
	for _, o := range overrides {
		if o.Description != "" {
			merged.Description = o.Description
		}
		if o.UpgradableBy != nil {
			merged.UpgradableBy = o.UpgradableBy
		}
		if o.UpgradeDelay != "" {
			merged.UpgradeDelay = o.UpgradeDelay
		}
		if o.References != nil {
			merged.References = o.References
		}
	}
	return merged
}

// ContractDetails is a contract shown in the record's contract list.
type ContractDetails struct {
	Name           string          `json:"name"`
	Address        Address         `json:"address"`
	Description    string          `json:"description"`
	Upgradeability *Upgradeability `json:"upgradeability,omitempty"`
	UpgradableBy   []string        `json:"upgradableBy"`
	UpgradeDelay   string          `json:"upgradeDelay,omitempty"`
	References     []Reference     `json:"references"`
}

// Contracts is the contract list of a record plus its aggregate risks.
type Contracts struct {
	Addresses []ContractDetails `json:"addresses"`
	Risks     []Risk            `json:"risks"`
}
