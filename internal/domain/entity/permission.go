package entity

// AccountType classifies a permissioned actor.
type AccountType string

const (
	AccountEOA      AccountType = "EOA"
	AccountContract AccountType = "Contract"
	AccountMultiSig AccountType = "MultiSig"
)

// PermissionAccount is one address holding a permission.
type PermissionAccount struct {
	Address Address     `json:"address"`
	Type    AccountType `json:"type"`
}

// PermissionEntry describes an actor and what it is allowed to do.
type PermissionEntry struct {
	Name        string              `json:"name"`
	Accounts    []PermissionAccount `json:"accounts"`
	Description string              `json:"description"`
	References  []Reference         `json:"references"`
}
