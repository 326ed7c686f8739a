package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AllTokensWildcard is the JSON form of a token set that covers every token.
const AllTokensWildcard = "*"

// TokenSet is either an explicit, non-empty list of token symbols or the
// wildcard meaning every token held by the escrow.
type TokenSet struct {
	All     bool
	Symbols []string
}

// AllTokens returns the wildcard token set.
func AllTokens() TokenSet {
	return TokenSet{All: true}
}

// Tokens returns a token set of the given symbols.
func Tokens(symbols ...string) TokenSet {
	return TokenSet{Symbols: symbols}
}

// ParseTokenSet interprets "*" as the wildcard and anything else as a single symbol.
func ParseTokenSet(symbols ...string) TokenSet {
	if len(symbols) == 1 && symbols[0] == AllTokensWildcard {
		return AllTokens()
	}
	return Tokens(symbols...)
}

// Valid reports whether the set is the wildcard or contains at least one symbol.
func (t TokenSet) Valid() bool {
	if t.All {
		return len(t.Symbols) == 0
	}
	if len(t.Symbols) == 0 {
		return false
	}
	for _, s := range t.Symbols {
		if s == "" || s == AllTokensWildcard {
			return false
		}
	}
	return true
}

// Contains reports whether the set covers symbol.
func (t TokenSet) Contains(symbol string) bool {
	if t.All {
		return true
	}
	for _, s := range t.Symbols {
		if s == symbol {
			return true
		}
	}
	return false
}

// MarshalJSON encodes the wildcard as "*" and explicit sets as an array.
func (t TokenSet) MarshalJSON() ([]byte, error) {
	if t.All {
		return json.Marshal(AllTokensWildcard)
	}
	if t.Symbols == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t.Symbols)
}

// UnmarshalJSON accepts "*" or an array of symbols.
func (t *TokenSet) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s != AllTokensWildcard {
			return fmt.Errorf("token set string must be %q, got %q", AllTokensWildcard, s)
		}
		*t = AllTokens()
		return nil
	}
	var symbols []string
	if err := json.Unmarshal(data, &symbols); err != nil {
		return fmt.Errorf("failed to decode token set: %w", err)
	}
	*t = Tokens(symbols...)
	return nil
}

// EscrowConfig is a contract holding funds bridged to the project.
type EscrowConfig struct {
	Address        Address         `json:"address"`
	SinceTimestamp int64           `json:"sinceTimestamp"` // unix seconds
	Tokens         TokenSet        `json:"tokens"`
	Description    string          `json:"description"`
	Upgradeability *Upgradeability `json:"upgradeability,omitempty"`
	UpgradableBy   []string        `json:"upgradableBy"`
	UpgradeDelay   string          `json:"upgradeDelay,omitempty"`
}

// TransactionAPI describes how activity of the project is polled.
type TransactionAPI struct {
	Type                  string `json:"type"`
	DefaultURL            string `json:"defaultUrl"`
	DefaultCallsPerMinute int    `json:"defaultCallsPerMinute"`
	StartBlock            uint64 `json:"startBlock"`
}

// EscrowParams is the caller supplied description of an escrow.
type EscrowParams struct {
	Address        string
	SinceTimestamp int64
	Tokens         []string // "*" alone means every token
	Description    string
	Metadata       ContractMetadata
}
