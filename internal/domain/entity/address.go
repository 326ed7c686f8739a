package entity

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// ZeroAddress represents the Ethereum zero address.
const ZeroAddress Address = "0x0000000000000000000000000000000000000000"

// Address is an EIP-55 checksummed Ethereum address.
type Address string

// ParseAddress validates s and returns its checksummed form.
func ParseAddress(s string) (Address, error) {
	if !common.IsHexAddress(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return Address(common.HexToAddress(s).Hex()), nil
}

// MustParseAddress is like ParseAddress but panics on malformed input.
// Only use it for addresses hard-coded in project definitions.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String returns the address as a string.
func (a Address) String() string {
	return string(a)
}

// IsZero reports whether the address is empty or the zero address.
func (a Address) IsZero() bool {
	return a == "" || common.HexToAddress(string(a)) == common.Address{}
}
