package entity

import "errors"

// Sentinel errors for catalog construction. Every layer wraps these with
// fmt.Errorf("...: %w", err) so callers can match them with errors.Is.
var (
	// ErrUnknownKey is returned when a classification table has no entry for a key.
	ErrUnknownKey = errors.New("unknown classification key")
	// ErrMissingField is returned when a discovery snapshot lacks a contract or field.
	ErrMissingField = errors.New("missing discovery field")
	// ErrUnknownRole is returned when a role name has no discovered address.
	ErrUnknownRole = errors.New("unknown role")
	// ErrInvalidAddress is returned for malformed Ethereum addresses.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrInvalidTimestamp is returned for escrow timestamps outside the valid range.
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	// ErrSchemaViolation is returned when a composed record is incomplete or malformed.
	ErrSchemaViolation = errors.New("schema violation")
	// ErrDuplicateID is returned when registering a record whose id is already present.
	ErrDuplicateID = errors.New("duplicate project id")
	// ErrNotFound is returned when a record is not present in the registry.
	ErrNotFound = errors.New("project not found")
)
