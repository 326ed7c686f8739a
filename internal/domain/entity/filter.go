package entity

import "fmt"

// SortKey orders a registry listing.
type SortKey string

const (
	SortInsertion SortKey = ""
	SortByID      SortKey = "id"
	SortByName    SortKey = "name"
)

// ListFilter selects records from the registry. Empty fields match everything.
type ListFilter struct {
	Category string
	Purpose  string
	SortBy   SortKey
}

// Matches reports whether record passes the filter.
func (f ListFilter) Matches(record *ProjectRecord) bool {
	if f.Category != "" && record.Display.Category != f.Category {
		return false
	}
	if f.Purpose != "" && !record.Display.HasPurpose(f.Purpose) {
		return false
	}
	return true
}

// ParseSortKey accepts "", "id" and "name".
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case SortInsertion, SortByID, SortByName:
		return k, nil
	default:
		return "", fmt.Errorf("unknown sort key %q", s)
	}
}
