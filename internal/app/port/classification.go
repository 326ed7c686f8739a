package port

import "github.com/orb3-protocol/l2beat/internal/domain/entity"

// ClassificationTables provides the shared, read-only classification vocabulary.
type ClassificationTables interface {
	// Lookup returns the entry stored under category/key or entity.ErrUnknownKey.
	Lookup(category, key string) (entity.ClassificationEntry, error)

	// ExitWindow derives the exit window risk from an upgrade delay and the
	// longest withdrawal delay, both in seconds.
	ExitWindow(upgradeDelaySeconds, exitDelaySeconds int64) entity.RiskViewEntry
}
