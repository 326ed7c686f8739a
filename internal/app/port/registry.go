package port

import (
	"iter"

	"github.com/orb3-protocol/l2beat/internal/domain/entity"
)

// ProjectRegistry stores built project records keyed by id. Get and List hand
// out the registered records themselves; callers must treat them as read-only.
type ProjectRegistry interface {
	// Register adds a record; it fails with entity.ErrDuplicateID if the id exists.
	Register(record *entity.ProjectRecord) error
	// Get returns the record with id or entity.ErrNotFound.
	Get(id string) (*entity.ProjectRecord, error)
	// List yields records matching filter. The sequence can be ranged over repeatedly.
	List(filter entity.ListFilter) iter.Seq[*entity.ProjectRecord]
	Len() int
}
