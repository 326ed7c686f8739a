package registry

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"
	"sync"

	"github.com/orb3-protocol/l2beat/internal/app/port"
	"github.com/orb3-protocol/l2beat/internal/domain/entity"
)

// MemoryRegistry is an insertion-ordered, in-memory port.ProjectRegistry.
// Records are read-only once registered.
type MemoryRegistry struct {
	mu     sync.RWMutex
	order  []*entity.ProjectRecord
	byID   map[string]*entity.ProjectRecord
	logger port.Logger
}

// NewMemoryRegistry creates an empty registry.
func NewMemoryRegistry(log port.Logger) *MemoryRegistry {
	return &MemoryRegistry{
		byID:   make(map[string]*entity.ProjectRecord),
		logger: log,
	}
}

// Register implements port.ProjectRegistry.
func (r *MemoryRegistry) Register(record *entity.ProjectRecord) error {
	if record == nil || record.ID == "" {
		return fmt.Errorf("%w: record without id", entity.ErrSchemaViolation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[record.ID]; exists {
		return fmt.Errorf("%w: %s", entity.ErrDuplicateID, record.ID)
	}
	r.byID[record.ID] = record
	r.order = append(r.order, record)
	r.logger.Debug("Project registered", "project", record.ID, "total", len(r.order))
	return nil
}

// Get implements port.ProjectRegistry. The returned record is shared with
// every other reader and must not be modified.
func (r *MemoryRegistry) Get(id string) (*entity.ProjectRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: project %s", entity.ErrNotFound, id)
	}
	return record, nil
}

// Len implements port.ProjectRegistry.
func (r *MemoryRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// List implements port.ProjectRegistry. Each range over the returned sequence
// takes a fresh snapshot, so it can be consumed any number of times.
func (r *MemoryRegistry) List(filter entity.ListFilter) iter.Seq[*entity.ProjectRecord] {
	return func(yield func(*entity.ProjectRecord) bool) {
		for _, record := range r.snapshot(filter) {
			if !yield(record) {
				return
			}
		}
	}
}

func (r *MemoryRegistry) snapshot(filter entity.ListFilter) []*entity.ProjectRecord {
	r.mu.RLock()
	matched := make([]*entity.ProjectRecord, 0, len(r.order))
	for _, record := range r.order {
		if filter.Matches(record) {
			matched = append(matched, record)
		}
	}
	r.mu.RUnlock()

	switch filter.SortBy {
	case entity.SortByID:
		slices.SortStableFunc(matched, func(a, b *entity.ProjectRecord) int {
			return cmp.Compare(a.ID, b.ID)
		})
	case entity.SortByName:
		slices.SortStableFunc(matched, func(a, b *entity.ProjectRecord) int {
			return cmp.Or(
				cmp.Compare(strings.ToLower(a.Display.Name), strings.ToLower(b.Display.Name)),
				cmp.Compare(a.ID, b.ID),
			)
		})
	}
	return matched
}
