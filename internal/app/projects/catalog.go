// Package projects holds the hand-written project definitions.
package projects

import (
	"fmt"

	"github.com/orb3-protocol/l2beat/internal/app/port"
	"github.com/orb3-protocol/l2beat/internal/domain/entity"
)

// All returns every known project definition in catalog order.
func All() []port.ProjectDefinition {
	return []port.ProjectDefinition{
		Lumen(),
		Vesper(),
	}
}

// Select returns the definitions with the given ids in the given order.
// An empty ids list selects every project.
func Select(ids []string) ([]port.ProjectDefinition, error) {
	all := All()
	if len(ids) == 0 {
		return all, nil
	}
	byID := make(map[string]port.ProjectDefinition, len(all))
	for _, def := range all {
		byID[def.ID()] = def
	}
	selected := make([]port.ProjectDefinition, 0, len(ids))
	for _, id := range ids {
		def, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: no definition for %s", entity.ErrNotFound, id)
		}
		selected = append(selected, def)
	}
	return selected, nil
}
