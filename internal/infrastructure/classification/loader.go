package classification

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/orb3-protocol/l2beat/internal/domain/entity"
)

// LoadFile reads classification overrides from a YAML file shaped as
// category -> key -> entry.
func LoadFile(path string) (map[string]map[string]entity.ClassificationEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read classification file %s: %w", path, err)
	}

	var overrides map[string]map[string]entity.ClassificationEntry
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to unmarshal classification file %s: %w", path, err)
	}
	return overrides, nil
}
