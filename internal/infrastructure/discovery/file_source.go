package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/orb3-protocol/l2beat/internal/app/port"
	"github.com/orb3-protocol/l2beat/internal/domain/entity"
)

// FileSource reads snapshots from <dir>/<project>.yaml or <dir>/<project>.yml.
type FileSource struct {
	dir    string
	logger port.Logger
}

// NewFileSource creates a new FileSource.
func NewFileSource(dir string, log port.Logger) *FileSource {
	return &FileSource{dir: dir, logger: log}
}

// Load implements port.DiscoverySource.
func (s *FileSource) Load(ctx context.Context, projectID string) (*entity.DiscoverySnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, ext := range []string{".yaml", ".yml"} {
		path := filepath.Join(s.dir, projectID+ext)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read discovery file %s: %w", path, err)
		}
		s.logger.Debug("Loaded discovery file", "project", projectID, "path", path)
		return decodeSnapshot(projectID, data, yaml.Unmarshal)
	}
	return nil, fmt.Errorf("%w: no discovery for %s in %s", entity.ErrNotFound, projectID, s.dir)
}

func decodeSnapshot(projectID string, data []byte, unmarshal func([]byte, any) error) (*entity.DiscoverySnapshot, error) {
	var snapshot entity.DiscoverySnapshot
	if err := unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode discovery of %s: %w", projectID, err)
	}
	switch snapshot.Project {
	case "":
		snapshot.Project = projectID
	case projectID:
	default:
		return nil, fmt.Errorf("%w: discovery for %s belongs to %s", entity.ErrSchemaViolation, projectID, snapshot.Project)
	}
	if snapshot.Contracts == nil {
		snapshot.Contracts = map[string]entity.DiscoveredContract{}
	}
	return &snapshot, nil
}
