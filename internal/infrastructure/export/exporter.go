package export

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/orb3-protocol/l2beat/internal/app/port"
	"github.com/orb3-protocol/l2beat/internal/domain/entity"
	"github.com/orb3-protocol/l2beat/internal/domain/stage"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	indexFile   = "index.json"
	projectsDir = "projects"
)

// Index is the content of index.json: the exported projects in registry order.
type Index struct {
	GeneratedAt int64                   `json:"generatedAt"`
	Projects    []entity.ProjectSummary `json:"projects"`
}

// Exporter writes records as JSON files: <dir>/projects/<id>.json plus <dir>/index.json.
type Exporter struct {
	dir    string
	logger port.Logger
	now    func() int64
}

// NewExporter creates a new Exporter writing below dir.
func NewExporter(dir string, log port.Logger, now func() int64) *Exporter {
	return &Exporter{dir: dir, logger: log, now: now}
}

// Export writes every record of records. Files of projects no longer present
// are left untouched; index.json is the source of truth.
func (e *Exporter) Export(records iter.Seq[*entity.ProjectRecord]) (int, error) {
	if err := os.MkdirAll(filepath.Join(e.dir, projectsDir), 0o755); err != nil {
		return 0, fmt.Errorf("failed to create export directory %s: %w", e.dir, err)
	}

	index := Index{GeneratedAt: e.now(), Projects: []entity.ProjectSummary{}}
	for record := range records {
		if unset := stage.Unset(record.Stage.Criteria); len(unset) > 0 {
			return 0, fmt.Errorf("%w: project %s has unset stage criteria %s",
				entity.ErrSchemaViolation, record.ID, strings.Join(unset, ", "))
		}
		data, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return 0, fmt.Errorf("failed to encode project %s: %w", record.ID, err)
		}
		if err := writeFile(filepath.Join(e.dir, projectsDir, record.ID+".json"), data); err != nil {
			return 0, err
		}
		index.Projects = append(index.Projects, record.Summary())
	}

	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to encode index: %w", err)
	}
	if err := writeFile(filepath.Join(e.dir, indexFile), data); err != nil {
		return 0, err
	}
	e.logger.Info("Catalog exported", "dir", e.dir, "projects", len(index.Projects))
	return len(index.Projects), nil
}

// writeFile replaces path atomically.
func writeFile(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to move %s into place: %w", path, err)
	}
	return nil
}

// ReadIndex reads index.json from dir.
func ReadIndex(dir string) (*Index, error) {
	data, err := os.ReadFile(filepath.Join(dir, indexFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read export index in %s: %w", dir, err)
	}
	var index Index
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("failed to decode export index in %s: %w", dir, err)
	}
	return &index, nil
}

// ReadRecord reads one exported record.
func ReadRecord(dir, id string) (*entity.ProjectRecord, error) {
	data, err := os.ReadFile(filepath.Join(dir, projectsDir, id+".json"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s not exported in %s", entity.ErrNotFound, id, dir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read exported project %s: %w", id, err)
	}
	var record entity.ProjectRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode exported project %s: %w", id, err)
	}
	return &record, nil
}

// ReadAll reads every record listed in the index, in index order.
func ReadAll(dir string) ([]*entity.ProjectRecord, error) {
	index, err := ReadIndex(dir)
	if err != nil {
		return nil, err
	}
	records := make([]*entity.ProjectRecord, 0, len(index.Projects))
	for _, p := range index.Projects {
		record, err := ReadRecord(dir, p.ID)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
