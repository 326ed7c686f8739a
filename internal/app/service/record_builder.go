package service

import (
	"fmt"

	"github.com/orb3-protocol/l2beat/internal/app/port"
	"github.com/orb3-protocol/l2beat/internal/domain/entity"
	"github.com/orb3-protocol/l2beat/internal/domain/stage"
)

// RecordBuilderImpl implements port.RecordBuilder.
type RecordBuilderImpl struct {
	tables      port.ClassificationTables
	validator   port.RecordValidator
	newAccessor port.AccessorFactory
	logger      port.Logger
}

// NewRecordBuilder creates a new instance of RecordBuilderImpl.
func NewRecordBuilder(
	tables port.ClassificationTables,
	validator port.RecordValidator,
	newAccessor port.AccessorFactory,
	l port.Logger,
) port.RecordBuilder {
	return &RecordBuilderImpl{
		tables:      tables,
		validator:   validator,
		newAccessor: newAccessor,
		logger:      l,
	}
}

// Build composes def against snapshot, computes the stage and validates the
// result. The snapshot is only read.
func (b *RecordBuilderImpl) Build(def port.ProjectDefinition, snapshot *entity.DiscoverySnapshot) (*entity.ProjectRecord, error) {
	id := def.ID()
	if snapshot == nil {
		return nil, fmt.Errorf("%w: no discovery snapshot for %s", entity.ErrMissingField, id)
	}
	if snapshot.Project != id {
		return nil, fmt.Errorf("%w: snapshot of %s used to build %s", entity.ErrSchemaViolation, snapshot.Project, id)
	}

	record, err := def.Define(b.newAccessor(snapshot), b.tables)
	if err != nil {
		return nil, fmt.Errorf("failed to define project %s: %w", id, err)
	}
	if record == nil {
		return nil, fmt.Errorf("%w: definition of %s returned no record", entity.ErrSchemaViolation, id)
	}
	if record.ID != id {
		return nil, fmt.Errorf("%w: definition %s produced record %q", entity.ErrSchemaViolation, id, record.ID)
	}

	record.Stage.StageResult = stage.GetStage(record.Stage.Criteria, record.Stage.Context)
	b.logger.Debug("Stage computed", "project", id, "stage", record.Stage.Stage)

	if err := b.validator.Validate(record); err != nil {
		return nil, fmt.Errorf("failed to validate project %s: %w", id, err)
	}
	return record, nil
}
