package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orb3-protocol/l2beat/internal/app/port"
	"github.com/orb3-protocol/l2beat/internal/domain/entity"
	"github.com/orb3-protocol/l2beat/internal/domain/entity/entitytest"
	"github.com/orb3-protocol/l2beat/internal/infrastructure/classification"
	"github.com/orb3-protocol/l2beat/internal/infrastructure/discovery"
	"github.com/orb3-protocol/l2beat/internal/infrastructure/schema"
	"github.com/orb3-protocol/l2beat/internal/pkg/logger"
)

const discoveryDir = "../../../data/discovery"

func loadSnapshot(t *testing.T, id string) *entity.DiscoverySnapshot {
	t.Helper()
	snapshot, err := discovery.NewFileSource(discoveryDir, logger.NewNopAdapter()).Load(context.Background(), id)
	require.NoError(t, err)
	return snapshot
}

func newTestBuilder(t *testing.T) port.RecordBuilder {
	t.Helper()
	log := logger.NewNopAdapter()
	validator, err := schema.NewValidator(log)
	require.NoError(t, err)
	return NewRecordBuilder(
		classification.NewTables(log),
		validator,
		func(s *entity.DiscoverySnapshot) port.DiscoveryAccessor { return discovery.NewAccessor(s, log) },
		log,
	)
}

// stubDefinition returns a copy of a fixed record, optionally mutated.
type stubDefinition struct {
	id     string
	mutate func(r *entity.ProjectRecord)
	err    error
}

func (d stubDefinition) ID() string { return d.id }

func (d stubDefinition) Define(port.DiscoveryAccessor, port.ClassificationTables) (*entity.ProjectRecord, error) {
	if d.err != nil {
		return nil, d.err
	}
	r := entitytest.Record(d.id, "Stub "+d.id)
	if d.mutate != nil {
		d.mutate(r)
	}
	return r, nil
}
