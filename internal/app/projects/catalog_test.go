package projects

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orb3-protocol/l2beat/internal/domain/entity"
	"github.com/orb3-protocol/l2beat/internal/infrastructure/classification"
	"github.com/orb3-protocol/l2beat/internal/infrastructure/discovery"
	"github.com/orb3-protocol/l2beat/internal/pkg/logger"
)

func TestSelect(t *testing.T) {
	t.Run("empty selects all", func(t *testing.T) {
		defs, err := Select(nil)
		require.NoError(t, err)
		require.Len(t, defs, len(All()))
	})

	t.Run("keeps requested order", func(t *testing.T) {
		defs, err := Select([]string{"vesper", "lumen"})
		require.NoError(t, err)
		require.Len(t, defs, 2)
		assert.Equal(t, "vesper", defs[0].ID())
		assert.Equal(t, "lumen", defs[1].ID())
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := Select([]string{"lumen", "nope"})
		require.ErrorIs(t, err, entity.ErrNotFound)
	})
}

func TestAllHaveUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, def := range All() {
		require.NotEmpty(t, def.ID())
		require.False(t, seen[def.ID()], "duplicate id %s", def.ID())
		seen[def.ID()] = true
	}
}

func TestDefinitionsAgainstDiscovery(t *testing.T) {
	log := logger.NewNopAdapter()
	source := discovery.NewFileSource("../../../data/discovery", log)
	tables := classification.NewTables(log)

	for _, def := range All() {
		t.Run(def.ID(), func(t *testing.T) {
			snapshot, err := source.Load(context.Background(), def.ID())
			require.NoError(t, err)

			record, err := def.Define(discovery.NewAccessor(snapshot, log), tables)
			require.NoError(t, err)
			assert.Equal(t, def.ID(), record.ID)
			assert.NotEmpty(t, record.Config.Escrows)
			assert.NotEmpty(t, record.Contracts.Addresses)
			assert.NotEmpty(t, record.Permissions)
			assert.False(t, record.RiskView.ExitWindow.IsZero())
		})
	}
}

func TestFinalizationPeriodOutOfRange(t *testing.T) {
	log := logger.NewNopAdapter()
	snapshot, err := discovery.NewFileSource("../../../data/discovery", log).Load(context.Background(), "lumen")
	require.NoError(t, err)
	snapshot.Contracts["L2OutputOracle"].Values["FINALIZATION_PERIOD_SECONDS"] = uint64(math.MaxInt64) + 1

	_, err = Lumen().Define(discovery.NewAccessor(snapshot, log), classification.NewTables(log))
	require.ErrorIs(t, err, entity.ErrSchemaViolation)
}

func TestSortMilestones(t *testing.T) {
	in := []entity.Milestone{
		{Name: "b", Date: "2024-03-01T00:00:00Z"},
		{Name: "bad", Date: "soon"},
		{Name: "a", Date: "2023-01-01T00:00:00Z"},
	}
	out := sortMilestones(in)

	require.Len(t, out, 3)
	assert.Equal(t, "a", out[0].Name)
	assert.Equal(t, "b", out[1].Name)
	assert.Equal(t, "bad", out[2].Name)
	assert.Equal(t, "b", in[0].Name, "input is not reordered")
	assert.NotNil(t, sortMilestones(nil))
}
