package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/orb3-protocol/l2beat/internal/app/port"
	"github.com/orb3-protocol/l2beat/internal/app/projects"
	"github.com/orb3-protocol/l2beat/internal/domain/entity"
)

type RecordBuilderSuite struct {
	suite.Suite
	builder port.RecordBuilder
}

func (s *RecordBuilderSuite) SetupTest() {
	s.builder = newTestBuilder(s.T())
}

func TestRecordBuilderSuite(t *testing.T) {
	suite.Run(t, new(RecordBuilderSuite))
}

func (s *RecordBuilderSuite) TestBuildLumen() {
	record, err := s.builder.Build(projects.Lumen(), loadSnapshot(s.T(), "lumen"))
	s.Require().NoError(err)

	s.Equal("lumen", record.ID)
	s.Equal(entity.CategoryOptimisticRollup, record.Display.Category)

	exit := record.RiskView.ExitWindow
	s.Equal("None", exit.Value)
	s.Equal(entity.SentimentBad, exit.Sentiment)
	s.Require().NotNil(exit.ExitWindow)
	s.Equal(entity.ExitWindowParams{UpgradeDelaySeconds: 0, ExitDelaySeconds: 604800}, *exit.ExitWindow)

	s.Equal(entity.Stage0, record.Stage.Stage)
	s.Equal(0, record.Stage.Tier)
	s.Require().NotNil(record.Stage.Missing)
	s.Equal(entity.Stage1, record.Stage.Missing.NextStage)

	s.Require().Len(record.Config.Escrows, 2)
	s.True(record.Config.Escrows[1].Tokens.All)
	s.Equal([]string{"ProxyAdminOwner", "LumenMultisig"}, record.Config.Escrows[0].UpgradableBy)
}

func (s *RecordBuilderSuite) TestBuildVesper() {
	record, err := s.builder.Build(projects.Vesper(), loadSnapshot(s.T(), "vesper"))
	s.Require().NoError(err)

	s.Equal("30d", record.RiskView.ExitWindow.Value)
	s.Equal(entity.SentimentGood, record.RiskView.ExitWindow.Sentiment)
	s.Equal(entity.Stage1, record.Stage.Stage)
	s.Equal("Vesper mainnet launch", record.Milestones[0].Name)
	s.Len(record.Config.Escrows, 3)
}

func (s *RecordBuilderSuite) TestMissingFinalizationPeriod() {
	snapshot := loadSnapshot(s.T(), "lumen")
	delete(snapshot.Contracts["L2OutputOracle"].Values, "FINALIZATION_PERIOD_SECONDS")

	_, err := s.builder.Build(projects.Lumen(), snapshot)
	s.Require().ErrorIs(err, entity.ErrMissingField)
}

func (s *RecordBuilderSuite) TestOmittedRiskDimension() {
	def := stubDefinition{id: "lumen", mutate: func(r *entity.ProjectRecord) {
		r.RiskView.SequencerFailure = entity.RiskViewEntry{}
	}}
	_, err := s.builder.Build(def, loadSnapshot(s.T(), "lumen"))
	s.Require().ErrorIs(err, entity.ErrSchemaViolation)
}

func (s *RecordBuilderSuite) TestStageIsComputed() {
	def := stubDefinition{id: "lumen", mutate: func(r *entity.ProjectRecord) {
		r.Stage.StageResult = entity.StageResult{Stage: entity.Stage2, Tier: 2}
	}}
	record, err := s.builder.Build(def, loadSnapshot(s.T(), "lumen"))
	s.Require().NoError(err)
	s.Equal(entity.Stage1, record.Stage.Stage)
	s.Len(record.Stage.Summary, 3)
}

func (s *RecordBuilderSuite) TestDefinitionErrors() {
	s.Run("error propagates", func() {
		def := stubDefinition{id: "lumen", err: fmt.Errorf("lookup: %w", entity.ErrUnknownKey)}
		_, err := s.builder.Build(def, loadSnapshot(s.T(), "lumen"))
		s.Require().ErrorIs(err, entity.ErrUnknownKey)
	})

	s.Run("snapshot of another project", func() {
		_, err := s.builder.Build(projects.Vesper(), loadSnapshot(s.T(), "lumen"))
		s.Require().ErrorIs(err, entity.ErrSchemaViolation)
	})

	s.Run("no snapshot", func() {
		_, err := s.builder.Build(projects.Lumen(), nil)
		s.Require().ErrorIs(err, entity.ErrMissingField)
	})

	s.Run("record id differs", func() {
		def := stubDefinition{id: "lumen", mutate: func(r *entity.ProjectRecord) { r.ID = "other" }}
		_, err := s.builder.Build(def, loadSnapshot(s.T(), "lumen"))
		s.Require().ErrorIs(err, entity.ErrSchemaViolation)
	})
}

func (s *RecordBuilderSuite) TestSideEffectFree() {
	snapshot := loadSnapshot(s.T(), "lumen")
	pristine := loadSnapshot(s.T(), "lumen")

	first, err := s.builder.Build(projects.Lumen(), snapshot)
	s.Require().NoError(err)
	second, err := s.builder.Build(projects.Lumen(), snapshot)
	s.Require().NoError(err)

	s.Equal(first, second)
	s.Equal(pristine, snapshot)
}
