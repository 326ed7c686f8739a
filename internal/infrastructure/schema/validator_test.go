package schema

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/orb3-protocol/l2beat/internal/domain/entity"
	"github.com/orb3-protocol/l2beat/internal/domain/entity/entitytest"
	"github.com/orb3-protocol/l2beat/internal/pkg/logger"
)

type ValidatorSuite struct {
	suite.Suite
	validator *Validator
	record    *entity.ProjectRecord
}

func (s *ValidatorSuite) SetupTest() {
	v, err := NewValidator(logger.NewNopAdapter())
	s.Require().NoError(err)
	s.validator = v
	s.record = entitytest.Record("lumen", "Lumen")
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorSuite))
}

func (s *ValidatorSuite) TestValidRecord() {
	s.Require().NoError(s.validator.Validate(s.record))
}

func (s *ValidatorSuite) TestNilRecord() {
	s.Require().ErrorIs(s.validator.Validate(nil), entity.ErrSchemaViolation)
}

func (s *ValidatorSuite) TestViolations() {
	cases := []struct {
		name   string
		mutate func(r *entity.ProjectRecord)
		want   string
	}{
		{"omitted risk dimension", func(r *entity.ProjectRecord) { r.RiskView.ProposerFailure = entity.RiskViewEntry{} }, "riskView.proposerFailure"},
		{"unset criterion", func(r *entity.ProjectRecord) { r.Stage.Criteria.Stage2.DelayWith30DExitWindow = entity.CriterionUnset }, "stage2.delayWith30DExitWindow"},
		{"empty tokens", func(r *entity.ProjectRecord) { r.Config.Escrows[0].Tokens = entity.Tokens() }, "tokens"},
		{"lowercase address", func(r *entity.ProjectRecord) {
			r.Contracts.Addresses[0].Address = "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd"
		}, "checksummed"},
		{"empty reference url", func(r *entity.ProjectRecord) {
			r.Technology.Operator.References = []entity.Reference{{Label: "Docs"}}
		}, "technology.operator.references[0]"},
		{"unordered milestones", func(r *entity.ProjectRecord) {
			r.Milestones[0], r.Milestones[1] = r.Milestones[1], r.Milestones[0]
		}, "chronological"},
		{"bad milestone date", func(r *entity.ProjectRecord) { r.Milestones[0].Date = "June 2023" }, "RFC3339"},
		{"unknown category", func(r *entity.ProjectRecord) { r.Display.Category = "Sidechain-ish" }, ""},
		{"no exit mechanisms", func(r *entity.ProjectRecord) { r.Technology.ExitMechanisms = []entity.TechnologySection{} }, ""},
		{"no permission accounts", func(r *entity.ProjectRecord) { r.Permissions[0].Accounts = []entity.PermissionAccount{} }, ""},
		{"escrow before genesis", func(r *entity.ProjectRecord) { r.Config.Escrows[0].SinceTimestamp = 100 }, ""},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			r := entitytest.Record("lumen", "Lumen")
			tc.mutate(r)
			err := s.validator.Validate(r)
			s.Require().ErrorIs(err, entity.ErrSchemaViolation)
			if tc.want != "" {
				s.Contains(err.Error(), tc.want)
			}
		})
	}
}

func (s *ValidatorSuite) TestReportsEveryProblem() {
	s.record.RiskView.ExitWindow = entity.RiskViewEntry{}
	s.record.RiskView.ValidatedBy = entity.RiskViewEntry{}

	err := s.validator.Validate(s.record)
	s.Require().ErrorIs(err, entity.ErrSchemaViolation)
	s.Contains(err.Error(), "riskView.exitWindow")
	s.Contains(err.Error(), "riskView.validatedBy")
}

func (s *ValidatorSuite) TestSchemaDocument() {
	s.Contains(Schema(), `"$id": "`+recordSchemaURL+`"`)
}
