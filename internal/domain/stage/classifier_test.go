package stage

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/suite"

	"github.com/orb3-protocol/l2beat/internal/domain/entity"
)

const (
	yes = entity.CriterionSatisfied
	no  = entity.CriterionViolated
	na  = entity.CriterionNotApplicable
)

type ClassifierSuite struct {
	suite.Suite
}

func TestClassifierSuite(t *testing.T) {
	suite.Run(t, new(ClassifierSuite))
}

func allSatisfied() entity.StageCriteria {
	return entity.StageCriteria{
		Stage0: entity.Stage0Criteria{CallsItselfRollup: yes, StateRootsPostedToL1: yes, DataAvailabilityOnL1: yes, RollupNodeSourceAvailable: yes},
		Stage1: entity.Stage1Criteria{StateVerificationOnL1: yes, FraudProofSystemAtLeast5Outsiders: yes, UsersHave7DaysToExit: yes, UsersCanExitWithoutCooperation: yes, SecurityCouncilProperlySetUp: yes},
		Stage2: entity.Stage2Criteria{ProofSystemOverriddenOnlyInCaseOfABug: yes, FraudProofSystemIsPermissionless: yes, DelayWith30DExitWindow: yes},
	}
}

// fromValues maps twelve values onto the criteria fields in rule table order.
func fromValues(v []entity.Criterion) entity.StageCriteria {
	return entity.StageCriteria{
		Stage0: entity.Stage0Criteria{CallsItselfRollup: v[0], StateRootsPostedToL1: v[1], DataAvailabilityOnL1: v[2], RollupNodeSourceAvailable: v[3]},
		Stage1: entity.Stage1Criteria{StateVerificationOnL1: v[4], FraudProofSystemAtLeast5Outsiders: v[5], UsersHave7DaysToExit: v[6], UsersCanExitWithoutCooperation: v[7], SecurityCouncilProperlySetUp: v[8]},
		Stage2: entity.Stage2Criteria{ProofSystemOverriddenOnlyInCaseOfABug: v[9], FraudProofSystemIsPermissionless: v[10], DelayWith30DExitWindow: v[11]},
	}
}

func (s *ClassifierSuite) TestTiers() {
	s.Run("all requirements satisfied reaches Stage 2", func() {
		res := GetStage(allSatisfied(), entity.StageContext{})
		s.Equal(entity.Stage2, res.Stage)
		s.Equal(2, res.Tier)
		s.Nil(res.Missing)
	})

	s.Run("failing stage 0 yields NotApplicable", func() {
		c := allSatisfied()
		c.Stage0.CallsItselfRollup = no
		res := GetStage(c, entity.StageContext{})
		s.Equal(entity.StageNotApplicable, res.Stage)
		s.Equal(entity.TierNone, res.Tier)
		s.Require().NotNil(res.Missing)
		s.Equal(entity.Stage0, res.Missing.NextStage)
	})

	s.Run("typical OP stack chain is Stage 0", func() {
		c := allSatisfied()
		c.Stage1 = entity.Stage1Criteria{StateVerificationOnL1: no, FraudProofSystemAtLeast5Outsiders: na, UsersHave7DaysToExit: no, UsersCanExitWithoutCooperation: no, SecurityCouncilProperlySetUp: no}
		c.Stage2 = entity.Stage2Criteria{ProofSystemOverriddenOnlyInCaseOfABug: na, FraudProofSystemIsPermissionless: no, DelayWith30DExitWindow: no}
		res := GetStage(c, entity.StageContext{})
		s.Equal(entity.Stage0, res.Stage)
		s.Equal(0, res.Tier)
		s.Require().NotNil(res.Missing)
		s.Equal(entity.Stage1, res.Missing.NextStage)
		s.Len(res.Missing.Requirements, 4)
	})

	s.Run("optional requirement marked not applicable still promotes", func() {
		c := allSatisfied()
		c.Stage1.FraudProofSystemAtLeast5Outsiders = na
		c.Stage2.ProofSystemOverriddenOnlyInCaseOfABug = na
		res := GetStage(c, entity.StageContext{})
		s.Equal(entity.Stage2, res.Stage)
	})

	s.Run("not applicable certainty-critical requirement is under review", func() {
		c := allSatisfied()
		c.Stage1.UsersHave7DaysToExit = na
		res := GetStage(c, entity.StageContext{})
		s.Equal(entity.StageUnderReview, res.Stage)
		s.Equal(0, res.Tier)
		s.NotEmpty(res.Message)
		s.Require().NotNil(res.Missing)
		s.Equal(entity.Stage1, res.Missing.NextStage)
	})

	s.Run("violation outranks uncertainty at the same tier", func() {
		c := allSatisfied()
		c.Stage1.UsersHave7DaysToExit = na
		c.Stage1.StateVerificationOnL1 = no
		res := GetStage(c, entity.StageContext{})
		s.Equal(entity.Stage0, res.Stage)
		s.Empty(res.Message)
	})

	s.Run("unset criteria never pass", func() {
		res := GetStage(entity.StageCriteria{}, entity.StageContext{})
		s.Equal(entity.StageNotApplicable, res.Stage)
		for _, sum := range res.Summary {
			for _, req := range sum.Requirements {
				s.Equal(entity.CriterionViolated, req.Status)
			}
		}
	})
}

func (s *ClassifierSuite) TestSummaryAndContext() {
	res := GetStage(allSatisfied(), entity.StageContext{RollupNodeLink: "https://github.com/ethereum-optimism/optimism"})
	s.Require().Len(res.Summary, 3)
	s.Len(res.Summary[0].Requirements, len(Keys(0)))
	s.Len(res.Summary[1].Requirements, len(Keys(1)))
	s.Len(res.Summary[2].Requirements, len(Keys(2)))
	s.Contains(res.Summary[0].Requirements[3].Description, "https://github.com/ethereum-optimism/optimism")
}

func (s *ClassifierSuite) TestUnset() {
	c := allSatisfied()
	c.Stage2.DelayWith30DExitWindow = entity.CriterionUnset
	s.Equal([]string{"stage2.delayWith30DExitWindow"}, Unset(c))
	s.Empty(Unset(allSatisfied()))
}

func criteriaGen() gopter.Gen {
	return gen.SliceOfN(12, gen.OneConstOf(yes, no, na), reflect.TypeOf(entity.CriterionUnset))
}

func TestGetStageProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("classification is deterministic", prop.ForAll(
		func(v []entity.Criterion) bool {
			c := fromValues(v)
			a := GetStage(c, entity.StageContext{})
			b := GetStage(c, entity.StageContext{})
			return a.Stage == b.Stage && a.Tier == b.Tier && a.Message == b.Message
		},
		criteriaGen(),
	))

	properties.Property("stage 0 and stage 1 satisfied yields tier >= 1", prop.ForAll(
		func(v []entity.Criterion) bool {
			lower := append([]entity.Criterion{}, v...)
			for i := 0; i < 9; i++ {
				lower[i] = yes
			}
			return GetStage(fromValues(lower), entity.StageContext{}).Tier >= 1
		},
		criteriaGen(),
	))

	properties.Property("downgrading a requirement never raises the tier", prop.ForAll(
		func(v []entity.Criterion, idx int) bool {
			if v[idx] != yes {
				return true
			}
			before := GetStage(fromValues(v), entity.StageContext{}).Tier
			downgraded := append([]entity.Criterion{}, v...)
			downgraded[idx] = no
			after := GetStage(fromValues(downgraded), entity.StageContext{}).Tier
			return after <= before
		},
		criteriaGen(),
		gen.IntRange(0, 11),
	))

	properties.TestingRun(t)
}
