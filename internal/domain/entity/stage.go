package entity

import (
	"bytes"
	"fmt"
)

// Criterion is the three-valued outcome of a single stage requirement.
// The zero value is CriterionUnset and never counts as passing.
type Criterion int8

const (
	CriterionUnset Criterion = iota
	CriterionSatisfied
	CriterionViolated
	CriterionNotApplicable
)

// Bool converts a plain boolean into Satisfied or Violated.
func Bool(ok bool) Criterion {
	if ok {
		return CriterionSatisfied
	}
	return CriterionViolated
}

// String returns a human readable name.
func (c Criterion) String() string {
	switch c {
	case CriterionSatisfied:
		return "satisfied"
	case CriterionViolated:
		return "violated"
	case CriterionNotApplicable:
		return "not-applicable"
	default:
		return "unset"
	}
}

// MarshalJSON encodes Satisfied/Violated/NotApplicable as true/false/null.
func (c Criterion) MarshalJSON() ([]byte, error) {
	switch c {
	case CriterionSatisfied:
		return []byte("true"), nil
	case CriterionViolated:
		return []byte("false"), nil
	case CriterionNotApplicable:
		return []byte("null"), nil
	default:
		return nil, fmt.Errorf("%w: stage criterion is not set", ErrSchemaViolation)
	}
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (c *Criterion) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true":
		*c = CriterionSatisfied
	case "false":
		*c = CriterionViolated
	case "null":
		*c = CriterionNotApplicable
	default:
		return fmt.Errorf("invalid stage criterion %q", data)
	}
	return nil
}

// Stage0Criteria are the requirements for Stage 0.
type Stage0Criteria struct {
	CallsItselfRollup         Criterion `json:"callsItselfRollup"`
	StateRootsPostedToL1      Criterion `json:"stateRootsPostedToL1"`
	DataAvailabilityOnL1      Criterion `json:"dataAvailabilityOnL1"`
	RollupNodeSourceAvailable Criterion `json:"rollupNodeSourceAvailable"`
}

// Stage1Criteria are the requirements for Stage 1.
type Stage1Criteria struct {
	StateVerificationOnL1             Criterion `json:"stateVerificationOnL1"`
	FraudProofSystemAtLeast5Outsiders Criterion `json:"fraudProofSystemAtLeast5Outsiders"`
	UsersHave7DaysToExit              Criterion `json:"usersHave7DaysToExit"`
	UsersCanExitWithoutCooperation    Criterion `json:"usersCanExitWithoutCooperation"`
	SecurityCouncilProperlySetUp      Criterion `json:"securityCouncilProperlySetUp"`
}

// Stage2Criteria are the requirements for Stage 2.
type Stage2Criteria struct {
	ProofSystemOverriddenOnlyInCaseOfABug Criterion `json:"proofSystemOverriddenOnlyInCaseOfABug"`
	FraudProofSystemIsPermissionless      Criterion `json:"fraudProofSystemIsPermissionless"`
	DelayWith30DExitWindow                Criterion `json:"delayWith30DExitWindow"`
}

// StageCriteria is the full three-tier requirement set of a project.
type StageCriteria struct {
	Stage0 Stage0Criteria `json:"stage0"`
	Stage1 Stage1Criteria `json:"stage1"`
	Stage2 Stage2Criteria `json:"stage2"`
}

// StageContext holds links shown next to the classification.
type StageContext struct {
	RollupNodeLink           string `json:"rollupNodeLink,omitempty"`
	SecurityCouncilReference string `json:"securityCouncilReference,omitempty"`
}

// Stage is the name of a maturity stage.
type Stage string

const (
	StageNotApplicable Stage = "NotApplicable"
	Stage0             Stage = "Stage 0"
	Stage1             Stage = "Stage 1"
	Stage2             Stage = "Stage 2"
	StageUnderReview   Stage = "UnderReview"
)

// TierNone is the tier of a project that does not satisfy Stage 0.
const TierNone = -1

// StageRequirement is one evaluated requirement.
type StageRequirement struct {
	Key         string    `json:"key"`
	Description string    `json:"description"`
	Status      Criterion `json:"status"`
}

// StageSummary lists the evaluated requirements of one stage.
type StageSummary struct {
	Stage        Stage              `json:"stage"`
	Requirements []StageRequirement `json:"requirements"`
}

// MissingRequirements lists what blocks promotion to the next stage.
type MissingRequirements struct {
	NextStage    Stage    `json:"nextStage"`
	Requirements []string `json:"requirements"`
}

// StageResult is the output of the stage classifier.
type StageResult struct {
	Stage   Stage                `json:"stage"`
	Tier    int                  `json:"tier"`
	Missing *MissingRequirements `json:"missing,omitempty"`
	Summary []StageSummary       `json:"summary"`
	Message string               `json:"message,omitempty"`
}

// StageClassification is the stage block of a record: declared criteria,
// contextual links and the computed result.
type StageClassification struct {
	Criteria StageCriteria `json:"criteria"`
	Context  StageContext  `json:"context"`
	StageResult
}
