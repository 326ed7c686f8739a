// Package stage classifies projects into maturity stages.
//
// Every requirement takes one of three values. The rule table below decides
// how each value affects promotion:
//
//	Satisfied      passes.
//	Violated       fails; the project stays at the previous stage.
//	NotApplicable  passes, unless the requirement is marked certainty-critical
//	               and belongs to Stage 1 or Stage 2. In that case the
//	               project is reported as UnderReview, keeping the tier it
//	               already proved.
//	Unset          fails, same as Violated.
//
// A project reaches Stage N only if every requirement of Stage 0..N passes.
package stage

import (
	"fmt"
	"strings"

	"github.com/orb3-protocol/l2beat/internal/domain/entity"
)

type requirement struct {
	tier        int
	key         string
	description string
	// certain requirements cannot be skipped with NotApplicable above Stage 0.
	certain bool
	get     func(entity.StageCriteria) entity.Criterion
}

var stages = []entity.Stage{entity.Stage0, entity.Stage1, entity.Stage2}

var requirements = []requirement{
	{0, "callsItselfRollup", "The project calls itself a rollup.", false,
		func(c entity.StageCriteria) entity.Criterion { return c.Stage0.CallsItselfRollup }},
	{0, "stateRootsPostedToL1", "L2 state roots are posted to Ethereum L1.", false,
		func(c entity.StageCriteria) entity.Criterion { return c.Stage0.StateRootsPostedToL1 }},
	{0, "dataAvailabilityOnL1", "Inputs for the state transition function are posted to L1.", false,
		func(c entity.StageCriteria) entity.Criterion { return c.Stage0.DataAvailabilityOnL1 }},
	{0, "rollupNodeSourceAvailable", "A source-available node exists that can recreate the state from L1 data.", false,
		func(c entity.StageCriteria) entity.Criterion { return c.Stage0.RollupNodeSourceAvailable }},

	{1, "stateVerificationOnL1", "A complete and functional proof system is deployed.", true,
		func(c entity.StageCriteria) entity.Criterion { return c.Stage1.StateVerificationOnL1 }},
	{1, "fraudProofSystemAtLeast5Outsiders", "Fraud proof submission is open to at least 5 outside actors.", false,
		func(c entity.StageCriteria) entity.Criterion { return c.Stage1.FraudProofSystemAtLeast5Outsiders }},
	{1, "usersHave7DaysToExit", "Users have at least 7d to exit in case of unwanted upgrades (excluding Security Council and enforced on L1).", true,
		func(c entity.StageCriteria) entity.Criterion { return c.Stage1.UsersHave7DaysToExit }},
	{1, "usersCanExitWithoutCooperation", "Users are able to exit without the help of the permissioned operators.", true,
		func(c entity.StageCriteria) entity.Criterion { return c.Stage1.UsersCanExitWithoutCooperation }},
	{1, "securityCouncilProperlySetUp", "The Security Council is properly set up.", false,
		func(c entity.StageCriteria) entity.Criterion { return c.Stage1.SecurityCouncilProperlySetUp }},

	{2, "proofSystemOverriddenOnlyInCaseOfABug", "The Security Council's actions are restricted to onchain provable bugs.", false,
		func(c entity.StageCriteria) entity.Criterion { return c.Stage2.ProofSystemOverriddenOnlyInCaseOfABug }},
	{2, "fraudProofSystemIsPermissionless", "Fraud proof submission is open to everyone.", false,
		func(c entity.StageCriteria) entity.Criterion { return c.Stage2.FraudProofSystemIsPermissionless }},
	{2, "delayWith30DExitWindow", "Upgrades unrelated to onchain provable bugs provide at least 30d to exit.", true,
		func(c entity.StageCriteria) entity.Criterion { return c.Stage2.DelayWith30DExitWindow }},
}

// Keys returns the requirement keys of the given tier in evaluation order.
func Keys(tier int) []string {
	var keys []string
	for _, r := range requirements {
		if r.tier == tier {
			keys = append(keys, r.key)
		}
	}
	return keys
}

// Unset returns the keys of requirements that were never assigned a value.
func Unset(criteria entity.StageCriteria) []string {
	var keys []string
	for _, r := range requirements {
		if r.get(criteria) == entity.CriterionUnset {
			keys = append(keys, fmt.Sprintf("stage%d.%s", r.tier, r.key))
		}
	}
	return keys
}

// GetStage evaluates criteria against the rule table. It has no side effects
// and returns identical results for identical inputs.
func GetStage(criteria entity.StageCriteria, ctx entity.StageContext) entity.StageResult {
	summary := make([]entity.StageSummary, len(stages))
	for i, s := range stages {
		summary[i] = entity.StageSummary{Stage: s, Requirements: []entity.StageRequirement{}}
	}
	for _, r := range requirements {
		status := r.get(criteria)
		if status == entity.CriterionUnset {
			status = entity.CriterionViolated
		}
		summary[r.tier].Requirements = append(summary[r.tier].Requirements, entity.StageRequirement{
			Key:         r.key,
			Description: describe(r, ctx),
			Status:      status,
		})
	}

	result := entity.StageResult{Stage: entity.StageNotApplicable, Tier: entity.TierNone, Summary: summary}
	for tier := range stages {
		var failed, uncertain []string
		for _, req := range summary[tier].Requirements {
			switch {
			case req.Status == entity.CriterionViolated:
				failed = append(failed, req.Description)
			case req.Status == entity.CriterionNotApplicable && tier > 0 && isCertain(req.Key):
				uncertain = append(uncertain, req.Description)
			}
		}
		if len(failed) > 0 {
			result.Missing = &entity.MissingRequirements{NextStage: stages[tier], Requirements: failed}
			break
		}
		if len(uncertain) > 0 {
			result.Stage = entity.StageUnderReview
			result.Missing = &entity.MissingRequirements{NextStage: stages[tier], Requirements: uncertain}
			result.Message = fmt.Sprintf("%s requirements could not be verified: %s",
				stages[tier], strings.Join(uncertain, " "))
			return result
		}
		result.Tier = tier
		result.Stage = stages[tier]
	}
	return result
}

func isCertain(key string) bool {
	for _, r := range requirements {
		if r.key == key {
			return r.certain
		}
	}
	return false
}

func describe(r requirement, ctx entity.StageContext) string {
	switch {
	case r.key == "rollupNodeSourceAvailable" && ctx.RollupNodeLink != "":
		return fmt.Sprintf("%s Node: %s", r.description, ctx.RollupNodeLink)
	case r.key == "securityCouncilProperlySetUp" && ctx.SecurityCouncilReference != "":
		return fmt.Sprintf("%s See: %s", r.description, ctx.SecurityCouncilReference)
	default:
		return r.description
	}
}
