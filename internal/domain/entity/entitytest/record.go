// Package entitytest provides complete project records for tests.
package entitytest

import "github.com/orb3-protocol/l2beat/internal/domain/entity"

func entry(value string, sentiment entity.Sentiment) entity.RiskViewEntry {
	return entity.RiskViewEntry{
		Value:       value,
		Description: value + " description.",
		Sentiment:   sentiment,
		Sources:     []entity.Reference{},
	}
}

func section(name string) entity.TechnologySection {
	return entity.TechnologySection{
		Name:        name,
		Description: name + " description.",
		Risks:       []entity.Risk{{Category: "Funds can be stolen if", Text: "the operator misbehaves."}},
		References:  []entity.Reference{{Label: "Docs", URL: "https://docs.example.org/" + name}},
	}
}

// Criteria returns stage criteria that classify as Stage 1.
func Criteria() entity.StageCriteria {
	yes, no := entity.CriterionSatisfied, entity.CriterionViolated
	return entity.StageCriteria{
		Stage0: entity.Stage0Criteria{
			CallsItselfRollup:         yes,
			StateRootsPostedToL1:      yes,
			DataAvailabilityOnL1:      yes,
			RollupNodeSourceAvailable: yes,
		},
		Stage1: entity.Stage1Criteria{
			StateVerificationOnL1:             yes,
			FraudProofSystemAtLeast5Outsiders: yes,
			UsersHave7DaysToExit:              yes,
			UsersCanExitWithoutCooperation:    yes,
			SecurityCouncilProperlySetUp:      yes,
		},
		Stage2: entity.Stage2Criteria{
			ProofSystemOverriddenOnlyInCaseOfABug: no,
			FraudProofSystemIsPermissionless:      no,
			DelayWith30DExitWindow:                no,
		},
	}
}

// Record returns a complete record that passes validation. The stage result
// is left for the caller to compute.
func Record(id, name string) *entity.ProjectRecord {
	return &entity.ProjectRecord{
		ID: id,
		Display: entity.Display{
			Name:        name,
			Slug:        id,
			Description: name + " is an Optimistic Rollup.",
			Purposes:    []string{"Universal"},
			Category:    entity.CategoryOptimisticRollup,
			Links: entity.Links{
				Websites:      []string{"https://" + id + ".example.org"},
				Apps:          []string{},
				Documentation: []string{},
				Explorers:     []string{},
				Repositories:  []string{},
				SocialMedia:   []string{},
			},
		},
		Config: entity.ProjectConfig{
			Chain: entity.ChainConfig{ChainID: 7777, Name: id, NativeSymbol: "ETH", RPCURL: "https://rpc." + id + ".example.org"},
			Escrows: []entity.EscrowConfig{{
				Address:        entity.MustParseAddress("0x5555555555555555555555555555555555555555"),
				SinceTimestamp: 1686068903,
				Tokens:         entity.AllTokens(),
				Description:    "Main bridge.",
				UpgradableBy:   []string{"ProxyAdminOwner"},
			}},
			TransactionAPI: entity.TransactionAPI{Type: "rpc", DefaultURL: "https://rpc." + id + ".example.org", DefaultCallsPerMinute: 1500, StartBlock: 1},
		},
		RiskView: entity.RiskView{
			StateValidation:  entry("Fraud proofs", entity.SentimentGood),
			DataAvailability: entry("Onchain", entity.SentimentGood),
			ExitWindow:       entry("7d", entity.SentimentWarning),
			SequencerFailure: entry("Self sequence", entity.SentimentGood),
			ProposerFailure:  entry("Self propose", entity.SentimentGood),
			DestinationToken: entry("Native & canonical", entity.SentimentGood),
			ValidatedBy:      entry("Ethereum", entity.SentimentGood),
		},
		Stage: entity.StageClassification{
			Criteria: Criteria(),
			StageResult: entity.StageResult{
				Stage:   entity.Stage1,
				Tier:    1,
				Summary: []entity.StageSummary{{Stage: entity.Stage0, Requirements: []entity.StageRequirement{}}, {Stage: entity.Stage1, Requirements: []entity.StageRequirement{}}, {Stage: entity.Stage2, Requirements: []entity.StageRequirement{}}},
			},
		},
		Technology: entity.Technology{
			StateCorrectness:  section("stateCorrectness"),
			DataAvailability:  section("dataAvailability"),
			Operator:          section("operator"),
			ForceTransactions: section("forceTransactions"),
			ExitMechanisms:    []entity.TechnologySection{section("regularExit")},
			SmartContracts:    section("smartContracts"),
		},
		Permissions: []entity.PermissionEntry{{
			Name:        "Sequencer",
			Accounts:    []entity.PermissionAccount{{Address: entity.MustParseAddress("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"), Type: entity.AccountEOA}},
			Description: "Central actor allowed to commit L2 transactions to L1.",
			References:  []entity.Reference{},
		}},
		Contracts: entity.Contracts{
			Addresses: []entity.ContractDetails{{
				Name:         "L2OutputOracle",
				Address:      entity.MustParseAddress("0x1111111111111111111111111111111111111111"),
				Description:  "Oracle.",
				UpgradableBy: []string{},
				References:   []entity.Reference{},
			}},
			Risks: []entity.Risk{},
		},
		Milestones: []entity.Milestone{
			{Name: "Mainnet launch", Date: "2023-06-06T00:00:00Z", Link: "https://" + id + ".example.org/launch", Description: "Public launch."},
			{Name: "Fault proofs", Date: "2024-06-10T00:00:00Z", Link: "https://" + id + ".example.org/proofs", Description: "Permissionless proofs."},
		},
		KnowledgeNuggets: []entity.KnowledgeNugget{},
	}
}
