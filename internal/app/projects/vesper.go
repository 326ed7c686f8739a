package projects

import "github.com/orb3-protocol/l2beat/internal/domain/entity"

// Vesper is an OP Stack chain with interactive fraud proofs and a 37 day
// upgrade delay guarded by a Security Council.
func Vesper() *OpStack {
	return NewOpStack(OpStackOptions{
		ID: "vesper",
		Display: entity.Display{
			Name:        "Vesper",
			Description: "Vesper is an Optimistic Rollup on the OP Stack with permissioned interactive fraud proofs.",
			Purposes:    []string{"Universal", "DeFi"},
			Links: entity.Links{
				Websites:      []string{"https://vesper.example.org"},
				Documentation: []string{"https://docs.vesper.example.org"},
				Explorers:     []string{"https://scan.vesper.example.org"},
			},
		},
		Chain: entity.ChainConfig{
			ChainID:      59001,
			Name:         "vesper",
			NativeSymbol: "ETH",
			RPCURL:       "https://rpc.vesper.example.org",
		},
		TransactionAPI: &entity.TransactionAPI{
			Type:                  "explorer",
			DefaultURL:            "https://scan.vesper.example.org/api",
			DefaultCallsPerMinute: 600,
			StartBlock:            1,
		},
		BridgeSince: 1704067200,
		Escrows: []entity.EscrowParams{
			{
				Address:        "0x6a6a6a6a6a6a6a6a6a6a6a6a6a6a6a6a6a6a6a6a",
				SinceTimestamp: 1706745600,
				Tokens:         []string{"USDC"},
				Description:    "Custom gateway for USDC.",
			},
		},
		UpgradeDelaySeconds: 37 * 24 * 60 * 60,
		UpgradableBy:        []string{"VesperSecurityCouncil"},
		ExtraContracts: map[string]entity.ContractMetadata{
			"SuperchainConfig": {Description: "Holds the pause state shared by the system contracts."},
		},
		Roles: map[string]string{
			"ProxyAdminOwner": "",
		},
		Multisigs: []Multisig{
			{Name: "VesperSecurityCouncil", Description: "Can upgrade the system after the delay and act immediately on provable bugs."},
		},
		StateValidation:  "STATE_FP_INT",
		StateCorrectness: "FRAUD_PROOFS_INT",
		ProposerFailure:  "SELF_PROPOSE",
		StageOverrides: func(c *entity.StageCriteria) {
			c.Stage1.StateVerificationOnL1 = entity.CriterionSatisfied
			c.Stage1.FraudProofSystemAtLeast5Outsiders = entity.CriterionSatisfied
			c.Stage1.UsersCanExitWithoutCooperation = entity.CriterionSatisfied
			c.Stage1.SecurityCouncilProperlySetUp = entity.CriterionSatisfied
		},
		StageContext: entity.StageContext{
			SecurityCouncilReference: "https://docs.vesper.example.org/security-council",
		},
		Milestones: []entity.Milestone{
			{
				Name:        "Permissioned fraud proofs",
				Date:        "2024-09-01T00:00:00Z",
				Link:        "https://vesper.example.org/blog/proofs",
				Description: "Fraud proofs go live with a whitelisted challenger set.",
			},
			{
				Name:        "Vesper mainnet launch",
				Date:        "2024-01-01T00:00:00Z",
				Link:        "https://vesper.example.org/blog/mainnet",
				Description: "Vesper mainnet opens to the public.",
			},
		},
	})
}
