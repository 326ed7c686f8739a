package classification

import "github.com/orb3-protocol/l2beat/internal/domain/entity"

// Table categories.
const (
	CategoryStateValidation            = "stateValidation"
	CategoryDataAvailability           = "dataAvailability"
	CategorySequencerFailure           = "sequencerFailure"
	CategoryProposerFailure            = "proposerFailure"
	CategoryDestinationToken           = "destinationToken"
	CategoryValidatedBy                = "validatedBy"
	CategoryStateCorrectness           = "stateCorrectness"
	CategoryTechnologyDataAvailability = "technologyDataAvailability"
	CategoryOperator                   = "operator"
	CategoryForceTransactions          = "forceTransactions"
	CategoryExits                      = "exits"
	CategorySmartContracts             = "smartContracts"
	CategoryRisks                      = "risks"
)

var ( //nolint:gochecknoglobals // Built-in vocabulary
	fundsStolen = "Funds can be stolen if"
	fundsFrozen = "Funds can be frozen if"
	usersCensor = "Users can be censored if"
	mevRisk     = "MEV can be extracted if"

	opStackDocs = entity.Reference{Label: "OP Stack specification", URL: "https://specs.optimism.io/"}

	defaultTables = map[string]map[string]entity.ClassificationEntry{
		CategoryStateValidation: {
			"STATE_NONE": {
				Label:       "None",
				Description: "Currently the system permits invalid state roots. More details in project overview.",
				Sentiment:   entity.SentimentBad,
			},
			"STATE_FP_INT": {
				Label:       "Fraud proofs (INT)",
				Description: "Fraud proofs allow actors watching the chain to prove that the state is incorrect. Interactive proofs (INT) require multiple transactions over time to resolve.",
				Sentiment:   entity.SentimentGood,
			},
			"STATE_ZKP_SN": {
				Label:       "ZK proofs (SN)",
				Description: "SNARKs are zero knowledge proofs that ensure state correctness, but require trusted setup.",
				Sentiment:   entity.SentimentGood,
			},
		},
		CategoryDataAvailability: {
			"DATA_ON_CHAIN": {
				Label:       "Onchain",
				Description: "All of the data needed for proof construction is published on Ethereum L1.",
				Sentiment:   entity.SentimentGood,
			},
			"DATA_EXTERNAL": {
				Label:       "External",
				Description: "Proof construction relies fully on data that is NOT published on chain.",
				Sentiment:   entity.SentimentBad,
			},
		},
		CategorySequencerFailure: {
			"SELF_SEQUENCE": {
				Label:       "Self sequence",
				Description: "In the event of a sequencer failure, users can force transactions to be included in the project's chain by sending them to L1. There can be up to a 12h delay on this operation.",
				Sentiment:   entity.SentimentGood,
			},
			"NO_MECHANISM": {
				Label:       "No mechanism",
				Description: "There is no mechanism to have transactions be included if the sequencer is down or censoring.",
				Sentiment:   entity.SentimentBad,
			},
		},
		CategoryProposerFailure: {
			"CANNOT_WITHDRAW": {
				Label:       "Cannot withdraw",
				Description: "Only the whitelisted proposers can publish state roots on L1, so in the event of failure the withdrawals are frozen.",
				Sentiment:   entity.SentimentBad,
			},
			"SELF_PROPOSE": {
				Label:       "Self propose",
				Description: "Anyone can become a proposer after a delay if the whitelisted proposers fail to act.",
				Sentiment:   entity.SentimentGood,
			},
		},
		CategoryDestinationToken: {
			"NATIVE_AND_CANONICAL": {
				Label:       "Native & Canonical",
				Description: "ETH transferred via this bridge ends up as native ETH on the destination chain. Tokens transferred end up as canonical tokens minted by the bridge.",
				Sentiment:   entity.SentimentGood,
			},
			"CANONICAL": {
				Label:       "Canonical",
				Description: "Tokens transferred end up as canonical tokens minted by the bridge.",
				Sentiment:   entity.SentimentGood,
			},
		},
		CategoryValidatedBy: {
			"ETHEREUM": {
				Label:       "Ethereum",
				Description: "Smart contract on Ethereum validates all bridge transfers.",
				Sentiment:   entity.SentimentGood,
			},
		},
		CategoryStateCorrectness: {
			"NO_FRAUD_PROOFS": {
				Label:       "Fraud proofs are not enabled",
				Description: "State roots are proposed by a whitelisted actor and accepted after the finalization period. There is no mechanism to challenge an invalid state root.",
				Risks: []entity.Risk{
					{Category: fundsStolen, Text: "an invalid state root is submitted to the system.", IsCritical: true},
				},
				References: []entity.Reference{opStackDocs},
			},
			"FRAUD_PROOFS_INT": {
				Label:       "Fraud proofs ensure state correctness",
				Description: "After a state root is proposed it can be challenged with an interactive fraud proof during the challenge period.",
				Risks: []entity.Risk{
					{Category: fundsStolen, Text: "none of the validators challenges an invalid state root."},
				},
			},
		},
		CategoryTechnologyDataAvailability: {
			"ON_CHAIN_CALLDATA": {
				Label:       "All data required for proofs is published on chain",
				Description: "All the data that is used to construct the system state is published on chain in the form of cheap calldata or blobs. This ensures that it will be available for enough time.",
				References:  []entity.Reference{opStackDocs},
			},
		},
		CategoryOperator: {
			"CENTRALIZED_OPERATOR": {
				Label:       "The system has a centralized sequencer",
				Description: "While proposing state roots is a permissioned activity, the ordering of transactions is done by a single centralized sequencer.",
				Risks: []entity.Risk{
					{Category: mevRisk, Text: "the operator exploits their centralized position and frontruns user transactions."},
				},
			},
		},
		CategoryForceTransactions: {
			"CANONICAL_ORDERING": {
				Label:       "Users can force any transaction",
				Description: "Because the state of the system is based on transactions submitted on the underlying host chain, anyone can force a transaction by submitting it directly on L1.",
				Risks: []entity.Risk{
					{Category: usersCensor, Text: "the sequencer withholds transactions for up to the sequencing window."},
				},
			},
		},
		CategoryExits: {
			"REGULAR_OPTIMISTIC": {
				Label:       "Regular exit",
				Description: "The user initiates the withdrawal by submitting a regular transaction on this chain. When the block containing that transaction is finalized the funds become available for withdrawal on L1. Finally the user submits an L1 transaction to claim the funds. This transaction requires a merkle proof.",
				Risks: []entity.Risk{
					{Category: fundsFrozen, Text: "the operator censors withdrawal transaction."},
				},
			},
			"FORCED": {
				Label:       "Forced exit",
				Description: "If the user's withdrawal request is censored they can submit it directly on L1, after which it follows the regular exit path.",
			},
		},
		CategorySmartContracts: {
			"EVM_COMPATIBLE": {
				Label:       "EVM compatible smart contracts are supported",
				Description: "The chain is EVM compatible and existing Ethereum tooling and contracts can be deployed without changes.",
			},
		},
		CategoryRisks: {
			"UPGRADE_NO_DELAY": {
				Label: "Instant upgrades",
				Risks: []entity.Risk{
					{Category: fundsStolen, Text: "a contract receives a malicious code upgrade. There is no delay on code upgrades.", IsCritical: true},
				},
			},
			"UPGRADE_WITH_DELAY": {
				Label: "Delayed upgrades",
				Risks: []entity.Risk{
					{Category: fundsStolen, Text: "a contract receives a malicious code upgrade and users do not exit within the upgrade delay."},
				},
			},
		},
	}
)
