package projects

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/orb3-protocol/l2beat/internal/app/port"
	"github.com/orb3-protocol/l2beat/internal/domain/entity"
	"github.com/orb3-protocol/l2beat/internal/infrastructure/classification"
	"github.com/orb3-protocol/l2beat/internal/pkg/utils"
)

const (
	week  = 7 * 24 * 60 * 60
	month = 30 * 24 * 60 * 60

	defaultCallsPerMinute = 1500
	opStackNodeLink       = "https://github.com/ethereum-optimism/optimism/tree/develop/op-node"
)

// Multisig is a discovered Gnosis Safe listed in the permissions section.
type Multisig struct {
	Name        string
	Description string
}

// OpStackOptions are the parts of an OP Stack chain that differ between
// projects. Zero values fall back to the template defaults.
type OpStackOptions struct {
	ID      string
	Display entity.Display
	Chain   entity.ChainConfig
	// TransactionAPI defaults to polling Chain.RPCURL.
	TransactionAPI *entity.TransactionAPI

	// BridgeSince is the deployment time of OptimismPortal and L1StandardBridge.
	BridgeSince int64
	Escrows     []entity.EscrowParams

	UpgradeDelaySeconds int64
	UpgradableBy        []string
	ContractMetadata    entity.ContractMetadata
	ExtraContracts      map[string]entity.ContractMetadata

	// Roles are merged over the standard Sequencer/Proposer/Challenger/Guardian set.
	Roles     map[string]string
	Multisigs []Multisig

	// StateValidation and StateCorrectness select classification keys.
	StateValidation  string
	StateCorrectness string
	ProposerFailure  string

	StageOverrides func(c *entity.StageCriteria)
	StageContext   entity.StageContext

	Milestones       []entity.Milestone
	KnowledgeNuggets []entity.KnowledgeNugget
}

// OpStack is a project definition built from the OP Stack template.
type OpStack struct {
	opts OpStackOptions
}

// NewOpStack creates a new OP Stack project definition.
func NewOpStack(opts OpStackOptions) *OpStack {
	return &OpStack{opts: opts}
}

// ID implements port.ProjectDefinition.
func (p *OpStack) ID() string {
	return p.opts.ID
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func explorerReference(label string, addr entity.Address) entity.Reference {
	return entity.Reference{Label: label, URL: fmt.Sprintf("https://etherscan.io/address/%s#code", addr)}
}

// Define implements port.ProjectDefinition.
func (p *OpStack) Define(d port.DiscoveryAccessor, t port.ClassificationTables) (*entity.ProjectRecord, error) {
	o := p.opts

	finalization, err := d.ContractUint64("L2OutputOracle", "FINALIZATION_PERIOD_SECONDS")
	if err != nil {
		return nil, err
	}
	if finalization > math.MaxInt64 {
		return nil, fmt.Errorf("%w: L2OutputOracle.FINALIZATION_PERIOD_SECONDS %d is out of range",
			entity.ErrSchemaViolation, finalization)
	}
	exitDelay := int64(finalization)
	oracle, err := d.Address("L2OutputOracle")
	if err != nil {
		return nil, err
	}
	portal, err := d.Address("OptimismPortal")
	if err != nil {
		return nil, err
	}
	bridge, err := d.Address("L1StandardBridge")
	if err != nil {
		return nil, err
	}

	riskView, err := p.riskView(t, exitDelay, oracle, portal)
	if err != nil {
		return nil, err
	}
	technology, err := p.technology(t, exitDelay)
	if err != nil {
		return nil, err
	}

	upgradableBy := utils.UniqueStrings(append([]string{"ProxyAdminOwner"}, o.UpgradableBy...))
	upgradeDelay := "No delay"
	if o.UpgradeDelaySeconds > 0 {
		upgradeDelay = utils.FormatSeconds(o.UpgradeDelaySeconds)
	}
	metadata := entity.MergeContractMetadata(
		entity.ContractMetadata{UpgradableBy: upgradableBy, UpgradeDelay: upgradeDelay},
		o.ContractMetadata,
	)

	escrowParams := append([]entity.EscrowParams{
		{
			Address:        portal.String(),
			SinceTimestamp: o.BridgeSince,
			Tokens:         []string{"ETH"},
			Description:    "Main entry point for users depositing ETH.",
			Metadata:       metadata,
		},
		{
			Address:        bridge.String(),
			SinceTimestamp: o.BridgeSince,
			Tokens:         []string{entity.AllTokensWildcard},
			Description:    "Main entry point for users depositing ERC20 token that do not require custom gateway.",
			Metadata:       metadata,
		},
	}, o.Escrows...)
	escrows := make([]entity.EscrowConfig, 0, len(escrowParams))
	for _, params := range escrowParams {
		escrow, err := d.EscrowDetails(params)
		if err != nil {
			return nil, err
		}
		escrows = append(escrows, escrow)
	}

	permissions, err := p.permissions(d)
	if err != nil {
		return nil, err
	}

	contracts, err := d.OpStackContractDetails(metadata)
	if err != nil {
		return nil, err
	}
	for _, name := range utils.SortedKeys(o.ExtraContracts) {
		c, err := d.ContractDetails(name, entity.MergeContractMetadata(metadata, o.ExtraContracts[name]))
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}
	upgradeRisk := "UPGRADE_NO_DELAY"
	if o.UpgradeDelaySeconds > 0 {
		upgradeRisk = "UPGRADE_WITH_DELAY"
	}
	risks, err := t.Lookup(classification.CategoryRisks, upgradeRisk)
	if err != nil {
		return nil, err
	}

	txAPI := entity.TransactionAPI{Type: "rpc", DefaultURL: o.Chain.RPCURL, DefaultCallsPerMinute: defaultCallsPerMinute}
	if o.TransactionAPI != nil {
		txAPI = *o.TransactionAPI
	}

	display := o.Display
	display.Slug = orDefault(display.Slug, o.ID)
	display.Category = orDefault(display.Category, entity.CategoryOptimisticRollup)
	display.Purposes = orEmpty(display.Purposes)
	display.Links = normalizeLinks(display.Links)

	stageCtx := o.StageContext
	stageCtx.RollupNodeLink = orDefault(stageCtx.RollupNodeLink, opStackNodeLink)

	return &entity.ProjectRecord{
		ID:      o.ID,
		Display: display,
		Config: entity.ProjectConfig{
			Chain:          o.Chain,
			Escrows:        escrows,
			TransactionAPI: txAPI,
		},
		RiskView: riskView,
		Stage: entity.StageClassification{
			Criteria: p.criteria(exitDelay),
			Context:  stageCtx,
		},
		Technology:  technology,
		Permissions: permissions,
		Contracts: entity.Contracts{
			Addresses: contracts,
			Risks:     orEmpty(risks.Risks),
		},
		Milestones:       sortMilestones(o.Milestones),
		KnowledgeNuggets: orEmpty(o.KnowledgeNuggets),
	}, nil
}

func (p *OpStack) riskView(t port.ClassificationTables, exitDelay int64, oracle, portal entity.Address) (entity.RiskView, error) {
	lookup := func(category, key string, sources ...entity.Reference) (entity.RiskViewEntry, error) {
		e, err := t.Lookup(category, key)
		if err != nil {
			return entity.RiskViewEntry{}, err
		}
		return e.RiskViewEntry(sources...), nil
	}
	oracleSource := explorerReference("L2OutputOracle.sol", oracle)
	portalSource := explorerReference("OptimismPortal.sol", portal)

	var (
		view entity.RiskView
		err  error
	)
	if view.StateValidation, err = lookup(classification.CategoryStateValidation, orDefault(p.opts.StateValidation, "STATE_NONE"), oracleSource); err != nil {
		return view, err
	}
	if view.DataAvailability, err = lookup(classification.CategoryDataAvailability, "DATA_ON_CHAIN"); err != nil {
		return view, err
	}
	view.ExitWindow = t.ExitWindow(p.opts.UpgradeDelaySeconds, exitDelay)
	if view.SequencerFailure, err = lookup(classification.CategorySequencerFailure, "SELF_SEQUENCE", portalSource); err != nil {
		return view, err
	}
	if view.ProposerFailure, err = lookup(classification.CategoryProposerFailure, orDefault(p.opts.ProposerFailure, "CANNOT_WITHDRAW"), oracleSource); err != nil {
		return view, err
	}
	if view.DestinationToken, err = lookup(classification.CategoryDestinationToken, "NATIVE_AND_CANONICAL"); err != nil {
		return view, err
	}
	if view.ValidatedBy, err = lookup(classification.CategoryValidatedBy, "ETHEREUM"); err != nil {
		return view, err
	}
	return view, nil
}

func (p *OpStack) technology(t port.ClassificationTables, exitDelay int64) (entity.Technology, error) {
	keys := []struct{ category, key string }{
		{classification.CategoryStateCorrectness, orDefault(p.opts.StateCorrectness, "NO_FRAUD_PROOFS")},
		{classification.CategoryTechnologyDataAvailability, "ON_CHAIN_CALLDATA"},
		{classification.CategoryOperator, "CENTRALIZED_OPERATOR"},
		{classification.CategoryForceTransactions, "CANONICAL_ORDERING"},
		{classification.CategoryExits, "REGULAR_OPTIMISTIC"},
		{classification.CategoryExits, "FORCED"},
		{classification.CategorySmartContracts, "EVM_COMPATIBLE"},
	}
	sections := make([]entity.TechnologySection, 0, len(keys))
	for _, k := range keys {
		e, err := t.Lookup(k.category, k.key)
		if err != nil {
			return entity.Technology{}, err
		}
		sections = append(sections, e.Section())
	}

	regular := sections[4]
	regular.Description = fmt.Sprintf("%s The finalization period is %s.", regular.Description, utils.FormatSeconds(exitDelay))

	return entity.Technology{
		StateCorrectness:  sections[0],
		DataAvailability:  sections[1],
		Operator:          sections[2],
		ForceTransactions: sections[3],
		ExitMechanisms:    []entity.TechnologySection{regular, sections[5]},
		SmartContracts:    sections[6],
	}, nil
}

func (p *OpStack) permissions(d port.DiscoveryAccessor) ([]entity.PermissionEntry, error) {
	roles := map[string]string{"Sequencer": "", "Proposer": "", "Challenger": "", "Guardian": ""}
	for name, description := range p.opts.Roles {
		roles[name] = description
	}
	permissions, err := d.OpStackPermissions(roles)
	if err != nil {
		return nil, err
	}
	for _, m := range p.opts.Multisigs {
		entries, err := d.MultisigPermission(m.Name, m.Description)
		if err != nil {
			return nil, err
		}
		permissions = append(permissions, entries...)
	}
	return permissions, nil
}

// criteria derives the OP Stack stage criteria and applies the project overrides.
func (p *OpStack) criteria(exitDelay int64) entity.StageCriteria {
	yes, no, na := entity.CriterionSatisfied, entity.CriterionViolated, entity.CriterionNotApplicable
	window := p.opts.UpgradeDelaySeconds - exitDelay
	c := entity.StageCriteria{
		Stage0: entity.Stage0Criteria{
			CallsItselfRollup:         yes,
			StateRootsPostedToL1:      yes,
			DataAvailabilityOnL1:      yes,
			RollupNodeSourceAvailable: yes,
		},
		Stage1: entity.Stage1Criteria{
			StateVerificationOnL1:             no,
			FraudProofSystemAtLeast5Outsiders: na,
			UsersHave7DaysToExit:              entity.Bool(p.opts.UpgradeDelaySeconds > 0 && window >= week),
			UsersCanExitWithoutCooperation:    no,
			SecurityCouncilProperlySetUp:      na,
		},
		Stage2: entity.Stage2Criteria{
			ProofSystemOverriddenOnlyInCaseOfABug: na,
			FraudProofSystemIsPermissionless:      no,
			DelayWith30DExitWindow:                entity.Bool(p.opts.UpgradeDelaySeconds > 0 && window >= month),
		},
	}
	if p.opts.StageOverrides != nil {
		p.opts.StageOverrides(&c)
	}
	return c
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return slices.Clone(s)
}

func normalizeLinks(l entity.Links) entity.Links {
	return entity.Links{
		Websites:      orEmpty(l.Websites),
		Apps:          orEmpty(l.Apps),
		Documentation: orEmpty(l.Documentation),
		Explorers:     orEmpty(l.Explorers),
		Repositories:  orEmpty(l.Repositories),
		SocialMedia:   orEmpty(l.SocialMedia),
	}
}

// sortMilestones orders milestones by date. Unparseable dates sort last and
// are reported by the validator.
func sortMilestones(in []entity.Milestone) []entity.Milestone {
	out := orEmpty(in)
	key := func(m entity.Milestone) time.Time {
		t, err := time.Parse(time.RFC3339, m.Date)
		if err != nil {
			return time.Unix(1<<62, 0)
		}
		return t
	}
	slices.SortStableFunc(out, func(a, b entity.Milestone) int {
		return key(a).Compare(key(b))
	})
	return out
}
