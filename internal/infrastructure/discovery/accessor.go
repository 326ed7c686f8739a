package discovery

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/orb3-protocol/l2beat/internal/app/port"
	"github.com/orb3-protocol/l2beat/internal/domain/entity"
	"github.com/orb3-protocol/l2beat/internal/pkg/utils"
)

// EthereumGenesisTimestamp is the earliest timestamp an escrow can be tracked from.
const EthereumGenesisTimestamp int64 = 1438269973

// Accessor implements port.DiscoveryAccessor over a single snapshot.
// It never mutates the snapshot and is safe for concurrent use.
type Accessor struct {
	snapshot *entity.DiscoverySnapshot
	logger   port.Logger
}

// NewAccessor creates a new Accessor.
func NewAccessor(snapshot *entity.DiscoverySnapshot, log port.Logger) *Accessor {
	return &Accessor{snapshot: snapshot, logger: log}
}

// ProjectID returns the project the snapshot belongs to.
func (a *Accessor) ProjectID() string {
	return a.snapshot.Project
}

func (a *Accessor) contract(name string) (entity.DiscoveredContract, error) {
	c, ok := a.snapshot.Contracts[name]
	if !ok {
		return entity.DiscoveredContract{}, fmt.Errorf("%w: contract %s not in discovery of %s", entity.ErrMissingField, name, a.snapshot.Project)
	}
	return c, nil
}

// ContractValue returns the raw discovered value of contract.field.
func (a *Accessor) ContractValue(contract, field string) (any, error) {
	c, err := a.contract(contract)
	if err != nil {
		return nil, err
	}
	v, ok := c.Values[field]
	if !ok || v == nil {
		return nil, fmt.Errorf("%w: %s.%s not in discovery of %s", entity.ErrMissingField, contract, field, a.snapshot.Project)
	}
	return v, nil
}

// ContractUint64 returns contract.field as an unsigned integer. Decimal and
// 0x-prefixed hex strings are accepted.
func (a *Accessor) ContractUint64(contract, field string) (uint64, error) {
	v, err := a.ContractValue(contract, field)
	if err != nil {
		return 0, err
	}
	n, err := toUint64(v)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s.%s: %w", contract, field, err)
	}
	return n, nil
}

func toUint64(v any) (uint64, error) {
	switch n := v.(type) {
	case int:
		if n < 0 {
			return 0, fmt.Errorf("negative value %d", n)
		}
		return uint64(n), nil
	case int64:
		if n < 0 {
			return 0, fmt.Errorf("negative value %d", n)
		}
		return uint64(n), nil
	case uint64:
		return n, nil
	case float64:
		// float64(math.MaxUint64) rounds up to 2^64.
		if n < 0 || n != math.Trunc(n) || n >= math.MaxUint64 {
			return 0, fmt.Errorf("value %v is not an unsigned integer", n)
		}
		return uint64(n), nil
	case string:
		if strings.HasPrefix(n, "0x") {
			return hexutil.DecodeUint64(n)
		}
		return strconv.ParseUint(n, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected type %T", v)
	}
}

// ContractString returns contract.field as a string.
func (a *Accessor) ContractString(contract, field string) (string, error) {
	v, err := a.ContractValue(contract, field)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("failed to read %s.%s: unexpected type %T", contract, field, v)
	}
	return s, nil
}

// ContractAddress returns contract.field as an address. 32 byte values, such
// as the OP Stack batcher hash, are reduced to their low 20 bytes.
func (a *Accessor) ContractAddress(contract, field string) (entity.Address, error) {
	s, err := a.ContractString(contract, field)
	if err != nil {
		return "", err
	}
	return addressFromValue(s)
}

func addressFromValue(s string) (entity.Address, error) {
	if len(s) == 2+2*common.HashLength && strings.HasPrefix(s, "0x") {
		b, err := hexutil.Decode(s)
		if err != nil {
			return "", fmt.Errorf("%w: %q", entity.ErrInvalidAddress, s)
		}
		return entity.Address(common.BytesToAddress(b).Hex()), nil
	}
	return entity.ParseAddress(s)
}

// Address returns the discovered address of a contract.
func (a *Accessor) Address(contract string) (entity.Address, error) {
	c, err := a.contract(contract)
	if err != nil {
		return "", err
	}
	return entity.ParseAddress(c.Address)
}

func (a *Accessor) findByAddress(addr entity.Address) (string, entity.DiscoveredContract, bool) {
	for _, name := range utils.SortedKeys(a.snapshot.Contracts) {
		c := a.snapshot.Contracts[name]
		if parsed, err := entity.ParseAddress(c.Address); err == nil && parsed == addr {
			return name, c, true
		}
	}
	return "", entity.DiscoveredContract{}, false
}

func (a *Accessor) accountType(addr entity.Address) entity.AccountType {
	_, c, ok := a.findByAddress(addr)
	if !ok {
		return entity.AccountEOA
	}
	if _, isSafe := c.Values["threshold"]; isSafe {
		return entity.AccountMultiSig
	}
	return entity.AccountContract
}

// copyUpgradeability returns a copy of u with checksummed addresses.
func copyUpgradeability(u *entity.Upgradeability) *entity.Upgradeability {
	if u == nil {
		return nil
	}
	cp := *u
	if a, err := entity.ParseAddress(u.Admin.String()); err == nil {
		cp.Admin = a
	}
	if a, err := entity.ParseAddress(u.Implementation.String()); err == nil {
		cp.Implementation = a
	}
	return &cp
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// EscrowDetails validates caller supplied escrow parameters and enriches them
// with the upgradeability metadata of the matching discovered contract.
func (a *Accessor) EscrowDetails(params entity.EscrowParams) (entity.EscrowConfig, error) {
	addr, err := entity.ParseAddress(params.Address)
	if err != nil {
		return entity.EscrowConfig{}, fmt.Errorf("escrow of %s: %w", a.snapshot.Project, err)
	}
	if params.SinceTimestamp < EthereumGenesisTimestamp {
		return entity.EscrowConfig{}, fmt.Errorf("%w: escrow %s since %d predates Ethereum genesis",
			entity.ErrInvalidTimestamp, addr, params.SinceTimestamp)
	}
	tokens := entity.ParseTokenSet(params.Tokens...)
	if !tokens.Valid() {
		return entity.EscrowConfig{}, fmt.Errorf("%w: escrow %s has an empty token set", entity.ErrSchemaViolation, addr)
	}

	escrow := entity.EscrowConfig{
		Address:        addr,
		SinceTimestamp: params.SinceTimestamp,
		Tokens:         tokens,
		Description:    params.Description,
		UpgradableBy:   orEmpty(params.Metadata.UpgradableBy),
		UpgradeDelay:   params.Metadata.UpgradeDelay,
	}
	if name, c, ok := a.findByAddress(addr); ok {
		escrow.Upgradeability = copyUpgradeability(c.Upgradeability)
		a.logger.Debug("Escrow matched discovered contract", "project", a.snapshot.Project, "contract", name)
	}
	return escrow, nil
}

// MultisigPermission describes a discovered Gnosis Safe and its members.
func (a *Accessor) MultisigPermission(name, description string) ([]entity.PermissionEntry, error) {
	addr, err := a.Address(name)
	if err != nil {
		return nil, fmt.Errorf("%w: multisig %s: %v", entity.ErrUnknownRole, name, err)
	}
	threshold, err := a.ContractUint64(name, "threshold")
	if err != nil {
		return nil, fmt.Errorf("%w: multisig %s: %v", entity.ErrUnknownRole, name, err)
	}
	raw, err := a.ContractValue(name, "members")
	if err != nil {
		return nil, fmt.Errorf("%w: multisig %s: %v", entity.ErrUnknownRole, name, err)
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("failed to read %s.members: unexpected type %T", name, raw)
	}

	members := make([]entity.PermissionAccount, 0, len(list))
	for _, m := range list {
		s, ok := m.(string)
		if !ok {
			return nil, fmt.Errorf("failed to read %s.members: unexpected member type %T", name, m)
		}
		memberAddr, err := entity.ParseAddress(s)
		if err != nil {
			return nil, fmt.Errorf("multisig %s member: %w", name, err)
		}
		members = append(members, entity.PermissionAccount{Address: memberAddr, Type: a.accountType(memberAddr)})
	}

	return []entity.PermissionEntry{
		{
			Name:        name,
			Accounts:    []entity.PermissionAccount{{Address: addr, Type: entity.AccountMultiSig}},
			Description: strings.TrimSpace(fmt.Sprintf("%s This is a Gnosis Safe with %d / %d threshold.", description, threshold, len(members))),
			References:  []entity.Reference{},
		},
		{
			Name:        name + " participants",
			Accounts:    members,
			Description: fmt.Sprintf("Those are the participants of the %s.", name),
			References:  []entity.Reference{},
		},
	}, nil
}

type opStackRole struct {
	name        string
	contract    string
	field       string
	description string
}

var opStackRoles = []opStackRole{
	{"ProxyAdminOwner", "ProxyAdmin", "owner", "Owner of the ProxyAdmin, allowed to upgrade every system contract."},
	{"SystemConfigOwner", "SystemConfig", "owner", "Account privileged to change System Config parameters such as the gas limit and the batcher."},
	{"Sequencer", "SystemConfig", "batcherHash", "Central actor allowed to commit L2 transactions to L1."},
	{"Proposer", "L2OutputOracle", "PROPOSER", "Actor allowed to post new state roots of L2 to the host chain."},
	{"Challenger", "L2OutputOracle", "CHALLENGER", "Actor allowed to delete state roots proposed by a Proposer."},
	{"Guardian", "OptimismPortal", "GUARDIAN", "Actor allowed to pause withdrawals."},
}

// OpStackPermissions resolves roles to their discovered holders. The map
// values override the default description of a role; an empty value keeps it.
// Standard OP Stack roles come first, other roles follow in name order.
func (a *Accessor) OpStackPermissions(roles map[string]string) ([]entity.PermissionEntry, error) {
	known := make(map[string]struct{}, len(opStackRoles))
	entries := make([]entity.PermissionEntry, 0, len(roles))

	for _, r := range opStackRoles {
		known[r.name] = struct{}{}
		description, requested := roles[r.name]
		if !requested {
			continue
		}
		addr, err := a.ContractAddress(r.contract, r.field)
		if err != nil {
			return nil, fmt.Errorf("%w: %s of %s: %v", entity.ErrUnknownRole, r.name, a.snapshot.Project, err)
		}
		if description == "" {
			description = r.description
		}
		entries = append(entries, entity.PermissionEntry{
			Name:        r.name,
			Accounts:    []entity.PermissionAccount{{Address: addr, Type: a.accountType(addr)}},
			Description: description,
			References:  []entity.Reference{},
		})
	}

	for _, name := range utils.SortedKeys(roles) {
		if _, ok := known[name]; ok {
			continue
		}
		holders, ok := a.snapshot.Roles[name]
		if !ok || len(holders) == 0 {
			return nil, fmt.Errorf("%w: %s has no discovered holder in %s", entity.ErrUnknownRole, name, a.snapshot.Project)
		}
		accounts := make([]entity.PermissionAccount, 0, len(holders))
		for _, h := range holders {
			addr, err := entity.ParseAddress(h)
			if err != nil {
				return nil, fmt.Errorf("role %s: %w", name, err)
			}
			accounts = append(accounts, entity.PermissionAccount{Address: addr, Type: a.accountType(addr)})
		}
		entries = append(entries, entity.PermissionEntry{
			Name:        name,
			Accounts:    accounts,
			Description: roles[name],
			References:  []entity.Reference{},
		})
	}
	return entries, nil
}

// ContractDetails describes a discovered contract using the given metadata.
func (a *Accessor) ContractDetails(name string, metadata entity.ContractMetadata) (entity.ContractDetails, error) {
	c, err := a.contract(name)
	if err != nil {
		return entity.ContractDetails{}, err
	}
	addr, err := entity.ParseAddress(c.Address)
	if err != nil {
		return entity.ContractDetails{}, fmt.Errorf("contract %s: %w", name, err)
	}
	return entity.ContractDetails{
		Name:           name,
		Address:        addr,
		Description:    metadata.Description,
		Upgradeability: copyUpgradeability(c.Upgradeability),
		UpgradableBy:   orEmpty(metadata.UpgradableBy),
		UpgradeDelay:   metadata.UpgradeDelay,
		References:     orEmpty(metadata.References),
	}, nil
}

type opStackContract struct {
	name        string
	required    bool
	description string
}

var opStackContracts = []opStackContract{
	{"L2OutputOracle", true, "Contains a list of proposed state roots which Proposers assert to be a result of block execution. Currently only the PROPOSER address can submit new state roots."},
	{"OptimismPortal", true, "The main entry point to deposit funds from host chain to this chain. It also allows to prove and finalize withdrawals."},
	{"SystemConfig", true, "Contains configuration parameters such as the Sequencer address, the L2 gas limit and the unsafe block signer address."},
	{"L1CrossDomainMessenger", true, "Sends messages from host chain to this chain, and relays messages back onto host chain. A message rejected for exceeding the epoch gas limit can be resubmitted via the replay function."},
	{"L1StandardBridge", true, "The main entry point to deposit ERC20 tokens from host chain to this chain. This contract can store any token."},
	{"L1ERC721Bridge", false, "Used to bridge ERC-721 tokens from host chain to this chain."},
	{"OptimismMintableERC20Factory", false, "A helper contract that generates OptimismMintableERC20 contracts on the network it's deployed to."},
	{"AddressManager", false, "Legacy contract used to manage a mapping of string names to addresses."},
}

// OpStackContractDetails describes the standard OP Stack system contracts.
// metadata is shared by all of them; each contract's own description wins
// over metadata.Description. Optional contracts are skipped when not discovered.
func (a *Accessor) OpStackContractDetails(metadata entity.ContractMetadata) ([]entity.ContractDetails, error) {
	details := make([]entity.ContractDetails, 0, len(opStackContracts))
	for _, c := range opStackContracts {
		if _, ok := a.snapshot.Contracts[c.name]; !ok && !c.required {
			continue
		}
		d, err := a.ContractDetails(c.name, entity.MergeContractMetadata(metadata, entity.ContractMetadata{Description: c.description}))
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}
