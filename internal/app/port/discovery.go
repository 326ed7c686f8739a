package port

import (
	"context"

	"github.com/orb3-protocol/l2beat/internal/domain/entity"
)

// DiscoverySource loads discovery snapshots collected elsewhere.
type DiscoverySource interface {
	Load(ctx context.Context, projectID string) (*entity.DiscoverySnapshot, error)
}

// DiscoveryAccessor answers questions about one project's discovery snapshot.
// Every method fails instead of substituting a default when data is missing.
type DiscoveryAccessor interface {
	ProjectID() string

	// ContractValue returns the raw value of field on the named contract.
	ContractValue(contract, field string) (any, error)
	ContractUint64(contract, field string) (uint64, error)
	ContractString(contract, field string) (string, error)
	ContractAddress(contract, field string) (entity.Address, error)
	// Address returns the discovered address of the named contract.
	Address(contract string) (entity.Address, error)

	EscrowDetails(params entity.EscrowParams) (entity.EscrowConfig, error)
	MultisigPermission(name, description string) ([]entity.PermissionEntry, error)
	OpStackPermissions(roles map[string]string) ([]entity.PermissionEntry, error)
	ContractDetails(name string, metadata entity.ContractMetadata) (entity.ContractDetails, error)
	OpStackContractDetails(metadata entity.ContractMetadata) ([]entity.ContractDetails, error)
}

// AccessorFactory wraps a snapshot in a DiscoveryAccessor.
type AccessorFactory func(snapshot *entity.DiscoverySnapshot) DiscoveryAccessor
