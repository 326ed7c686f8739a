package discovery

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/orb3-protocol/l2beat/internal/domain/entity"
)

const fixtureYAML = `
project: lumen
blockNumber: 19500000
contracts:
  L2OutputOracle:
    address: "0x1111111111111111111111111111111111111111"
    upgradeability:
      type: EIP1967 proxy
      admin: "0x9999999999999999999999999999999999999999"
      implementation: "0x1212121212121212121212121212121212121212"
    values:
      FINALIZATION_PERIOD_SECONDS: 604800
      PROPOSER: "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
      CHALLENGER: "0x7777777777777777777777777777777777777777"
  OptimismPortal:
    address: "0x2222222222222222222222222222222222222222"
    values:
      GUARDIAN: "0x7777777777777777777777777777777777777777"
  SystemConfig:
    address: "0x3333333333333333333333333333333333333333"
    values:
      owner: "0x7777777777777777777777777777777777777777"
      batcherHash: "0x000000000000000000000000bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
      gasLimit: "0x1c9c380"
  L1CrossDomainMessenger:
    address: "0x4444444444444444444444444444444444444444"
  L1StandardBridge:
    address: "0x5555555555555555555555555555555555555555"
    upgradeability:
      type: Custom proxy
      admin: "0x9999999999999999999999999999999999999999"
  ProxyAdmin:
    address: "0x9999999999999999999999999999999999999999"
    values:
      owner: "0x7777777777777777777777777777777777777777"
  LumenMultisig:
    address: "0x7777777777777777777777777777777777777777"
    values:
      threshold: 2
      members:
        - "0xcccccccccccccccccccccccccccccccccccccccc"
        - "0xdddddddddddddddddddddddddddddddddddddddd"
        - "0x4444444444444444444444444444444444444444"
eoas:
  - "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
  - "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
roles:
  UnsafeBlockSigner:
    - "0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee"
`

func loadFixture(t *testing.T) *entity.DiscoverySnapshot {
	t.Helper()
	snapshot, err := decodeSnapshot("lumen", []byte(fixtureYAML), yaml.Unmarshal)
	require.NoError(t, err)
	return snapshot
}
