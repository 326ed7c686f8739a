package projects

import "github.com/orb3-protocol/l2beat/internal/domain/entity"

// Lumen is an OP Stack chain with instantly upgradable contracts and no
// fraud proofs.
func Lumen() *OpStack {
	return NewOpStack(OpStackOptions{
		ID: "lumen",
		Display: entity.Display{
			Name:        "Lumen",
			Description: "Lumen is an EVM compatible Optimistic Rollup built with the OP Stack, focused on low cost payments.",
			Purposes:    []string{"Universal", "Payments"},
			Links: entity.Links{
				Websites:      []string{"https://lumen.example.org"},
				Apps:          []string{"https://bridge.lumen.example.org"},
				Documentation: []string{"https://docs.lumen.example.org"},
				Explorers:     []string{"https://explorer.lumen.example.org"},
				Repositories:  []string{"https://github.com/lumen-chain/optimism"},
				SocialMedia:   []string{"https://x.com/lumenchain"},
			},
		},
		Chain: entity.ChainConfig{
			ChainID:      48888,
			Name:         "lumen",
			NativeSymbol: "ETH",
			RPCURL:       "https://rpc.lumen.example.org",
			ExplorerURL:  "https://explorer.lumen.example.org",
		},
		BridgeSince: 1686068903,
		Multisigs: []Multisig{
			{Name: "LumenMultisig", Description: "Owner of the ProxyAdmin and the SystemConfig. It can upgrade every bridge contract without delay."},
		},
		UpgradableBy: []string{"LumenMultisig"},
		Milestones: []entity.Milestone{
			{
				Name:        "Lumen mainnet launch",
				Date:        "2023-06-06T00:00:00Z",
				Link:        "https://lumen.example.org/blog/mainnet",
				Description: "Lumen mainnet opens to the public.",
			},
			{
				Name:        "Lumen switches to blobs",
				Date:        "2024-03-14T00:00:00Z",
				Link:        "https://lumen.example.org/blog/ecotone",
				Description: "Batches are posted as EIP-4844 blobs.",
			},
		},
		KnowledgeNuggets: []entity.KnowledgeNugget{
			{Title: "How Lumen batches payments", URL: "https://lumen.example.org/blog/batching"},
		},
	})
}
