package entity

// ChainConfig holds the identity of the project's own chain.
type ChainConfig struct {
	ChainID      uint64 `json:"chainId" yaml:"chainId"`
	Name         string `json:"name" yaml:"name"`
	NativeSymbol string `json:"nativeSymbol" yaml:"nativeSymbol"`
	RPCURL       string `json:"rpcUrl" yaml:"rpcUrl"`
	ExplorerURL  string `json:"explorerUrl,omitempty" yaml:"explorerUrl,omitempty"`
}

// ProjectConfig holds structured operational parameters of a project.
type ProjectConfig struct {
	Chain          ChainConfig    `json:"chain"`
	Escrows        []EscrowConfig `json:"escrows"`
	TransactionAPI TransactionAPI `json:"transactionApi"`
}
