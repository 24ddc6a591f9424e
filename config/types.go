package config

// ClientConfig holds the connection settings for one client process. It is
// built once at startup and never mutated afterwards.
type ClientConfig struct {
	// ModuleAddress is the account that published the FarmerCoOp module.
	ModuleAddress string `yaml:"module_address"`
	// NodeURL is the base URL of the fullnode REST API.
	NodeURL string `yaml:"node_url"`
	// WalletURL is the HTTP endpoint of the local wallet bridge.
	WalletURL string `yaml:"wallet_url"`
	// JournalPath is the bbolt file the CLI appends submitted operations to.
	JournalPath string `yaml:"journal_path"`
}

// ClientConfigFile is the top-level structure for client.yml
type ClientConfigFile struct {
	Client ClientConfig `yaml:"client"`
}
