package config

import (
	"fmt"
	"os"

	"coopchain/logx"

	"gopkg.in/yaml.v3"
)

// Default returns a ClientConfig pointing at the published testnet module.
func Default() ClientConfig {
	return ClientConfig{
		ModuleAddress: DefaultModuleAddress,
		NodeURL:       DefaultNodeURL,
		WalletURL:     DefaultWalletURL,
		JournalPath:   DefaultJournalPath,
	}
}

// LoadClientConfig reads and parses a client.yml file. Fields left empty in
// the file fall back to the testnet defaults.
func LoadClientConfig(path string) (*ClientConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		logx.Error("CONFIG", "Failed to open config file: ", err)
		return nil, err
	}
	defer file.Close()

	var cfgFile ClientConfigFile
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfgFile); err != nil {
		logx.Error("CONFIG", "Failed to decode YAML: ", err)
		return nil, err
	}

	cfg := cfgFile.Client
	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	logx.Info("CONFIG", fmt.Sprintf("Loaded client config: node=%s module=%s", cfg.NodeURL, cfg.ModuleAddress))
	return &cfg, nil
}

func applyDefaults(cfg *ClientConfig) {
	if cfg.ModuleAddress == "" {
		cfg.ModuleAddress = DefaultModuleAddress
	}
	if cfg.NodeURL == "" {
		cfg.NodeURL = DefaultNodeURL
	}
	if cfg.WalletURL == "" {
		cfg.WalletURL = DefaultWalletURL
	}
	if cfg.JournalPath == "" {
		cfg.JournalPath = DefaultJournalPath
	}
}

func validate(cfg *ClientConfig) error {
	if len(cfg.ModuleAddress) < 3 || cfg.ModuleAddress[:2] != "0x" {
		return fmt.Errorf("module_address must be a 0x-prefixed account address, got %q", cfg.ModuleAddress)
	}
	return nil
}
