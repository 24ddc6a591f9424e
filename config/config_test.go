package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadClientConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.yml")
	yml := `client:
  module_address: "0xabc"
  node_url: "http://localhost:8080/v1"
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	cfg, err := LoadClientConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "0xabc", cfg.ModuleAddress)
	assert.Equal(t, "http://localhost:8080/v1", cfg.NodeURL)
	// Unset fields fall back to defaults.
	assert.Equal(t, DefaultWalletURL, cfg.WalletURL)
	assert.Equal(t, DefaultJournalPath, cfg.JournalPath)
}

func TestLoadClientConfigRejectsBadModuleAddress(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.yml")
	yml := `client:
  module_address: "nope"
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	_, err := LoadClientConfig(path)
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultModuleAddress, cfg.ModuleAddress)
	assert.Equal(t, DefaultNodeURL, cfg.NodeURL)
}
