package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "agro_token", cfg.Database.DBName)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)

	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)

	assert.Equal(t, int64(11155111), cfg.Chain.ChainID)
	assert.Equal(t, uint64(300000), cfg.Chain.GasLimit)
	assert.False(t, cfg.Chain.LiveMode())

	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ATK_DATABASE_HOST", "db.internal")
	t.Setenv("ATK_CHAIN_RPC_URL", "https://rpc.example.com")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "https://rpc.example.com", cfg.Chain.RPCURL)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9090
chain:
  brlx_contract: "0x0000000000000000000000000000000000000001"
  agrotoken_contract: "0x0000000000000000000000000000000000000002"
  rpc_url: "https://eth-sepolia.example.com/v2/key"
  operator_key: "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
vault:
  secret: "0123456789abcdef0123456789abcdef"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Chain.LiveMode())
	assert.NoError(t, cfg.Validate())
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "localhost", Port: 5432, User: "u", Password: "p",
		DBName: "agro_token", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@localhost:5432/agro_token?sslmode=disable", d.DSN())
}

func TestValidate_ShortVaultSecret(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Vault.Secret = "too-short"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vault.secret")
}

func TestValidate_LiveModeRequiresRPC(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Vault.Secret = strings.Repeat("s", 32)
	cfg.Chain.BRLXContract = "0x0000000000000000000000000000000000000001"
	cfg.Chain.AgroTokenContract = "0x0000000000000000000000000000000000000002"
	cfg.Chain.RPCURL = ""

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rpc_url")
}

func TestValidate_MockModeNeedsNoRPC(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Vault.Secret = strings.Repeat("s", 32)
	assert.NoError(t, cfg.Validate())
}
