package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Chain    ChainConfig    `mapstructure:"chain"`
	Vault    VaultConfig    `mapstructure:"vault"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// ChainConfig selects and parameterizes the blockchain backend.
// The live backend is used only when both contract addresses are configured;
// otherwise every chain call is served by the deterministic mock.
type ChainConfig struct {
	RPCURL            string        `mapstructure:"rpc_url"`
	ChainID           int64         `mapstructure:"chain_id"`
	BRLXContract      string        `mapstructure:"brlx_contract"`
	OperatorKey       string        `mapstructure:"operator_key"`
	AgroTokenContract string        `mapstructure:"agrotoken_contract"`
	GasLimit          uint64        `mapstructure:"gas_limit"`
	ConfirmTimeout    time.Duration `mapstructure:"confirm_timeout"`
	HistoryBlocks     uint64        `mapstructure:"history_blocks"`
}

// LiveMode reports whether real chain submissions are enabled.
func (c ChainConfig) LiveMode() bool {
	return c.BRLXContract != "" && c.AgroTokenContract != ""
}

type VaultConfig struct {
	// Secret is the process-wide key-derivation secret for wallet signing
	// keys. Must be at least MinVaultSecretLen characters.
	Secret string `mapstructure:"secret"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// MinVaultSecretLen is the minimum length of the vault secret.
const MinVaultSecretLen = 32

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: ATK_ (Agro Token).
// Nested keys use underscore: ATK_DATABASE_HOST, ATK_VAULT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "agro_token")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("chain.rpc_url", "")
	v.SetDefault("chain.chain_id", 11155111) // Sepolia
	v.SetDefault("chain.brlx_contract", "")
	v.SetDefault("chain.operator_key", "")
	v.SetDefault("chain.agrotoken_contract", "")
	v.SetDefault("chain.gas_limit", 300000)
	v.SetDefault("chain.confirm_timeout", "90s")
	v.SetDefault("chain.history_blocks", 10000)
	v.SetDefault("vault.secret", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: ATK_DATABASE_HOST -> database.host
	v.SetEnvPrefix("ATK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate rejects configurations the process must not start with.
func (c *Config) Validate() error {
	if len(c.Vault.Secret) < MinVaultSecretLen {
		return fmt.Errorf("vault.secret must be at least %d characters (got %d)",
			MinVaultSecretLen, len(c.Vault.Secret))
	}
	if c.Chain.LiveMode() {
		if c.Chain.RPCURL == "" {
			return fmt.Errorf("chain.rpc_url is required when contract addresses are configured")
		}
		if c.Chain.ChainID <= 0 {
			return fmt.Errorf("chain.chain_id must be positive, got %d", c.Chain.ChainID)
		}
		if c.Chain.OperatorKey == "" {
			return fmt.Errorf("chain.operator_key is required when contract addresses are configured")
		}
	}
	return nil
}
