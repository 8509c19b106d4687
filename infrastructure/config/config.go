// Package config provides configuration management and dependency injection
// for the settlement engine. It handles loading configuration from files and
// environment variables, and sets up the DI container.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration.
type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// Chain connection. Optional: without an RPC endpoint every command
	// needs an explicit --height and the blockhash randomness source is
	// unavailable.
	ChainID int64  `mapstructure:"chain_id"`
	RPCAddr string `mapstructure:"rpc_addr"`

	Database DatabaseConfig `mapstructure:"database"`
	Slack    SlackConfig    `mapstructure:"slack"`

	// Watch mode settings.
	WatchInterval time.Duration `mapstructure:"watch_interval"`
	MetricsAddr   string        `mapstructure:"metrics_addr"`
}

// DatabaseConfig represents database configuration. Driver selects between
// a shared postgres instance and a local sqlite file.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`

	// Postgres settings.
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	DBName   string `mapstructure:"dbName"`
	SSLMode  string `mapstructure:"sslMode"`

	// SQLite settings.
	Path string `mapstructure:"path"`

	// Connection pool settings.
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// SlackConfig represents Slack notification configuration.
type SlackConfig struct {
	WebhookURL   string   `mapstructure:"webhook_url"`
	Channel      string   `mapstructure:"channel"`
	MentionUsers []string `mapstructure:"mention_users"`
}

// LoadConfig loads configuration from file and environment.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("watch_interval", "15s")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "lotto-engine.db")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", "1h")

	// Set config file.
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/lotto-engine")
	}

	// Enable environment variables.
	v.SetEnvPrefix("LOTTO")
	v.AutomaticEnv()

	// Read config file.
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration.
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres":
		if c.Database.Host == "" {
			return fmt.Errorf("database.host is required for the postgres driver")
		}
	case "sqlite":
		if c.Database.Path == "" {
			return fmt.Errorf("database.path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	if c.RPCAddr != "" && c.ChainID <= 0 {
		return fmt.Errorf("chain_id must be positive when rpc_addr is set")
	}

	if c.WatchInterval <= 0 {
		return fmt.Errorf("watch_interval must be positive")
	}

	return nil
}

// GetDatabaseDSN returns the postgres connection string.
func (c *DatabaseConfig) GetDatabaseDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
