package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found is used.
var DefaultConfigPaths = []string{
	"orghandbook.yaml",
	"orghandbook.yml",
	"/etc/orghandbook/orghandbook.yaml",
	"/etc/orghandbook/orghandbook.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

// Config is the resolved, immutable process configuration. It is loaded
// once at startup and passed explicitly to the store initializer and the
// auth middleware.
type Config struct {
	Run      RunConfig      `koanf:"run"`
	Database DatabaseConfig `koanf:"database"`
	Security SecurityConfig `koanf:"security"`
	Log      LogConfig      `koanf:"log"`
}

type RunConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`
}

type DatabaseConfig struct {
	// URL selects the driver by scheme: postgres://, mysql:// or a
	// sqlite path/DSN.
	URL string `koanf:"url"`
}

type SecurityConfig struct {
	APIKey       string `koanf:"api_key"`
	APIKeyHeader string `koanf:"api_key_header"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

func defaultConfig() *Config {
	return &Config{
		Run: RunConfig{
			Host: "0.0.0.0",
			Port: 8000,
		},
		Database: DatabaseConfig{
			URL: "data/orghandbook.db",
		},
		Security: SecurityConfig{
			APIKey:       "",
			APIKeyHeader: "X-API-Key",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// envMappings translates environment variable names to config paths.
var envMappings = map[string]string{
	"orghandbook_host":           "run.host",
	"orghandbook_port":           "run.port",
	"orghandbook_database_url":   "database.url",
	"orghandbook_api_key":        "security.api_key",
	"orghandbook_api_key_header": "security.api_key_header",
	"orghandbook_log_level":      "log.level",
	"orghandbook_log_format":     "log.format",
}

// Load resolves the configuration from three layers, later layers taking
// precedence: built-in defaults, an optional YAML file, environment
// variables.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	if c.Security.APIKey == "" {
		return errors.New("config: security.api_key must be set")
	}
	if c.Database.URL == "" {
		return errors.New("config: database.url must be set")
	}
	if c.Run.Port <= 0 || c.Run.Port > 65535 {
		return fmt.Errorf("config: run.port %d is out of range", c.Run.Port)
	}
	return nil
}

// Addr returns the host:port the server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Run.Host, c.Run.Port)
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envTransform maps known environment variables to config paths; unknown
// variables are dropped.
func envTransform(key string) string {
	return envMappings[strings.ToLower(key)]
}
