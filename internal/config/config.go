package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the reelscout service configuration.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Provider ProviderConfig `yaml:"provider"`
	RateGate RateGateConfig `yaml:"rate_gate"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Inbound  InboundConfig  `yaml:"inbound"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// ProviderConfig holds metadata provider settings.
type ProviderConfig struct {
	BaseURL      string `yaml:"base_url"`
	ImageBaseURL string `yaml:"image_base_url"`
	APIKey       string `yaml:"api_key"`
	TimeoutSec   int    `yaml:"timeout_sec"`
}

// Rate gate backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// RateGateConfig holds the outbound sliding window settings.
type RateGateConfig struct {
	Capacity int    `yaml:"capacity"`
	WindowMS int    `yaml:"window_ms"`
	Backend  string `yaml:"backend"` // memory (default), redis
	Key      string `yaml:"key"`     // redis sorted set name
}

// Window returns the window length.
func (c RateGateConfig) Window() time.Duration {
	return time.Duration(c.WindowMS) * time.Millisecond
}

// DatabaseConfig holds Redis connection settings for the shared window.
type DatabaseConfig struct {
	Addrs            []string `yaml:"addrs"`
	Password         string   `yaml:"password"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// InboundConfig holds per-client request throttling for the HTTP API.
type InboundConfig struct {
	RPS   float64 `yaml:"rps"` // 0 disables throttling
	Burst int     `yaml:"burst"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		// Deferred provider calls can hold a request for several windows.
		c.HTTP.WriteTimeoutSec = 120
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Provider.BaseURL == "" {
		c.Provider.BaseURL = "https://api.themoviedb.org/3/"
	}
	if c.Provider.ImageBaseURL == "" {
		c.Provider.ImageBaseURL = "http://image.tmdb.org/t/p/w780"
	}
	if c.Provider.TimeoutSec <= 0 {
		c.Provider.TimeoutSec = 15
	}
	if c.RateGate.Capacity <= 0 {
		c.RateGate.Capacity = 30
	}
	if c.RateGate.WindowMS <= 0 {
		c.RateGate.WindowMS = 11000
	}
	if c.RateGate.Backend == "" {
		c.RateGate.Backend = BackendMemory
	}
	if c.RateGate.Key == "" {
		c.RateGate.Key = "reelscout:rategate:provider"
	}
	if c.Database.ReadinessTimeout <= 0 {
		c.Database.ReadinessTimeout = 10
	}
	if c.Inbound.RPS > 0 && c.Inbound.Burst <= 0 {
		c.Inbound.Burst = int(c.Inbound.RPS) + 1
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if c.Provider.APIKey == "" {
		return fmt.Errorf("provider.api_key is required")
	}
	switch c.RateGate.Backend {
	case BackendMemory:
	case BackendRedis:
		if len(c.Database.Addrs) == 0 {
			return fmt.Errorf("database.addrs is required for rate_gate.backend %q", BackendRedis)
		}
	default:
		return fmt.Errorf("rate_gate.backend must be %q or %q, got %q", BackendMemory, BackendRedis, c.RateGate.Backend)
	}
	if c.Inbound.RPS < 0 {
		return fmt.Errorf("inbound.rps must not be negative, got %v", c.Inbound.RPS)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
