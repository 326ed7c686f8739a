package configloader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds server-specific configurations.
type ServerConfig struct {
	Port                string   `yaml:"port"`
	ReadTimeoutSeconds  int      `yaml:"readTimeoutSeconds"`
	WriteTimeoutSeconds int      `yaml:"writeTimeoutSeconds"`
	AllowOrigins        []string `yaml:"allowOrigins"`
	SwaggerFile         string   `yaml:"swaggerFile"`
}

// LoggingConfig holds logging-specific configurations.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// DiscoveryConfig selects where discovery snapshots are read from. BaseURL
// takes precedence over Dir when both are set.
type DiscoveryConfig struct {
	Dir                  string  `yaml:"dir"`
	BaseURL              string  `yaml:"baseURL"`
	RequestTimeoutMillis int64   `yaml:"requestTimeoutMillis"`
	RequestsPerSecond    float64 `yaml:"requestsPerSecond"`
	Burst                int     `yaml:"burst"`
}

// ClassificationConfig points at optional YAML files merged over the built-in tables.
type ClassificationConfig struct {
	Files []string `yaml:"files"`
}

// BuildConfig controls the catalog build.
type BuildConfig struct {
	// Projects limits the build to the listed ids; empty builds every project.
	Projects      []string `yaml:"projects"`
	FailurePolicy string   `yaml:"failurePolicy"`
}

// ExportConfig controls the JSON export. An empty Dir disables it.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// CacheConfig holds API response cache settings.
type CacheConfig struct {
	TTLMinutes int `yaml:"ttlMinutes"`
}

// PerformanceConfig holds performance-related configurations.
type PerformanceConfig struct {
	MaxConcurrentBuilds int `yaml:"maxConcurrentBuilds"`
}

// Config is the top-level configuration structure.
type Config struct {
	Server         ServerConfig         `yaml:"server"`
	Logging        LoggingConfig        `yaml:"logging"`
	Discovery      DiscoveryConfig      `yaml:"discovery"`
	Classification ClassificationConfig `yaml:"classification"`
	Build          BuildConfig          `yaml:"build"`
	Export         ExportConfig         `yaml:"export"`
	Cache          CacheConfig          `yaml:"cache"`
	Performance    PerformanceConfig    `yaml:"performance"`
}

// Load reads the YAML configuration file from the given path and unmarshals it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse unmarshals YAML configuration and applies defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config data: %w", err)
	}
	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Server.ReadTimeoutSeconds <= 0 {
		cfg.Server.ReadTimeoutSeconds = 10
	}
	if cfg.Server.WriteTimeoutSeconds <= 0 {
		cfg.Server.WriteTimeoutSeconds = 10
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Discovery.Dir == "" && cfg.Discovery.BaseURL == "" {
		cfg.Discovery.Dir = "data/discovery"
	}
	if cfg.Discovery.RequestTimeoutMillis <= 0 {
		cfg.Discovery.RequestTimeoutMillis = 10000
	}
	if cfg.Discovery.Burst <= 0 {
		cfg.Discovery.Burst = 1
	}
	if cfg.Build.FailurePolicy == "" {
		cfg.Build.FailurePolicy = "skip"
	}
	if cfg.Cache.TTLMinutes <= 0 {
		cfg.Cache.TTLMinutes = 60
	}
	if cfg.Performance.MaxConcurrentBuilds <= 0 {
		cfg.Performance.MaxConcurrentBuilds = 4
	}
}

func validate(cfg *Config) error {
	switch cfg.Build.FailurePolicy {
	case "skip", "abort":
	default:
		return fmt.Errorf("invalid build.failurePolicy %q: must be skip or abort", cfg.Build.FailurePolicy)
	}
	if cfg.Discovery.RequestsPerSecond < 0 {
		return fmt.Errorf("invalid discovery.requestsPerSecond %v: must not be negative", cfg.Discovery.RequestsPerSecond)
	}
	return nil
}
