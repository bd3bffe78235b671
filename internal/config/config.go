package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/dataset-analyzer/internal/dataset"
	"github.com/eugenenazirov/dataset-analyzer/internal/stats"
)

const (
	defaultPort           = "8080"
	defaultInputPath      = "data/dataset.csv"
	defaultRateLimitRPS   = 25.0
	defaultRateLimitBurst = 50
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	InputPath            string         `yaml:"input_path"`
	Thresholds           []float64      `yaml:"thresholds"`
	PauseDuration        time.Duration  `yaml:"-"`
	Layout               dataset.Layout `yaml:"-"`
	Port                 string         `yaml:"port"`
	ShutdownGracePeriod  time.Duration  `yaml:"shutdown_grace_period"`
	ReadHeaderTimeout    time.Duration  `yaml:"read_header_timeout"`
	WriteTimeout         time.Duration  `yaml:"write_timeout"`
	IdleTimeout          time.Duration  `yaml:"idle_timeout"`
	EnableRequestLogging bool           `yaml:"enable_request_logging"`
	RateLimitRPS         float64        `yaml:"-"`
	RateLimitBurst       int            `yaml:"-"`
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	InputPath            string        `yaml:"input_path"`
	Thresholds           []float64     `yaml:"thresholds"`
	PauseDuration        string        `yaml:"pause_duration"`
	Layout               yamlLayout    `yaml:"layout"`
	Port                 string        `yaml:"port"`
	ShutdownGracePeriod  string        `yaml:"shutdown_grace_period"`
	ReadHeaderTimeout    string        `yaml:"read_header_timeout"`
	WriteTimeout         string        `yaml:"write_timeout"`
	IdleTimeout          string        `yaml:"idle_timeout"`
	EnableRequestLogging bool          `yaml:"enable_request_logging"`
	RateLimit            yamlRateLimit `yaml:"rate_limit"`
}

// yamlLayout represents the input layout section in YAML. Values are
// pointers so absent keys keep the defaults.
type yamlLayout struct {
	TargetRow    *int `yaml:"target_row"`
	DataStartRow *int `yaml:"data_start_row"`
	SetCount     *int `yaml:"set_count"`
	ColumnStep   *int `yaml:"column_step"`
}

// yamlRateLimit represents the rate limit section in YAML.
type yamlRateLimit struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile     string
	InputPath      *string
	ThresholdsStr  *string
	PauseDuration  *time.Duration
	Port           *string
	RateLimitRPS   *float64
	RateLimitBurst *int
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	// Load from YAML file if specified
	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	// Apply environment variables (override YAML)
	applyEnvConfig(&cfg)

	// Apply CLI overrides (highest precedence)
	if overrides != nil {
		if err := applyCLIOverrides(&cfg, overrides); err != nil {
			return Config{}, err
		}
	}

	// Validate final configuration
	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		InputPath:            defaultInputPath,
		Thresholds:           stats.DefaultThresholds(),
		PauseDuration:        0,
		Layout:               dataset.DefaultLayout(),
		Port:                 defaultPort,
		ShutdownGracePeriod:  10 * time.Second,
		ReadHeaderTimeout:    5 * time.Second,
		WriteTimeout:         15 * time.Second,
		IdleTimeout:          60 * time.Second,
		EnableRequestLogging: true,
		RateLimitRPS:         defaultRateLimitRPS,
		RateLimitBurst:       defaultRateLimitBurst,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if yamlCfg.InputPath != "" {
		cfg.InputPath = yamlCfg.InputPath
	}

	if len(yamlCfg.Thresholds) > 0 {
		cfg.Thresholds = yamlCfg.Thresholds
	}

	if yamlCfg.PauseDuration != "" {
		if d, err := time.ParseDuration(yamlCfg.PauseDuration); err == nil {
			cfg.PauseDuration = d
		}
	}

	if yamlCfg.Layout.TargetRow != nil {
		cfg.Layout.TargetRow = *yamlCfg.Layout.TargetRow
	}
	if yamlCfg.Layout.DataStartRow != nil {
		cfg.Layout.DataStartRow = *yamlCfg.Layout.DataStartRow
	}
	if yamlCfg.Layout.SetCount != nil {
		cfg.Layout.SetCount = *yamlCfg.Layout.SetCount
	}
	if yamlCfg.Layout.ColumnStep != nil {
		cfg.Layout.ColumnStep = *yamlCfg.Layout.ColumnStep
	}

	if yamlCfg.Port != "" {
		cfg.Port = yamlCfg.Port
	}

	if yamlCfg.ShutdownGracePeriod != "" {
		if d, err := time.ParseDuration(yamlCfg.ShutdownGracePeriod); err == nil {
			cfg.ShutdownGracePeriod = d
		}
	}

	if yamlCfg.ReadHeaderTimeout != "" {
		if d, err := time.ParseDuration(yamlCfg.ReadHeaderTimeout); err == nil {
			cfg.ReadHeaderTimeout = d
		}
	}

	if yamlCfg.WriteTimeout != "" {
		if d, err := time.ParseDuration(yamlCfg.WriteTimeout); err == nil {
			cfg.WriteTimeout = d
		}
	}

	if yamlCfg.IdleTimeout != "" {
		if d, err := time.ParseDuration(yamlCfg.IdleTimeout); err == nil {
			cfg.IdleTimeout = d
		}
	}

	cfg.EnableRequestLogging = yamlCfg.EnableRequestLogging

	if yamlCfg.RateLimit.RPS >= 0 {
		cfg.RateLimitRPS = yamlCfg.RateLimit.RPS
	}

	if yamlCfg.RateLimit.Burst >= 0 {
		cfg.RateLimitBurst = yamlCfg.RateLimit.Burst
	}
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	if path := strings.TrimSpace(os.Getenv("INPUT_PATH")); path != "" {
		cfg.InputPath = path
	}

	if rawThresholds := strings.TrimSpace(os.Getenv("ERROR_THRESHOLDS")); rawThresholds != "" {
		thresholds, err := parseThresholds(rawThresholds)
		if err == nil && len(thresholds) > 0 {
			cfg.Thresholds = thresholds
		}
	}

	if pause := strings.TrimSpace(os.Getenv("PAUSE_DURATION")); pause != "" {
		if d, err := time.ParseDuration(pause); err == nil && d >= 0 {
			cfg.PauseDuration = d
		}
	}

	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		cfg.Port = port
	}

	if rps := strings.TrimSpace(os.Getenv("RATE_LIMIT_RPS")); rps != "" {
		if value, err := strconv.ParseFloat(rps, 64); err == nil && value >= 0 {
			cfg.RateLimitRPS = value
		}
	}

	if burst := strings.TrimSpace(os.Getenv("RATE_LIMIT_BURST")); burst != "" {
		if value, err := strconv.Atoi(burst); err == nil && value >= 0 {
			cfg.RateLimitBurst = value
		}
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) error {
	if overrides.InputPath != nil && *overrides.InputPath != "" {
		cfg.InputPath = *overrides.InputPath
	}

	if overrides.ThresholdsStr != nil && *overrides.ThresholdsStr != "" {
		thresholds, err := parseThresholds(*overrides.ThresholdsStr)
		if err != nil {
			return fmt.Errorf("parse thresholds: %w", err)
		}
		cfg.Thresholds = thresholds
	}

	if overrides.PauseDuration != nil && *overrides.PauseDuration >= 0 {
		cfg.PauseDuration = *overrides.PauseDuration
	}

	if overrides.Port != nil && *overrides.Port != "" {
		cfg.Port = *overrides.Port
	}

	if overrides.RateLimitRPS != nil && *overrides.RateLimitRPS >= 0 {
		cfg.RateLimitRPS = *overrides.RateLimitRPS
	}

	if overrides.RateLimitBurst != nil && *overrides.RateLimitBurst >= 0 {
		cfg.RateLimitBurst = *overrides.RateLimitBurst
	}

	return nil
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if cfg.RateLimitRPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be >= 0")
	}
	if cfg.RateLimitBurst < 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be >= 0")
	}
	if len(cfg.Thresholds) == 0 {
		return fmt.Errorf("thresholds cannot be empty")
	}
	for _, threshold := range cfg.Thresholds {
		if threshold <= 0 {
			return fmt.Errorf("thresholds must be positive, got %v", threshold)
		}
	}
	if cfg.PauseDuration < 0 {
		return fmt.Errorf("pause duration must be >= 0")
	}
	if cfg.Layout.TargetRow < 0 || cfg.Layout.DataStartRow <= cfg.Layout.TargetRow ||
		cfg.Layout.SetCount <= 0 || cfg.Layout.ColumnStep <= 0 {
		return fmt.Errorf("layout rows, set count, and column step must describe a valid grid")
	}
	return nil
}

// parseThresholds parses a comma-separated string of error thresholds into
// a slice of floats. It validates that all values are positive.
func parseThresholds(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	thresholds := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		value, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", part)
		}
		if value <= 0 {
			return nil, fmt.Errorf("threshold must be positive, got %v", value)
		}
		thresholds = append(thresholds, value)
	}
	if len(thresholds) == 0 {
		return nil, fmt.Errorf("no thresholds provided")
	}
	return thresholds, nil
}
