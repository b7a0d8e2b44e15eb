package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultDisplayDefault is shown in the echo line when the target operand is absent.
	DefaultDisplayDefault = 24.5
	defaultLogLevel       = "warn"
	defaultLogEncoding    = "json"
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > Environment variables > YAML config > Defaults
type Config struct {
	DisplayDefault float64
	LogLevel       string
	LogEncoding    string
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	DisplayDefault *float64 `yaml:"display_default"`
	Log            yamlLog  `yaml:"log"`
}

// yamlLog represents the log section in YAML.
type yamlLog struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile     string
	DisplayDefault *float64
	LogLevel       *string
	LogEncoding    *string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > Environment variables > YAML config > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	applyEnvConfig(&cfg)

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		DisplayDefault: DefaultDisplayDefault,
		LogLevel:       defaultLogLevel,
		LogEncoding:    defaultLogEncoding,
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
	if yamlCfg.DisplayDefault != nil {
		cfg.DisplayDefault = *yamlCfg.DisplayDefault
	}

	if level := strings.TrimSpace(yamlCfg.Log.Level); level != "" {
		cfg.LogLevel = level
	}

	if encoding := strings.TrimSpace(yamlCfg.Log.Encoding); encoding != "" {
		cfg.LogEncoding = encoding
	}
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	if raw := strings.TrimSpace(os.Getenv("CALC_DISPLAY_DEFAULT")); raw != "" {
		if value, err := strconv.ParseFloat(raw, 64); err == nil {
			cfg.DisplayDefault = value
		}
	}

	if level := strings.TrimSpace(os.Getenv("CALC_LOG_LEVEL")); level != "" {
		cfg.LogLevel = level
	}

	if encoding := strings.TrimSpace(os.Getenv("CALC_LOG_ENCODING")); encoding != "" {
		cfg.LogEncoding = encoding
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.DisplayDefault != nil {
		cfg.DisplayDefault = *overrides.DisplayDefault
	}

	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}

	if overrides.LogEncoding != nil && *overrides.LogEncoding != "" {
		cfg.LogEncoding = *overrides.LogEncoding
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("%w: got %q", ErrInvalidLogLevel, cfg.LogLevel)
	}
	switch cfg.LogEncoding {
	case "json", "console":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLogEncoding, cfg.LogEncoding)
	}
	return nil
}
