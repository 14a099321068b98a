package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Input   InputConfig   `yaml:"input" envconfig:"INPUT"`
	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// InputConfig describes the adjustment report file to analyze
type InputConfig struct {
	Path       string `yaml:"path" envconfig:"PATH" default:"data.txt" validate:"required"`
	Delimiter  string `yaml:"delimiter" envconfig:"DELIMITER"`
	SkipMarker string `yaml:"skip_marker" envconfig:"SKIP_MARKER" default:"avg"`
}

// OutputConfig controls which report artifacts are written and where
type OutputConfig struct {
	Dir           string `yaml:"dir" envconfig:"DIR" default:"."`
	WriteCSV      bool   `yaml:"write_csv" envconfig:"WRITE_CSV" default:"true"`
	WriteJSON     bool   `yaml:"write_json" envconfig:"WRITE_JSON" default:"true"`
	WriteWorkbook bool   `yaml:"write_workbook" envconfig:"WRITE_WORKBOOK" default:"true"`
	WriteCharts   bool   `yaml:"write_charts" envconfig:"WRITE_CHARTS" default:"true"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/adjcli.log"`
}

// configFileName is looked up in the working directory when loading
const configFileName = "adjcli.yaml"

// Load loads configuration from environment variables and config file
func Load() (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process("ADJ", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if exists
	if _, err := os.Stat(configFileName); err == nil {
		fileConfig, err := loadFromFile(configFileName)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	cfg.applyDefaults()

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence)
func mergeConfigs(fileConfig, envConfig Config) Config {
	if envConfig.Input.Path == "" || envConfig.Input.Path == "data.txt" {
		if fileConfig.Input.Path != "" {
			envConfig.Input.Path = fileConfig.Input.Path
		}
	}
	if envConfig.Input.Delimiter == "" {
		envConfig.Input.Delimiter = fileConfig.Input.Delimiter
	}
	if envConfig.Output.Dir == "" || envConfig.Output.Dir == "." {
		if fileConfig.Output.Dir != "" {
			envConfig.Output.Dir = fileConfig.Output.Dir
		}
	}
	if envConfig.Logging.Level == "info" && fileConfig.Logging.Level != "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if envConfig.Logging.Format == "text" && fileConfig.Logging.Format != "" {
		envConfig.Logging.Format = fileConfig.Logging.Format
	}

	return envConfig
}

// applyDefaults fills in values envconfig tags cannot express.
// The delimiter default is a literal tab, which a struct tag cannot hold.
func (c *Config) applyDefaults() {
	if c.Input.Delimiter == "" {
		c.Input.Delimiter = "\t"
	}
	if c.Input.SkipMarker == "" {
		c.Input.SkipMarker = "avg"
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "."
	}
}

// validate checks the configuration for invalid values
func (c *Config) validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return err
	}
	if len(c.Input.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Input.Delimiter)
	}
	return nil
}

// Default returns a configuration with all default values applied,
// bypassing environment and file lookup. Intended for tests and tooling.
func Default() *Config {
	cfg := &Config{
		Input: InputConfig{
			Path:       "data.txt",
			SkipMarker: "avg",
		},
		Output: OutputConfig{
			Dir:           ".",
			WriteCSV:      true,
			WriteJSON:     true,
			WriteWorkbook: true,
			WriteCharts:   true,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "text",
			Output:   "console",
			FilePath: "logs/adjcli.log",
		},
	}
	cfg.applyDefaults()
	return cfg
}
