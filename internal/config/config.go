// Package config loads and validates the pipeline configuration from
// environment variables and an optional YAML file, and resolves the
// on-disk layout of the raw dataset. All paths are explicit; the core
// never consults the working directory on its own.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"harcli/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Dataset DatasetConfig `yaml:"dataset" envconfig:"DATASET"`
	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// DatasetConfig locates the raw dataset files
type DatasetConfig struct {
	RootDir      string `yaml:"root_dir" envconfig:"ROOT_DIR" default:"data" validate:"required"`
	FeaturesFile string `yaml:"features_file" envconfig:"FEATURES_FILE" default:"features.txt" validate:"required"`
}

// OutputConfig controls where and how the tidy table is written
type OutputConfig struct {
	Path   string `yaml:"path" envconfig:"PATH" default:"tidy_dataset.csv" validate:"required"`
	Format string `yaml:"format" envconfig:"FORMAT" default:"csv" validate:"oneof=csv xlsx"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/harcli.log"`
}

// Load loads configuration from environment variables and config file
func Load() (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process("HAR", &cfg); err != nil {
		return nil, errors.NewConfigError("failed to load config from env", err)
	}

	// Load from config file if exists
	configFile := getConfigFilePath()
	if configFile != "" {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, errors.NewConfigError(fmt.Sprintf("failed to load config file %s", configFile), err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
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
	if envConfig.Dataset.RootDir == "" {
		envConfig.Dataset.RootDir = fileConfig.Dataset.RootDir
	}
	if envConfig.Dataset.FeaturesFile == "" {
		envConfig.Dataset.FeaturesFile = fileConfig.Dataset.FeaturesFile
	}
	if envConfig.Output.Path == "" {
		envConfig.Output.Path = fileConfig.Output.Path
	}
	if envConfig.Output.Format == "" {
		envConfig.Output.Format = fileConfig.Output.Format
	}
	if envConfig.Logging.Level == "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if envConfig.Logging.Output == "" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if envConfig.Logging.FilePath == "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}

	return envConfig
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.NewConfigError("config validation failed", err)
	}
	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Dataset: DatasetConfig{
			RootDir:      "data",
			FeaturesFile: "features.txt",
		},
		Output: OutputConfig{
			Path:   "tidy_dataset.csv",
			Format: "csv",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: "logs/harcli.log",
		},
	}
}
