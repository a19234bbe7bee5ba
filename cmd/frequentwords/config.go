package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/wizenheimer/wordindex"
)

// Config is the frequentwords configuration file layout
//
// Example:
//
//	analyzer:
//	  minTokenLength: 2
//	  enableStemming: true
//	logging:
//	  level: debug
//	  format: json
type Config struct {
	Analyzer wordindex.AnalyzerConfig `yaml:"analyzer"`
	Logging  LoggingConfig            `yaml:"logging"`
}

// LoggingConfig controls slog level and output format (text or json)
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// LoadConfig reads a YAML config file (if path is non-empty) on top of the
// defaults, then applies FW_* environment overrides.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Analyzer: wordindex.DefaultConfig(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FW_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("FW_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("FW_MIN_TOKEN_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Analyzer.MinTokenLength = n
		}
	}
	if v := os.Getenv("FW_STEMMING"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Analyzer.EnableStemming = b
		}
	}
	if v := os.Getenv("FW_STOPWORDS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Analyzer.EnableStopwords = b
		}
	}
}
