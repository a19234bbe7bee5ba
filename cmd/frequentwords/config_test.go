package main

import (
	"path/filepath"
	"testing"

	"github.com/wizenheimer/wordindex"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Analyzer != wordindex.DefaultConfig() {
		t.Errorf("Analyzer = %+v, want %+v", cfg.Analyzer, wordindex.DefaultConfig())
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("Logging = %+v, want info/text", cfg.Logging)
	}
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
analyzer:
  minTokenLength: 3
  preserveCase: true
logging:
  format: json
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	want := wordindex.AnalyzerConfig{MinTokenLength: 3, PreserveCase: true}
	if cfg.Analyzer != want {
		t.Errorf("Analyzer = %+v, want %+v", cfg.Analyzer, want)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want default info", cfg.Logging.Level)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("FW_LOG_LEVEL", "debug")
	t.Setenv("FW_MIN_TOKEN_LENGTH", "4")
	t.Setenv("FW_STEMMING", "true")
	t.Setenv("FW_STOPWORDS", "not-a-bool")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Analyzer.MinTokenLength != 4 {
		t.Errorf("MinTokenLength = %d, want 4", cfg.Analyzer.MinTokenLength)
	}
	if !cfg.Analyzer.EnableStemming {
		t.Error("EnableStemming = false, want true")
	}
	if cfg.Analyzer.EnableStopwords {
		t.Error("EnableStopwords = true, want unparsable value ignored")
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadConfig(missing) error = nil")
	}

	bad := writeFile(t, dir, "bad.yaml", "analyzer: [not, a, map]\n")
	if _, err := LoadConfig(bad); err == nil {
		t.Error("LoadConfig(bad yaml) error = nil")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]string{
		"debug": "DEBUG",
		"info":  "INFO",
		"warn":  "WARN",
		"error": "ERROR",
		"bogus": "INFO",
	}
	for in, want := range tests {
		if got := parseLevel(in).String(); got != want {
			t.Errorf("parseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}
