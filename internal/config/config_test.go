package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if cfg.DataDir != "data" || cfg.DataFile != "combined_news.json" {
		t.Errorf("unexpected data location: %s/%s", cfg.DataDir, cfg.DataFile)
	}
	if cfg.DefaultStart != "2025-06-28" {
		t.Errorf("expected default_start 2025-06-28, got %s", cfg.DefaultStart)
	}
	if cfg.Terminator != "。" {
		t.Errorf("expected terminator 。, got %q", cfg.Terminator)
	}
	if err := validate(cfg); err != nil {
		t.Errorf("embedded defaults do not validate: %v", err)
	}
}

func TestGetSentencesDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetSentences(); got != 3 {
		t.Errorf("expected default 3 sentences, got %d", got)
	}
	cfg.Sentences = 5
	if got := cfg.GetSentences(); got != 5 {
		t.Errorf("expected 5 sentences, got %d", got)
	}
}

func TestGetKeywordTopKDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetKeywordTopK(); got != 10 {
		t.Errorf("expected default top-k 10, got %d", got)
	}
}

func TestStartDateAndEarliest(t *testing.T) {
	cfg := &Config{DefaultStart: "2025-07-01", MinDate: "2025-06-28"}
	if got := cfg.StartDate().String(); got != "2025-07-01" {
		t.Errorf("StartDate = %s", got)
	}
	if got := cfg.Earliest().String(); got != "2025-06-28" {
		t.Errorf("Earliest = %s", got)
	}
	if !(&Config{}).Earliest().IsZero() {
		t.Error("expected zero Earliest when min_date unset")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	content := `data_dir: /srv/news
sentences: 5
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/srv/news" {
		t.Errorf("expected data_dir /srv/news, got %s", cfg.DataDir)
	}
	if cfg.GetSentences() != 5 {
		t.Errorf("expected 5 sentences, got %d", cfg.GetSentences())
	}
	// Omitted keys keep embedded defaults
	if cfg.DataFile != "combined_news.json" {
		t.Errorf("expected default data_file, got %s", cfg.DataFile)
	}
}

func TestLoadNonexistentFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sub", "config.yaml")

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataFile != "combined_news.json" {
		t.Errorf("expected defaults when config doesn't exist, got %+v", cfg)
	}
	if _, err := os.Stat(cfgPath); err != nil {
		t.Errorf("expected defaults written to %s: %v", cfgPath, err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(EnvDataDir, "/tmp/elsewhere")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/tmp/elsewhere" {
		t.Errorf("expected env data dir, got %s", cfg.DataDir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected env log level, got %s", cfg.LogLevel)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("sentences: [oops"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(cfgPath); err == nil {
		t.Error("expected parse error")
	}
}

func validConfig() *Config {
	return &Config{
		DataDir:      "data",
		DataFile:     "combined_news.json",
		DefaultStart: "2025-06-28",
		MinDate:      "2025-06-28",
		LogLevel:     "info",
		Addr:         "127.0.0.1:8501",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		err    bool
	}{
		{"valid", func(*Config) {}, false},
		{"missing data dir", func(c *Config) { c.DataDir = "" }, true},
		{"missing data file", func(c *Config) { c.DataFile = "" }, true},
		{"bad start", func(c *Config) { c.DefaultStart = "June 28" }, true},
		{"bad min date", func(c *Config) { c.MinDate = "2025-02-30" }, true},
		{"start before min", func(c *Config) { c.DefaultStart = "2025-01-01" }, true},
		{"no min date", func(c *Config) { c.MinDate = ""; c.DefaultStart = "2020-01-01" }, false},
		{"negative sentences", func(c *Config) { c.Sentences = -1 }, true},
		{"negative top-k", func(c *Config) { c.KeywordTopK = -2 }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "chatty" }, true},
		{"bad addr", func(c *Config) { c.Addr = "8501" }, true},
		{"port only addr", func(c *Config) { c.Addr = ":8501" }, false},
	}
	for _, tt := range tests {
		cfg := validConfig()
		tt.mutate(cfg)
		err := validate(cfg)
		if (err != nil) != tt.err {
			t.Errorf("%s: validate() = %v, want err %v", tt.name, err, tt.err)
		}
	}
}
