package config

import (
	"embed"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/yyyklk/news-app/internal/logging"
	"github.com/yyyklk/news-app/internal/news"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

const (
	EnvDataDir  = "NEWSAPP_DATA_DIR"
	EnvLogLevel = "NEWSAPP_LOG_LEVEL"
)

type Config struct {
	DataDir      string `yaml:"data_dir"`
	DataFile     string `yaml:"data_file"`
	DefaultStart string `yaml:"default_start"`
	MinDate      string `yaml:"min_date"`
	Sentences    int    `yaml:"sentences"`
	KeywordTopK  int    `yaml:"keyword_top_k"`
	Terminator   string `yaml:"terminator"`
	IDFPath      string `yaml:"idf_path,omitempty"`
	LogLevel     string `yaml:"log_level"`
	Addr         string `yaml:"addr"`
}

// StartDate returns the default filter start. Validated by Load.
func (c *Config) StartDate() news.Date {
	d, err := news.ParseDate(c.DefaultStart)
	if err != nil {
		return news.MustDate("2025-06-28")
	}
	return d
}

// Earliest returns the lowest date a user may pick, or the zero Date when unset.
func (c *Config) Earliest() news.Date {
	d, err := news.ParseDate(c.MinDate)
	if err != nil {
		return news.Date{}
	}
	return d
}

// GetSentences returns the summary length, defaulting to 3.
func (c *Config) GetSentences() int {
	if c.Sentences <= 0 {
		return 3
	}
	return c.Sentences
}

// GetKeywordTopK returns how many salient terms to extract, defaulting to 10.
func (c *Config) GetKeywordTopK() int {
	if c.KeywordTopK <= 0 {
		return 10
	}
	return c.KeywordTopK
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "newsapp", "config.yaml")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config at path (or the default location), layering it over
// the embedded defaults. A .env file in the working directory and NEWSAPP_*
// variables override file values.
func Load(path string) (*Config, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	cfg, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		// Unmarshal onto the defaults so omitted keys keep their value.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Non-fatal: embedded defaults still apply.
		_ = writeDefaults(path)
	default:
		return nil, fmt.Errorf("reading config: %w", err)
	}

	applyEnv(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvDataDir); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if cfg.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if cfg.DataFile == "" {
		return fmt.Errorf("data_file is required")
	}
	if _, err := news.ParseDate(cfg.DefaultStart); err != nil {
		return fmt.Errorf("default_start: %w", err)
	}
	if cfg.MinDate != "" {
		minDate, err := news.ParseDate(cfg.MinDate)
		if err != nil {
			return fmt.Errorf("min_date: %w", err)
		}
		if cfg.StartDate().Before(minDate) {
			return fmt.Errorf("default_start %s is before min_date %s", cfg.DefaultStart, cfg.MinDate)
		}
	}
	if cfg.Sentences < 0 {
		return fmt.Errorf("sentences must not be negative, got %d", cfg.Sentences)
	}
	if cfg.KeywordTopK < 0 {
		return fmt.Errorf("keyword_top_k must not be negative, got %d", cfg.KeywordTopK)
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if cfg.Addr != "" {
		if _, _, err := net.SplitHostPort(cfg.Addr); err != nil {
			return fmt.Errorf("addr %q: %w", cfg.Addr, err)
		}
	}
	return nil
}
