package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Catalog struct {
		Path string `yaml:"path"` // read-only reference item DB; empty = alias-only mode
	} `yaml:"catalog"`
	Query struct {
		DefaultDays      int `yaml:"default_days"`
		RecentTradeLimit int `yaml:"recent_trade_limit"`
		SuggestionLimit  int `yaml:"suggestion_limit"`
		FallbackMinCount int `yaml:"fallback_min_count"` // min occurrences for historical-name fallback
	} `yaml:"query"`
	Stats struct {
		TrimPercent     float64 `yaml:"trim_percent"`      // fraction dropped from each end
		TrimMinSamples  int     `yaml:"trim_min_samples"`  // at or below this, plain mean
		BundleHighRatio float64 `yaml:"bundle_high_ratio"` // raw/implied above this = noise
		BundleLowRatio  float64 `yaml:"bundle_low_ratio"`  // raw/implied below this = noise
	} `yaml:"stats"`
	Cleanup struct {
		RejectThreshold int    `yaml:"reject_threshold"` // pattern active once count reaches this
		RetentionDays   int    `yaml:"retention_days"`
		DailyCron       string `yaml:"daily_cron"`
		CheckpointCron  string `yaml:"checkpoint_cron"`
	} `yaml:"cleanup"`
	Import struct {
		BatchSize int `yaml:"batch_size"`
	} `yaml:"import"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CATALOG_PATH"); v != "" {
		cfg.Catalog.Path = v
	}
	if v := os.Getenv("QUERY_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Query.DefaultDays = n
		}
	}
	if v := os.Getenv("RETENTION_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Cleanup.RetentionDays = n
		}
	}
	if v := os.Getenv("CRON_CLEANUP"); v != "" {
		cfg.Cleanup.DailyCron = v
	}

	// Defaults
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/trade.db"
	}
	if cfg.Query.DefaultDays == 0 {
		cfg.Query.DefaultDays = 30
	}
	if cfg.Query.RecentTradeLimit == 0 {
		cfg.Query.RecentTradeLimit = 5
	}
	if cfg.Query.SuggestionLimit == 0 {
		cfg.Query.SuggestionLimit = 5
	}
	if cfg.Query.FallbackMinCount == 0 {
		cfg.Query.FallbackMinCount = 5
	}
	if cfg.Stats.TrimPercent == 0 {
		cfg.Stats.TrimPercent = 0.10
	}
	if cfg.Stats.TrimMinSamples == 0 {
		cfg.Stats.TrimMinSamples = 4
	}
	if cfg.Stats.BundleHighRatio == 0 {
		cfg.Stats.BundleHighRatio = 5.0
	}
	if cfg.Stats.BundleLowRatio == 0 {
		cfg.Stats.BundleLowRatio = 0.2
	}
	if cfg.Cleanup.RejectThreshold == 0 {
		cfg.Cleanup.RejectThreshold = 3
	}
	if cfg.Cleanup.RetentionDays == 0 {
		cfg.Cleanup.RetentionDays = 14
	}
	if cfg.Cleanup.DailyCron == "" {
		cfg.Cleanup.DailyCron = "0 0 4 * * *"
	}
	if cfg.Cleanup.CheckpointCron == "" {
		cfg.Cleanup.CheckpointCron = "0 0/5 * * * *"
	}
	if cfg.Import.BatchSize == 0 {
		cfg.Import.BatchSize = 500
	}

	return cfg, nil
}

// Validate checks that all tuned thresholds are sane.
func (c *Config) Validate() error {
	if c.Database.SQLitePath == "" {
		return fmt.Errorf("database.sqlite_path is required")
	}
	if c.Stats.TrimPercent <= 0 || c.Stats.TrimPercent >= 0.5 {
		return fmt.Errorf("stats.trim_percent must be in (0, 0.5)")
	}
	if c.Stats.BundleHighRatio <= c.Stats.BundleLowRatio {
		return fmt.Errorf("stats.bundle_high_ratio must exceed bundle_low_ratio")
	}
	if c.Cleanup.RejectThreshold < 1 {
		return fmt.Errorf("cleanup.reject_threshold must be positive")
	}
	if c.Query.DefaultDays < 1 {
		return fmt.Errorf("query.default_days must be positive")
	}
	if c.Import.BatchSize < 1 {
		return fmt.Errorf("import.batch_size must be positive")
	}
	return nil
}
