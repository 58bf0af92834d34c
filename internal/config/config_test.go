package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Query.DefaultDays != 30 || cfg.Query.FallbackMinCount != 5 {
		t.Errorf("query defaults: %+v", cfg.Query)
	}
	if cfg.Stats.TrimPercent != 0.10 || cfg.Stats.TrimMinSamples != 4 {
		t.Errorf("stats defaults: %+v", cfg.Stats)
	}
	if cfg.Stats.BundleHighRatio != 5.0 || cfg.Stats.BundleLowRatio != 0.2 {
		t.Errorf("bundle defaults: %+v", cfg.Stats)
	}
	if cfg.Cleanup.RejectThreshold != 3 || cfg.Cleanup.RetentionDays != 14 {
		t.Errorf("cleanup defaults: %+v", cfg.Cleanup)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "query:\n  default_days: 14\ncleanup:\n  retention_days: 7\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("RETENTION_DAYS", "21")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Query.DefaultDays != 14 {
		t.Errorf("file value lost: %d", cfg.Query.DefaultDays)
	}
	if cfg.Cleanup.RetentionDays != 21 {
		t.Errorf("env override lost: %d", cfg.Cleanup.RetentionDays)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg.Stats.TrimPercent = 0.6
	if err := cfg.Validate(); err == nil {
		t.Error("trim percent ≥ 0.5 must fail validation")
	}
}
