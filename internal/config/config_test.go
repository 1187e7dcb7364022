package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.PollIntervalMS != defaultPollMS {
		t.Errorf("PollIntervalMS = %d, want %d", cfg.PollIntervalMS, defaultPollMS)
	}
	if cfg.QueueCapacity != defaultQueueCap {
		t.Errorf("QueueCapacity = %d, want %d", cfg.QueueCapacity, defaultQueueCap)
	}
	if !cfg.Follow {
		t.Error("Follow default = false, want true")
	}
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", cfg.Theme)
	}
	if !strings.HasPrefix(cfg.DebugLogPath, home) {
		t.Errorf("DebugLogPath = %q, want it under HOME %q", cfg.DebugLogPath, home)
	}
}

func TestLoad_ParsesValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
poll_interval_ms = 250
queue_capacity = 500
debug_log = "~/logs/lazytail.log"
theme = "light"
follow = false
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.PollIntervalMS != 250 {
		t.Errorf("PollIntervalMS = %d, want 250", cfg.PollIntervalMS)
	}
	if cfg.QueueCapacity != 500 {
		t.Errorf("QueueCapacity = %d, want 500", cfg.QueueCapacity)
	}
	if cfg.Follow {
		t.Error("Follow = true, want false")
	}
	if cfg.Theme != "light" {
		t.Errorf("Theme = %q, want light", cfg.Theme)
	}
	if strings.HasPrefix(cfg.DebugLogPath, "~") {
		t.Errorf("DebugLogPath = %q, tilde not expanded", cfg.DebugLogPath)
	}
	if got := cfg.PollInterval(); got != 250*time.Millisecond {
		t.Errorf("PollInterval = %v, want 250ms", got)
	}
}

func TestLoad_ZeroValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
poll_interval_ms = 0
queue_capacity = -5
debug_log = "   "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.PollIntervalMS != defaultPollMS {
		t.Errorf("PollIntervalMS = %d, want %d", cfg.PollIntervalMS, defaultPollMS)
	}
	if cfg.QueueCapacity != defaultQueueCap {
		t.Errorf("QueueCapacity = %d, want %d", cfg.QueueCapacity, defaultQueueCap)
	}
	if strings.TrimSpace(cfg.DebugLogPath) == "" {
		t.Error("DebugLogPath left empty")
	}
}

func TestLoad_MalformedConfigIsAnError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not toml at all ==="), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load on malformed config succeeded, want error")
	}
}
