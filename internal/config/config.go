package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the tunable knobs of the viewer. Everything has a working
// default; the file is optional.
type Config struct {
	PollIntervalMS int    `toml:"poll_interval_ms"`
	QueueCapacity  int    `toml:"queue_capacity"`
	DebugLogPath   string `toml:"debug_log"`
	Theme          string `toml:"theme"`
	Follow         bool   `toml:"follow"`
}

const (
	defaultConfigPath   = "~/.config/lazytail/config.toml"
	defaultDebugLogPath = "~/.cache/lazytail/debug.log"
	defaultTheme        = "dark"
	defaultPollMS       = 100
	defaultQueueCap     = 20000
)

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(bytes, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if cfg.PollIntervalMS <= 0 {
		cfg.PollIntervalMS = defaultPollMS
	}
	if cfg.QueueCapacity <= 0 {
		cfg.QueueCapacity = defaultQueueCap
	}
	cfg.DebugLogPath = strings.TrimSpace(cfg.DebugLogPath)
	if cfg.DebugLogPath == "" {
		cfg.DebugLogPath = defaultDebugLogPath
	}
	cfg.DebugLogPath = mustExpand(cfg.DebugLogPath)
	cfg.Theme = strings.TrimSpace(cfg.Theme)
	if cfg.Theme == "" {
		cfg.Theme = defaultTheme
	}

	return cfg, nil
}

func defaults() Config {
	return Config{
		PollIntervalMS: defaultPollMS,
		QueueCapacity:  defaultQueueCap,
		DebugLogPath:   mustExpand(defaultDebugLogPath),
		Theme:          defaultTheme,
		Follow:         true,
	}
}

// PollInterval returns the poll cadence as a duration.
func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
