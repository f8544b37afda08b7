package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Default key sequences, in xgbutil keybind syntax
const (
	DefaultCloseKey      = "Mod4-F4"
	DefaultCycleFocusKey = "Mod4-Tab"
	DefaultFullscreenKey = "F11"
)

// Config is the effective window manager configuration
type Config struct {
	// Display overrides $DISPLAY when set.
	Display string `yaml:"display,omitempty"`
	// DockHeuristics lets title and geometry mark a window as a dock when
	// it carries no EWMH dock type.
	DockHeuristics bool `yaml:"dock_heuristics"`
	// ReconcileInterval is how often the registry is checked for windows
	// that vanished without a destroy notification.
	ReconcileInterval time.Duration `yaml:"reconcile_interval"`
	Keys              Keys          `yaml:"keys"`
	Logging           LoggingConfig `yaml:"logging"`
	IPC               IPCConfig     `yaml:"ipc"`
}

// Keys holds the global key bindings
type Keys struct {
	Close      string `yaml:"close"`
	CycleFocus string `yaml:"cycle_focus"`
	Fullscreen string `yaml:"fullscreen"`
}

// LoggingConfig configures the daemon logger
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// IPCConfig configures the control socket
type IPCConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	return &Config{
		DockHeuristics:    true,
		ReconcileInterval: 30 * time.Second,
		Keys: Keys{
			Close:      DefaultCloseKey,
			CycleFocus: DefaultCycleFocusKey,
			Fullscreen: DefaultFullscreenKey,
		},
		Logging: LoggingConfig{Level: "info"},
		IPC:     IPCConfig{Enabled: true},
	}
}

// SlogLevel maps the configured level onto slog
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Bindings returns the key bindings keyed by their YAML path
func (c *Config) Bindings() map[string]string {
	return map[string]string{
		"keys.close":       c.Keys.Close,
		"keys.cycle_focus": c.Keys.CycleFocus,
		"keys.fullscreen":  c.Keys.Fullscreen,
	}
}

// Marshal renders the effective configuration as YAML.
//
// Note: comments from the original file are not preserved.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	bindings := c.Bindings()
	seen := make(map[string]string)
	for _, path := range []string{"keys.close", "keys.cycle_focus", "keys.fullscreen"} {
		seq := strings.TrimSpace(bindings[path])
		if seq == "" {
			return &ValidationError{Path: path, Err: fmt.Errorf("key binding must not be empty")}
		}
		norm := normalizeSequence(seq)
		if other, ok := seen[norm]; ok {
			return &ValidationError{Path: path, Err: fmt.Errorf("%q is already bound by %s", seq, other)}
		}
		seen[norm] = path
	}

	if c.ReconcileInterval < time.Second {
		return &ValidationError{Path: "reconcile_interval", Err: fmt.Errorf("reconcile_interval must be at least 1s")}
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{Path: "logging.level", Err: fmt.Errorf("level must be one of: debug, info, warn, error")}
	}
	return nil
}

// normalizeSequence makes "mod4-tab" and "Mod4-Tab" compare equal.
func normalizeSequence(seq string) string {
	return strings.ToLower(strings.Join(strings.Fields(seq), ""))
}
