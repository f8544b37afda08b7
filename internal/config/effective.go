package config

import "fmt"

type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// BuildEffectiveConfig applies the fields present in raw over the defaults
func BuildEffectiveConfig(raw RawConfig) *Config {
	cfg := DefaultConfig()

	if raw.Display != nil {
		cfg.Display = *raw.Display
	}
	if raw.DockHeuristics != nil {
		cfg.DockHeuristics = *raw.DockHeuristics
	}
	if raw.ReconcileInterval != nil {
		cfg.ReconcileInterval = *raw.ReconcileInterval
	}
	if raw.Keys != nil {
		if raw.Keys.Close != nil {
			cfg.Keys.Close = *raw.Keys.Close
		}
		if raw.Keys.CycleFocus != nil {
			cfg.Keys.CycleFocus = *raw.Keys.CycleFocus
		}
		if raw.Keys.Fullscreen != nil {
			cfg.Keys.Fullscreen = *raw.Keys.Fullscreen
		}
	}
	if raw.Logging != nil && raw.Logging.Level != nil {
		cfg.Logging.Level = *raw.Logging.Level
	}
	if raw.IPC != nil && raw.IPC.Enabled != nil {
		cfg.IPC.Enabled = *raw.IPC.Enabled
	}
	return cfg
}
