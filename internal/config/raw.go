package config

import "time"

// RawConfig mirrors the YAML file. Pointer fields distinguish "absent"
// from an explicit zero value so defaults survive partial files.
type RawConfig struct {
	Display           *string           `yaml:"display"`
	DockHeuristics    *bool             `yaml:"dock_heuristics"`
	ReconcileInterval *time.Duration    `yaml:"reconcile_interval"`
	Keys              *RawKeys          `yaml:"keys"`
	Logging           *RawLoggingConfig `yaml:"logging"`
	IPC               *RawIPCConfig     `yaml:"ipc"`
}

type RawKeys struct {
	Close      *string `yaml:"close"`
	CycleFocus *string `yaml:"cycle_focus"`
	Fullscreen *string `yaml:"fullscreen"`
}

type RawLoggingConfig struct {
	Level *string `yaml:"level"`
}

type RawIPCConfig struct {
	Enabled *bool `yaml:"enabled"`
}
