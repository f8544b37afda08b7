package mcp

import (
	"github.com/1broseidon/aquawm/internal/client"
	"github.com/1broseidon/aquawm/internal/geom"
)

// NoInput is the input for tools that take no arguments.
type NoInput struct{}

// StatusOutput is the output for the get_status tool.
type StatusOutput struct {
	ClientCount   int             `json:"client_count"`
	DockCount     int             `json:"dock_count"`
	ActiveWindow  client.WindowID `json:"active_window" jsonschema:"X window id of the focused client, 0 when none"`
	Phase         string          `json:"phase" jsonschema:"Pointer interaction phase: idle, moving or resizing"`
	Screen        geom.Rect       `json:"screen"`
	Workarea      geom.Rect       `json:"workarea" jsonschema:"Screen minus the space reserved by docks"`
	UptimeSeconds int64           `json:"uptime_seconds"`
}

// ListClientsOutput is the output for the list_clients tool.
type ListClientsOutput struct {
	Clients []client.Info `json:"clients"`
}

// ActionOutput is the output for tools that change window state.
type ActionOutput struct {
	OK     bool   `json:"ok"`
	Action string `json:"action"`
}
