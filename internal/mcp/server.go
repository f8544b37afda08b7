package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/aquawm/internal/ipc"
)

const (
	ServerName    = "aquawm"
	ServerVersion = "0.1.0"
)

// Backend is the subset of the IPC client the tools call
type Backend interface {
	GetStatus() (*ipc.StatusData, error)
	ListClients() (*ipc.ClientsData, error)
	FocusNext() error
	CloseActive() error
	ToggleFullscreen() error
}

// Server is the MCP server exposing window manager control.
type Server struct {
	mcpServer *mcpsdk.Server
	backend   Backend
}

// NewServer creates an MCP server that forwards to the running daemon
// through backend.
func NewServer(backend Backend) *Server {
	s := &Server{backend: backend}
	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)
	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_status",
		Description: "Report the window manager state: number of managed clients and docks, the focused window, the pointer interaction phase, the screen size and the workarea left after dock reservations.",
	}, s.handleGetStatus)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_clients",
		Description: "List every managed window in creation order with its frame id, title, content geometry and flags (mapped, decorated, active, maximized, fullscreen, dock).",
	}, s.handleListClients)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "focus_next",
		Description: "Raise and focus the next decorated, mapped window after the focused one, wrapping around. Docks are skipped.",
	}, s.handleFocusNext)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "close_active",
		Description: "Ask the focused window to close via WM_DELETE_WINDOW. Fails when nothing is focused.",
	}, s.handleCloseActive)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "toggle_fullscreen",
		Description: "Toggle fullscreen on the focused window. Leaving fullscreen restores the geometry it had before.",
	}, s.handleToggleFullscreen)
}
