package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/aquawm/internal/client"
)

func (s *Server) handleGetStatus(_ context.Context, _ *mcpsdk.CallToolRequest, _ NoInput) (*mcpsdk.CallToolResult, StatusOutput, error) {
	st, err := s.backend.GetStatus()
	if err != nil {
		return nil, StatusOutput{}, fmt.Errorf("get status: %w", err)
	}
	return nil, StatusOutput{
		ClientCount:   st.ClientCount,
		DockCount:     st.DockCount,
		ActiveWindow:  st.ActiveWindow,
		Phase:         st.Phase,
		Screen:        st.Screen,
		Workarea:      st.Workarea,
		UptimeSeconds: st.UptimeSeconds,
	}, nil
}

func (s *Server) handleListClients(_ context.Context, _ *mcpsdk.CallToolRequest, _ NoInput) (*mcpsdk.CallToolResult, ListClientsOutput, error) {
	data, err := s.backend.ListClients()
	if err != nil {
		return nil, ListClientsOutput{}, fmt.Errorf("list clients: %w", err)
	}
	clients := data.Clients
	if clients == nil {
		clients = []client.Info{}
	}
	return nil, ListClientsOutput{Clients: clients}, nil
}

func (s *Server) handleFocusNext(_ context.Context, _ *mcpsdk.CallToolRequest, _ NoInput) (*mcpsdk.CallToolResult, ActionOutput, error) {
	return s.action("focus_next", s.backend.FocusNext)
}

func (s *Server) handleCloseActive(_ context.Context, _ *mcpsdk.CallToolRequest, _ NoInput) (*mcpsdk.CallToolResult, ActionOutput, error) {
	return s.action("close_active", s.backend.CloseActive)
}

func (s *Server) handleToggleFullscreen(_ context.Context, _ *mcpsdk.CallToolRequest, _ NoInput) (*mcpsdk.CallToolResult, ActionOutput, error) {
	return s.action("toggle_fullscreen", s.backend.ToggleFullscreen)
}

func (s *Server) action(name string, fn func() error) (*mcpsdk.CallToolResult, ActionOutput, error) {
	if err := fn(); err != nil {
		return nil, ActionOutput{}, fmt.Errorf("%s: %w", name, err)
	}
	return nil, ActionOutput{OK: true, Action: name}, nil
}
