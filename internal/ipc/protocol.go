package ipc

import (
	"encoding/json"
	"fmt"

	"github.com/1broseidon/aquawm/internal/client"
	"github.com/1broseidon/aquawm/internal/geom"
)

// CommandType represents different IPC command types
type CommandType string

const (
	CommandGetStatus        CommandType = "GET_STATUS"
	CommandListClients      CommandType = "LIST_CLIENTS"
	CommandFocusNext        CommandType = "FOCUS_NEXT"
	CommandCloseActive      CommandType = "CLOSE_ACTIVE"
	CommandToggleFullscreen CommandType = "TOGGLE_FULLSCREEN"
)

// Response status values
const (
	StatusOK    = "OK"
	StatusError = "ERROR"
)

// Request represents an IPC request from client to server
type Request struct {
	Command CommandType     `json:"command"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response represents an IPC response from server to client
type Response struct {
	Status string          `json:"status"` // "OK" or "ERROR"
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// StatusData represents the data returned by GET_STATUS
type StatusData struct {
	ClientCount   int             `json:"client_count"`
	DockCount     int             `json:"dock_count"`
	ActiveWindow  client.WindowID `json:"active_window"`
	Phase         string          `json:"phase"`
	Screen        geom.Rect       `json:"screen"`
	Workarea      geom.Rect       `json:"workarea"`
	UptimeSeconds int64           `json:"uptime_seconds"`
	DaemonRunning bool            `json:"daemon_running"`
}

// ClientsData represents the data returned by LIST_CLIENTS
type ClientsData struct {
	Clients []client.Info `json:"clients"`
}

// NewOKResponse creates a successful response with optional data
func NewOKResponse(data interface{}) (*Response, error) {
	var dataBytes json.RawMessage
	if data != nil {
		bytes, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response data: %w", err)
		}
		dataBytes = bytes
	}

	return &Response{
		Status: StatusOK,
		Data:   dataBytes,
	}, nil
}

// NewErrorResponse creates an error response with a message
func NewErrorResponse(errMsg string) *Response {
	return &Response{
		Status: StatusError,
		Error:  errMsg,
	}
}

// ParseRequest parses a request from JSON bytes
func ParseRequest(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}
	return &req, nil
}

// Marshal converts a response to JSON bytes
func (r *Response) Marshal() ([]byte, error) {
	return json.Marshal(r)
}
