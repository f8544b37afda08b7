package ipc

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/1broseidon/aquawm/internal/runtimepath"
)

// Client handles IPC communication with the daemon
type Client struct {
	socketPath string
	timeout    time.Duration
}

// NewClient creates a new IPC client
func NewClient() *Client {
	// An unresolvable path is reported by the first call.
	socketPath, _ := runtimepath.SocketPath()
	return NewClientAt(socketPath)
}

// NewClientAt creates a client for the socket at socketPath
func NewClientAt(socketPath string) *Client {
	return &Client{
		socketPath: socketPath,
		timeout:    5 * time.Second,
	}
}

// call sends one command and decodes the reply data into out, which may
// be nil for commands that return nothing.
func (c *Client) call(cmd CommandType, out any) error {
	if c.socketPath == "" {
		return errors.New("no control socket path (is $XDG_RUNTIME_DIR set?)")
	}
	conn, err := net.DialTimeout("unix", c.socketPath, c.timeout)
	if err != nil {
		return fmt.Errorf("connect to %s: %w (is aquawm running?)", c.socketPath, err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(c.timeout)); err != nil {
		return fmt.Errorf("set deadline: %w", err)
	}

	if err := json.NewEncoder(conn).Encode(Request{Command: cmd}); err != nil {
		return fmt.Errorf("send %s: %w", cmd, err)
	}

	line, err := bufio.NewReader(conn).ReadBytes('\n')
	if err != nil {
		return fmt.Errorf("read %s reply: %w", cmd, err)
	}
	var resp Response
	if err := json.Unmarshal(line, &resp); err != nil {
		return fmt.Errorf("parse %s reply: %w", cmd, err)
	}
	if resp.Status != StatusOK {
		return fmt.Errorf("%s: %s", cmd, resp.Error)
	}

	if out == nil || len(resp.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return fmt.Errorf("decode %s data: %w", cmd, err)
	}
	return nil
}

// GetStatus retrieves daemon status
func (c *Client) GetStatus() (*StatusData, error) {
	var status StatusData
	if err := c.call(CommandGetStatus, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// ListClients retrieves the managed clients in registry order
func (c *Client) ListClients() (*ClientsData, error) {
	var data ClientsData
	if err := c.call(CommandListClients, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// FocusNext cycles focus to the next eligible client
func (c *Client) FocusNext() error { return c.call(CommandFocusNext, nil) }

// CloseActive asks the focused client to close
func (c *Client) CloseActive() error { return c.call(CommandCloseActive, nil) }

// ToggleFullscreen flips fullscreen on the focused client
func (c *Client) ToggleFullscreen() error { return c.call(CommandToggleFullscreen, nil) }

// Ping checks if the daemon is responding
func (c *Client) Ping() error { return c.call(CommandGetStatus, nil) }
