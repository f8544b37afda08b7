package client

import (
	"errors"
	"fmt"
	"sort"
)

// ErrDuplicate is returned when a window is registered twice
var ErrDuplicate = errors.New("window already managed")

// Registry owns every managed client, keyed by its window. Registry order
// is creation order.
type Registry struct {
	byWindow map[WindowID]*Client
	byFrame  map[WindowID]*Client
	next     uint64
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{
		byWindow: make(map[WindowID]*Client),
		byFrame:  make(map[WindowID]*Client),
	}
}

// Register adds a fully classified client. A window is never registered twice.
func (r *Registry) Register(c *Client) error {
	if c == nil || c.Window == None {
		return fmt.Errorf("register: invalid client")
	}
	if _, ok := r.byWindow[c.Window]; ok {
		return fmt.Errorf("register 0x%x: %w", uint32(c.Window), ErrDuplicate)
	}
	r.next++
	c.seq = r.next
	r.byWindow[c.Window] = c
	if c.Decorated && c.Frame != None && c.Frame != c.Window {
		r.byFrame[c.Frame] = c
	}
	return nil
}

// FindByWindow looks a client up by its content window
func (r *Registry) FindByWindow(w WindowID) (*Client, bool) {
	c, ok := r.byWindow[w]
	return c, ok
}

// FindByFrame looks a decorated client up by its frame window
func (r *Registry) FindByFrame(f WindowID) (*Client, bool) {
	c, ok := r.byFrame[f]
	return c, ok
}

// Remove drops the client owning w and returns it
func (r *Registry) Remove(w WindowID) (*Client, bool) {
	c, ok := r.byWindow[w]
	if !ok {
		return nil, false
	}
	delete(r.byWindow, w)
	if r.byFrame[c.Frame] == c {
		delete(r.byFrame, c.Frame)
	}
	return c, true
}

// Len returns the number of managed clients
func (r *Registry) Len() int {
	return len(r.byWindow)
}

// All returns every client in registry order
func (r *Registry) All() []*Client {
	out := make([]*Client, 0, len(r.byWindow))
	for _, c := range r.byWindow {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

// Docks returns the mapped docks in registry order
func (r *Registry) Docks() []*Client {
	var out []*Client
	for _, c := range r.All() {
		if c.Dock && c.Mapped {
			out = append(out, c)
		}
	}
	return out
}

// Eligible returns the clients that may hold focus, in registry order
func (r *Registry) Eligible() []*Client {
	var out []*Client
	for _, c := range r.All() {
		if c.Eligible() {
			out = append(out, c)
		}
	}
	return out
}
