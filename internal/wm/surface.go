package wm

import (
	"github.com/1broseidon/aquawm/internal/client"
	"github.com/1broseidon/aquawm/internal/decor"
	"github.com/1broseidon/aquawm/internal/geom"
)

// Attributes is what the manager needs to know about a window before
// deciding how to manage it.
type Attributes struct {
	Geometry         geom.Rect
	OverrideRedirect bool
	Viewable         bool
}

// Properties reads client-supplied hints
type Properties interface {
	Attributes(w client.WindowID) (Attributes, error)
	WindowTypes(w client.WindowID) []string
	WindowStates(w client.WindowID) []string
	Title(w client.WindowID) string
}

// Windows issues window-tree and stacking requests. Requests on a window
// the server no longer knows are dropped by the server; callers do not
// need to check for that.
type Windows interface {
	// CreateFrame creates a frame with the given outer rectangle and
	// reparents w into it at the content offset.
	CreateFrame(w client.WindowID, frame geom.Rect) (client.WindowID, error)
	Destroy(w client.WindowID)
	Map(w client.WindowID)
	Unmap(w client.WindowID)
	Move(w client.WindowID, x, y int)
	Resize(w client.WindowID, width, height int)
	MoveResize(w client.WindowID, r geom.Rect)
	Raise(w client.WindowID)
	// Reparent moves w under parent; client.None means the root window.
	Reparent(w, parent client.WindowID, x, y int)
	// Configure forwards a configure request unchanged.
	Configure(req ConfigureRequest)
}

// Input handles focus, pointer grabs and cursors
type Input interface {
	// Focus gives w the input focus if it is viewable.
	Focus(w client.WindowID)
	GrabPointer(w client.WindowID, c decor.Cursor) error
	UngrabPointer()
	SetCursor(w client.WindowID, c decor.Cursor)
}

// Publisher writes manager-owned hints back to the server
type Publisher interface {
	SetDockState(w client.WindowID)
	SetStrut(w client.WindowID, s geom.Strut)
	SetIconic(w client.WindowID, iconic bool)
	PublishClients(ws []client.WindowID)
	PublishActive(w client.WindowID)
	PublishWorkarea(r geom.Rect)
}

// Notifier sends synthetic events to clients
type Notifier interface {
	// SendConfigure tells w its content rectangle in root coordinates.
	SendConfigure(w client.WindowID, r geom.Rect)
	// SendDelete asks w to close itself.
	SendDelete(w client.WindowID)
}

// Painter replays decoration operations onto a frame
type Painter interface {
	Paint(frame client.WindowID, ops []decor.Op)
}

// Surface is everything the manager needs from the display server
type Surface interface {
	Properties
	Windows
	Input
	Publisher
	Notifier
	Painter
}
