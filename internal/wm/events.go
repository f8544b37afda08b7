package wm

import "github.com/1broseidon/aquawm/internal/client"

// Event is one inbound notification from the display server. The set of
// implementations is closed.
type Event interface {
	event()
}

type MapRequest struct {
	Window client.WindowID
}

type MapNotify struct {
	Window client.WindowID
}

type UnmapNotify struct {
	Window client.WindowID
}

type DestroyNotify struct {
	Window client.WindowID
}

// Configure request value-mask bits, in protocol order
const (
	ConfigX uint16 = 1 << iota
	ConfigY
	ConfigWidth
	ConfigHeight
	ConfigBorderWidth
	ConfigSibling
	ConfigStackMode
)

type ConfigureRequest struct {
	Window      client.WindowID
	Parent      client.WindowID
	X, Y        int
	Width       int
	Height      int
	BorderWidth int
	Sibling     client.WindowID
	StackMode   uint8
	ValueMask   uint16
}

// ButtonPress carries both window-local and root coordinates
type ButtonPress struct {
	Window       client.WindowID
	Button       uint8
	X, Y         int
	RootX, RootY int
}

type ButtonRelease struct {
	Window       client.WindowID
	Button       uint8
	X, Y         int
	RootX, RootY int
}

type Motion struct {
	Window       client.WindowID
	X, Y         int
	RootX, RootY int
}

type KeyPress struct {
	Code  uint8
	State uint16
}

// ClientMessage is a client request addressed to the manager. Atoms holds
// the names of the atoms carried in the data words: the protocol for
// WM_PROTOCOLS, the two properties for _NET_WM_STATE.
type ClientMessage struct {
	Window client.WindowID
	Type   string
	Action uint32
	Atoms  []string
}

type Expose struct {
	Window client.WindowID
	// Count is the number of expose events still to follow.
	Count int
}

type Enter struct {
	Window client.WindowID
	X, Y   int
}

type Leave struct {
	Window client.WindowID
}

// ScreenChange reports a new root size
type ScreenChange struct {
	Width, Height int
}

// KeymapChange reports that the keyboard or modifier mapping changed, so
// grabbed keycodes may no longer match the bound keys.
type KeymapChange struct{}

func (MapRequest) event()       {}
func (MapNotify) event()        {}
func (UnmapNotify) event()      {}
func (DestroyNotify) event()    {}
func (ConfigureRequest) event() {}
func (ButtonPress) event()      {}
func (ButtonRelease) event()    {}
func (Motion) event()           {}
func (KeyPress) event()         {}
func (ClientMessage) event()    {}
func (Expose) event()           {}
func (Enter) event()            {}
func (Leave) event()            {}
func (ScreenChange) event()     {}
func (KeymapChange) event()     {}

// _NET_WM_STATE client message actions
const (
	StateRemove uint32 = iota
	StateAdd
	StateToggle
)
