package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"

	"github.com/1broseidon/aquawm/internal/geom"
)

// Output is one lit RandR output. Layout always spans the whole root
// window; outputs are only reported.
type Output struct {
	Name    string
	Bounds  geom.Rect
	Primary bool
}

func (c *Connection) randr() error {
	c.randrOnce.Do(func() {
		if err := randr.Init(c.XUtil.Conn()); err != nil {
			c.randrErr = fmt.Errorf("randr init: %w", err)
		}
	})
	return c.randrErr
}

// Outputs lists the enabled outputs and the rectangle each one scans out
func (c *Connection) Outputs() ([]Output, error) {
	if err := c.randr(); err != nil {
		return nil, err
	}
	conn := c.XUtil.Conn()

	res, err := randr.GetScreenResourcesCurrent(conn, c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("screen resources: %w", err)
	}
	var primary randr.Output
	if p, err := randr.GetOutputPrimary(conn, c.Root).Reply(); err == nil {
		primary = p.Output
	}

	var out []Output
	for _, o := range res.Outputs {
		info, err := randr.GetOutputInfo(conn, o, res.ConfigTimestamp).Reply()
		if err != nil || info.Crtc == 0 || info.Connection != randr.ConnectionConnected {
			continue
		}
		crtc, err := randr.GetCrtcInfo(conn, info.Crtc, res.ConfigTimestamp).Reply()
		if err != nil || crtc.Width == 0 || crtc.Height == 0 {
			continue
		}
		out = append(out, Output{
			Name:    string(info.Name),
			Bounds:  geom.Rect{X: int(crtc.X), Y: int(crtc.Y), Width: int(crtc.Width), Height: int(crtc.Height)},
			Primary: o == primary,
		})
	}
	return out, nil
}

// WatchScreenChanges asks RandR to report root resizes. The resulting
// events arrive through the normal event stream.
func (c *Connection) WatchScreenChanges() error {
	if err := c.randr(); err != nil {
		return err
	}
	err := randr.SelectInputChecked(c.XUtil.Conn(), c.Root, randr.NotifyMaskScreenChange).Check()
	if err != nil {
		return fmt.Errorf("randr select input: %w", err)
	}
	return nil
}
