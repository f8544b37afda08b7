package wm

import "github.com/1broseidon/aquawm/internal/client"

func (m *Manager) activeClient() *client.Client {
	if m.active == client.None {
		return nil
	}
	c, ok := m.clients.FindByWindow(m.active)
	if !ok {
		m.active = client.None
		return nil
	}
	return c
}

// activate makes c the single active client and gives it input focus.
// Both the old and the new frame are repainted.
func (m *Manager) activate(c *client.Client) {
	if prev := m.activeClient(); prev != nil && prev != c {
		prev.Active = false
		m.render(prev)
	}
	c.Active = true
	m.active = c.Window
	m.render(c)
	m.surface.Focus(c.Window)
	m.surface.PublishActive(c.Window)
}

// replaceActive hands focus to the first eligible client other than gone,
// or clears it when there is none.
func (m *Manager) replaceActive(gone *client.Client) {
	gone.Active = false
	m.active = client.None
	for _, c := range m.clients.Eligible() {
		if c == gone {
			continue
		}
		m.activate(c)
		return
	}
	m.surface.PublishActive(client.None)
}

// cycleFocus moves focus to the next eligible client in registry order
func (m *Manager) cycleFocus() {
	eligible := m.clients.Eligible()
	if len(eligible) == 0 {
		return
	}

	next := eligible[0]
	for i, c := range eligible {
		if c.Window == m.active {
			next = eligible[(i+1)%len(eligible)]
			break
		}
	}

	m.surface.Raise(next.Frame)
	m.activate(next)
}

func (m *Manager) closeActive() bool {
	c := m.activeClient()
	if c == nil || !c.Decorated {
		return false
	}
	m.surface.SendDelete(c.Window)
	return true
}
