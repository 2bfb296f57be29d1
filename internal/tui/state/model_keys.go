package state

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cristianoliveira/showcase/internal/carousel"
)

// handleKeyMsg processes keyboard input for the TUI.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.focused()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Escape):
		if p.ctrl.IsOverlayOpen() {
			p.ctrl.CloseOverlay()
			return m, nil
		}
		return m.quit()
	case key.Matches(msg, m.keys.Prev):
		p.ctrl.Prev()
	case key.Matches(msg, m.keys.Next):
		p.ctrl.Next()
	case key.Matches(msg, m.keys.Jump):
		m.jump(p, msg.String())
	case key.Matches(msg, m.keys.Select):
		m.selectCard(p, p.ctrl.ActiveIndex())
	case key.Matches(msg, m.keys.Hold):
		m.toggleHold(p)
	case key.Matches(msg, m.keys.Switch):
		m.switchFocus(1)
	case key.Matches(msg, m.keys.SwitchBk):
		m.switchFocus(-1)
	case key.Matches(msg, m.keys.Reload):
		return m, m.reload()
	case p.ctrl.IsOverlayOpen():
		return m, m.scrollOverlay(msg)
	}
	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.Shutdown()
	return m, tea.Quit
}

// jump navigates to the card numbered by the pressed digit, counting from 1.
func (m *Model) jump(p *pane, digit string) {
	if len(digit) != 1 {
		return
	}
	index := int(digit[0] - '1')
	if index < 0 || index >= p.ctrl.Len() {
		m.errorHandler.Warning("no card " + digit + " in " + p.label)
		return
	}
	p.ctrl.NavigateTo(index)
}

func (m *Model) selectCard(p *pane, index int) {
	if p.ctrl.Len() == 0 {
		return
	}
	if p.ctrl.Select(index) == carousel.SelectOpened {
		m.refreshOverlay()
	}
}

func (m *Model) toggleHold(p *pane) {
	if p.ctrl.IsHeld() {
		p.ctrl.Release()
		m.errorHandler.Info(p.label + " autoplay released")
		return
	}
	p.ctrl.Hold()
	m.errorHandler.Info(p.label + " autoplay held")
}

// switchFocus moves to the next carousel, closing the current detail view
// and releasing any hold so the carousel left behind keeps cycling.
func (m *Model) switchFocus(delta int) {
	p := m.focused()
	if p.ctrl.IsOverlayOpen() {
		p.ctrl.CloseOverlay()
	}
	if p.ctrl.IsHeld() {
		p.ctrl.Release()
	}
	m.focus = carousel.Wrap(m.focus+delta, len(m.panes))
}

func (m *Model) reload() tea.Cmd {
	if m.loader == nil {
		m.errorHandler.Warning("reload is not available for embedded content")
		return nil
	}
	return reloadCmd(m.loader)
}

func (m *Model) scrollOverlay(msg tea.KeyMsg) tea.Cmd {
	vp := m.uiState.Viewport()
	switch {
	case key.Matches(msg, m.keys.ScrollUp):
		vp.ScrollUp(1)
	case key.Matches(msg, m.keys.ScrollDown):
		vp.ScrollDown(1)
	case key.Matches(msg, m.keys.PageUp):
		vp.ScrollUp(vp.Height)
	case key.Matches(msg, m.keys.PageDown):
		vp.ScrollDown(vp.Height)
	}
	return nil
}

// handleMouseMsg selects a card on left click and scrolls the detail view with the wheel.
func (m *Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	p := m.focused()
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if p.ctrl.IsOverlayOpen() {
			m.uiState.Viewport().ScrollUp(1)
		}
	case tea.MouseButtonWheelDown:
		if p.ctrl.IsOverlayOpen() {
			m.uiState.Viewport().ScrollDown(1)
		}
	case tea.MouseButtonLeft:
		if p.ctrl.IsOverlayOpen() {
			return m, nil
		}
		if span, ok := m.uiState.cardAt(msg.X, msg.Y); ok {
			m.selectCard(p, span.Index)
		}
	}
	return m, nil
}
