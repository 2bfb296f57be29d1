package state

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cristianoliveira/showcase/internal/tui/render"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	width := m.uiState.Width()
	p := m.focused()

	tabs := make([]string, len(m.panes))
	for i, pn := range m.panes {
		tabs[i] = pn.label
	}
	header := render.HeaderState{Tabs: tabs, Focus: m.focus, Width: width}
	if m.profile != nil {
		header.Name = m.profile.Name
		header.Tagline = m.profile.Tagline
	}

	var s strings.Builder
	s.WriteString(render.Header(header))
	s.WriteString("\n\n")
	top := strings.Count(s.String(), "\n")

	help := m.keys.CarouselHelp()
	if p.ctrl.IsOverlayOpen() {
		help = m.keys.OverlayHelp()
		m.uiState.setStrip(0, 0, 0, nil)
		s.WriteString(lipgloss.NewStyle().Padding(0, overlayMargin/2).Render(m.uiState.Viewport().View()))
	} else {
		s.WriteString(m.renderStrip(p, top))
	}

	cards, active := p.cards()
	s.WriteString("\n")
	s.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, render.Dots(len(cards), active)))
	s.WriteString("\n\n")

	if m.hasStatus {
		s.WriteString(render.Status(m.status, width))
	}
	s.WriteString("\n")
	s.WriteString(render.Footer(render.FooterState{
		Help:  helpLines(help),
		State: p.ctrl.State(),
		Held:  p.ctrl.IsHeld(),
		Width: width,
	}))
	return s.String()
}

// renderStrip draws the focused carousel centred and records card spans for clicks.
func (m *Model) renderStrip(p *pane, top int) string {
	width := m.uiState.Width()
	cards, _ := p.cards()
	if len(cards) == 0 {
		m.uiState.setStrip(0, 0, 0, nil)
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, render.Empty(strings.ToLower(p.label)))
	}

	vis := p.ctrl.Config().Visual
	slots := min(2*vis.MaxVisibleDistance+1, len(cards))
	strip, spans := render.Strip(cards, render.BaseCardWidth(width, slots))
	left := max((width-lipgloss.Width(strip))/2, 0)
	m.uiState.setStrip(top, left, lipgloss.Height(strip), spans)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strip)
}
