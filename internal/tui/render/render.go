// Package render draws carousel cards, dots, header and footer with lipgloss.
package render

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/cristianoliveira/showcase/internal/carousel"
	"github.com/cristianoliveira/showcase/internal/errors"
)

const (
	minCardWidth     = 10
	maxCardWidth     = 34
	cardGap          = 1
	cardBodyLines    = 3
	dotActive        = "●"
	dotInactive      = "○"
	defaultHelpColor = "241"
	ellipsis         = "…"
)

// Palette colours used across the UI.
var (
	colorTitle   = lipgloss.Color("39")
	colorMuted   = lipgloss.Color(defaultHelpColor)
	colorError   = lipgloss.Color("196")
	colorWarning = lipgloss.Color("214")
	colorInfo    = lipgloss.Color("39")
	colorSuccess = lipgloss.Color("42")
)

// CardState is everything needed to draw one card.
type CardState struct {
	Index    int
	Title    string
	Subtitle string
	Lines    []string
	// Accent is a hex colour; empty uses the default highlight.
	Accent     string
	Descriptor carousel.Descriptor
}

// Span is the horizontal extent of a drawn card, used for mouse hit testing.
type Span struct {
	Index  int
	Start  int
	End    int
	Active bool
}

// Contains reports whether column x falls inside the span.
func (s Span) Contains(x int) bool {
	return x >= s.Start && x < s.End
}

// BaseCardWidth picks the width of the active card so that every visible slot fits.
func BaseCardWidth(totalWidth, slots int) int {
	if slots <= 0 {
		slots = 1
	}
	w := (totalWidth - cardGap*(slots-1)) / slots
	if w < minCardWidth {
		return minCardWidth
	}
	if w > maxCardWidth {
		return maxCardWidth
	}
	return w
}

// CardWidth scales base by the descriptor's scale.
func CardWidth(base int, d carousel.Descriptor) int {
	w := int(math.Round(float64(base) * d.Scale))
	if w < minCardWidth {
		return minCardWidth
	}
	return w
}

// Shade maps an opacity in [0,1] onto the ANSI 256 grey ramp.
func Shade(opacity float64) lipgloss.Color {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return lipgloss.Color(fmt.Sprintf("%d", 236+int(math.Round(opacity*19))))
}

// Card draws one card: scale sets the width, opacity dims the text, blur makes it faint.
func Card(state CardState, base int) string {
	d := state.Descriptor
	width := CardWidth(base, d)
	inner := width - 4
	if inner < 1 {
		inner = 1
	}

	fg := Shade(d.Opacity)
	border := lipgloss.NormalBorder()
	borderColor := fg
	if d.Active() {
		border = lipgloss.ThickBorder()
		borderColor = lipgloss.Color("255")
		if state.Accent != "" {
			borderColor = lipgloss.Color(state.Accent)
		}
	}

	title := lipgloss.NewStyle().Bold(d.Active()).Foreground(fg).Render(Truncate(state.Title, inner))
	body := []string{title}
	if state.Subtitle != "" {
		body = append(body, lipgloss.NewStyle().Italic(true).Foreground(fg).Render(Truncate(state.Subtitle, inner)))
	}
	for i, line := range state.Lines {
		if i >= cardBodyLines {
			break
		}
		body = append(body, lipgloss.NewStyle().Foreground(fg).Render(Truncate(line, inner)))
	}

	style := lipgloss.NewStyle().
		Border(border).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(width - 2).
		Faint(d.Blur > 0)
	return style.Render(strings.Join(body, "\n"))
}

// Strip lays visible cards left to right by translate, vertically centred,
// and returns the drawn string with the column span of every card.
func Strip(cards []CardState, base int) (string, []Span) {
	visible := make([]CardState, 0, len(cards))
	for _, c := range cards {
		if c.Descriptor.Visible {
			visible = append(visible, c)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Descriptor.Translate < visible[j].Descriptor.Translate
	})

	blocks := make([]string, 0, len(visible)*2)
	spans := make([]Span, 0, len(visible))
	x := 0
	for i, c := range visible {
		if i > 0 {
			blocks = append(blocks, strings.Repeat(" ", cardGap))
			x += cardGap
		}
		drawn := Card(c, base)
		w := lipgloss.Width(drawn)
		spans = append(spans, Span{Index: c.Index, Start: x, End: x + w, Active: c.Descriptor.Active()})
		blocks = append(blocks, drawn)
		x += w
	}
	if len(blocks) == 0 {
		return "", nil
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, blocks...), spans
}

// Dots draws one dot per item with the active one filled.
func Dots(n, active int) string {
	if n <= 0 {
		return ""
	}
	parts := make([]string, n)
	for i := range parts {
		if i == active {
			parts[i] = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Render(dotActive)
		} else {
			parts[i] = lipgloss.NewStyle().Foreground(colorMuted).Render(dotInactive)
		}
	}
	return strings.Join(parts, " ")
}

// HeaderState defines the inputs needed to render the header.
type HeaderState struct {
	Name    string
	Tagline string
	Tabs    []string
	Focus   int
	Width   int
}

// Header renders the profile line and the carousel tabs.
func Header(state HeaderState) string {
	nameStyle := lipgloss.NewStyle().Bold(true).Foreground(colorTitle)
	taglineStyle := lipgloss.NewStyle().Foreground(colorMuted)

	var lines []string
	if state.Name != "" {
		line := nameStyle.Render(state.Name)
		if state.Tagline != "" {
			line += "  " + taglineStyle.Render(state.Tagline)
		}
		lines = append(lines, line)
	}

	tabs := make([]string, len(state.Tabs))
	for i, t := range state.Tabs {
		style := lipgloss.NewStyle().Padding(0, 1)
		if i == state.Focus {
			style = style.Bold(true).Underline(true).Foreground(lipgloss.Color("255"))
		} else {
			style = style.Foreground(colorMuted)
		}
		tabs[i] = style.Render(t)
	}
	lines = append(lines, strings.Join(tabs, " "))
	return lipgloss.NewStyle().MaxWidth(max(state.Width, 1)).Render(strings.Join(lines, "\n"))
}

// FooterState defines the inputs needed to render footer help text.
type FooterState struct {
	Help  []string
	State carousel.State
	Held  bool
	Width int
}

// Footer renders the autoplay indicator followed by key help.
func Footer(state FooterState) string {
	helpStyle := lipgloss.NewStyle().Foreground(colorMuted)
	indicator := stateIndicator(state.State, state.Held)
	line := indicator + "  " + helpStyle.Render(strings.Join(state.Help, "  "))
	return lipgloss.NewStyle().MaxWidth(max(state.Width, 1)).Render(line)
}

func stateIndicator(s carousel.State, held bool) string {
	style := lipgloss.NewStyle().Bold(true)
	switch {
	case held:
		return style.Foreground(colorWarning).Render("⏸ held")
	case s == carousel.StateAutoPlaying || s == carousel.StateIdle:
		return style.Foreground(colorSuccess).Render("▶ " + s.String())
	case s == carousel.StateOverlayOpen:
		return style.Foreground(colorInfo).Render("◆ " + s.String())
	default:
		return style.Foreground(colorWarning).Render("⏸ " + s.String())
	}
}

// Status renders a TUI handler message with a type-specific colour.
func Status(msg errors.Message, width int) string {
	color := colorInfo
	prefix := ""
	switch msg.Type {
	case errors.MessageTypeError:
		color, prefix = colorError, "Error: "
	case errors.MessageTypeWarning:
		color, prefix = colorWarning, "Warning: "
	case errors.MessageTypeSuccess:
		color, prefix = colorSuccess, "✓ "
	}
	return lipgloss.NewStyle().Foreground(color).MaxWidth(max(width, 1)).Render(prefix + msg.Text)
}

// Empty renders the placeholder shown for a carousel with no items.
func Empty(label string) string {
	return lipgloss.NewStyle().Foreground(colorMuted).Render(fmt.Sprintf("No %s to show", label))
}

// Truncate shortens value to width runes, ending with an ellipsis when cut.
func Truncate(value string, width int) string {
	if width <= 0 {
		return ""
	}
	if utf8.RuneCountInString(value) <= width {
		return value
	}
	if width == 1 {
		return ellipsis
	}
	runes := []rune(value)
	return string(runes[:width-1]) + ellipsis
}
