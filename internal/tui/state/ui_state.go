package state

import (
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/cristianoliveira/showcase/internal/tui/render"
)

// UIState holds terminal geometry, the overlay viewport and the last drawn
// card layout for mouse hit testing.
type UIState struct {
	viewport viewport.Model
	width    int
	height   int

	// Where the card strip was last drawn.
	stripTop    int
	stripHeight int
	stripLeft   int
	spans       []render.Span
}

// NewUIState creates a new UIState instance with default values.
func NewUIState() *UIState {
	u := &UIState{width: defaultWidth, height: defaultHeight}
	u.viewport = viewport.New(u.overlayWidth(), u.overlayHeight())
	return u
}

func (u *UIState) Viewport() *viewport.Model {
	return &u.viewport
}

func (u *UIState) Width() int  { return u.width }
func (u *UIState) Height() int { return u.height }

// SetSize records the terminal size and resizes the overlay viewport.
func (u *UIState) SetSize(width, height int) {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	u.width, u.height = width, height
	u.viewport.Width = u.overlayWidth()
	u.viewport.Height = u.overlayHeight()
}

func (u *UIState) overlayWidth() int {
	return max(u.width-overlayMargin, 1)
}

func (u *UIState) overlayHeight() int {
	return max(u.height-chromeLines, 1)
}

func (u *UIState) setStrip(top, left, height int, spans []render.Span) {
	u.stripTop, u.stripLeft, u.stripHeight, u.spans = top, left, height, spans
}

// cardAt returns the card drawn at terminal cell (x, y).
func (u *UIState) cardAt(x, y int) (render.Span, bool) {
	if y < u.stripTop || y >= u.stripTop+u.stripHeight {
		return render.Span{}, false
	}
	for _, s := range u.spans {
		if s.Contains(x - u.stripLeft) {
			return s, true
		}
	}
	return render.Span{}, false
}
