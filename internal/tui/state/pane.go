package state

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/showcase/internal/carousel"
	"github.com/cristianoliveira/showcase/internal/content"
	"github.com/cristianoliveira/showcase/internal/tui/render"
)

// carouselControl is the item-type independent surface of carousel.Controller.
type carouselControl interface {
	Name() string
	Len() int
	ActiveIndex() int
	State() carousel.State
	IsHeld() bool
	IsOverlayOpen() bool
	Config() carousel.Config
	Next()
	Prev()
	NavigateTo(index int)
	Select(index int) carousel.SelectOutcome
	CloseOverlay()
	Hold()
	Release()
	Dispose()
}

// pane binds a controller to the way its items are drawn and described.
type pane struct {
	label  string
	ctrl   carouselControl
	cards  func() ([]render.CardState, int)
	detail func() (string, bool)
	apply  func(*content.Catalog)
}

func newPane[T carousel.Item](
	label string,
	ctrl *carousel.Controller[T],
	card func(T) render.CardState,
	detail func(T) string,
	pick func(*content.Catalog) []T,
) *pane {
	return &pane{
		label: label,
		ctrl:  ctrl,
		cards: func() ([]render.CardState, int) {
			snap := ctrl.Snapshot()
			out := make([]render.CardState, len(snap.Items))
			for i, it := range snap.Items {
				cs := card(it)
				cs.Index = i
				cs.Descriptor = snap.Descriptors[i]
				out[i] = cs
			}
			return out, snap.ActiveIndex
		},
		detail: func() (string, bool) {
			it, ok := ctrl.Active()
			if !ok {
				return "", false
			}
			return detail(it), true
		},
		apply: func(cat *content.Catalog) {
			ctrl.SetItems(pick(cat))
		},
	}
}

func projectsOf(cat *content.Catalog) []content.Project { return cat.Projects }
func artworksOf(cat *content.Catalog) []content.Artwork { return cat.Artworks }

func projectCard(p content.Project) render.CardState {
	var lines []string
	meta := strings.TrimSpace(strings.Join(nonEmpty(string(p.Rarity), p.Year, p.Type), " · "))
	if meta != "" {
		lines = append(lines, meta)
	}
	if len(p.Tech) > 0 {
		lines = append(lines, strings.Join(p.Tech, ", "))
	}
	return render.CardState{
		Title:    p.Title,
		Subtitle: p.Tagline,
		Lines:    lines,
		Accent:   p.AccentColor,
	}
}

func artworkCard(a content.Artwork) render.CardState {
	lines := nonEmpty(a.Year, fmt.Sprintf("♥ %d · %s views", a.Likes, a.Views))
	return render.CardState{
		Title:    a.Title,
		Subtitle: a.Category,
		Lines:    lines,
	}
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
