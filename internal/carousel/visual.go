package carousel

import (
	"fmt"
	"math"
	"strings"
)

// ClickPolicy decides which visible cards react to selection.
type ClickPolicy int

const (
	// ClickActiveOnly makes only the centred card selectable; selecting it opens the detail view.
	ClickActiveOnly ClickPolicy = iota
	// ClickRecenter makes every visible card selectable; off-centre cards are re-centred.
	ClickRecenter
)

// String returns the configuration spelling of the policy.
func (p ClickPolicy) String() string {
	switch p {
	case ClickRecenter:
		return "recenter"
	default:
		return "active-only"
	}
}

// ParseClickPolicy parses "active-only" or "recenter".
func ParseClickPolicy(s string) (ClickPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active-only", "active", "":
		return ClickActiveOnly, nil
	case "recenter", "re-center":
		return ClickRecenter, nil
	default:
		return ClickActiveOnly, fmt.Errorf("unknown click policy %q", s)
	}
}

// VisualConfig tunes how circular offsets become visual descriptors.
type VisualConfig struct {
	MaxVisibleDistance int
	ScaleStep          float64
	MinScale           float64
	// TranslateStep is the horizontal shift per unit of offset, in percent of a card width.
	TranslateStep float64
	OpacityStep   float64
	MinOpacity    float64
	// BlurStep is the blur radius in px per unit of offset.
	BlurStep    float64
	HiddenBlur  float64
	ClickPolicy ClickPolicy
}

// DefaultVisualConfig returns the tuning used by the projects carousel.
func DefaultVisualConfig() VisualConfig {
	return VisualConfig{
		MaxVisibleDistance: 2,
		ScaleStep:          0.15,
		MinScale:           0.5,
		TranslateStep:      85,
		OpacityStep:        0.2,
		MinOpacity:         0.3,
		BlurStep:           3,
		HiddenBlur:         20,
		ClickPolicy:        ClickActiveOnly,
	}
}

// Descriptor is the presentation state of one card, derived only from its offset.
type Descriptor struct {
	Offset      int
	Visible     bool
	Interactive bool
	Opacity     float64
	Scale       float64
	// Translate is the signed horizontal shift in percent of a card width.
	Translate float64
	// Blur is the blur radius in px.
	Blur float64
	// Stacking is the z-order; the active card is always on top.
	Stacking int
}

// Active reports whether the descriptor belongs to the centred card.
func (d Descriptor) Active() bool {
	return d.Visible && d.Offset == 0
}

// Hidden returns the descriptor of a card outside the visible window.
func Hidden(cfg VisualConfig) Descriptor {
	return hiddenAt(0, cfg)
}

func hiddenAt(offset int, cfg VisualConfig) Descriptor {
	sign := 1.0
	if offset < 0 {
		sign = -1
	}
	return Descriptor{
		Offset:    offset,
		Opacity:   0,
		Scale:     cfg.MinScale,
		Translate: sign * float64(cfg.MaxVisibleDistance+1) * cfg.TranslateStep,
		Blur:      cfg.HiddenBlur,
		Stacking:  0,
	}
}

// ResolveVisualState converts a circular offset into a descriptor. Prominence
// (opacity, scale and stacking) never increases with |offset|.
func ResolveVisualState(offset int, cfg VisualConfig) Descriptor {
	dist := abs(offset)
	if dist > cfg.MaxVisibleDistance {
		return hiddenAt(offset, cfg)
	}

	d := Descriptor{
		Offset:    offset,
		Visible:   true,
		Scale:     math.Max(cfg.MinScale, 1-cfg.ScaleStep*float64(dist)),
		Translate: float64(offset) * cfg.TranslateStep,
		Opacity:   1,
		Blur:      cfg.BlurStep * float64(dist),
		Stacking:  cfg.MaxVisibleDistance + 1 - dist,
	}
	if dist > 0 {
		d.Opacity = math.Max(cfg.MinOpacity, 1-cfg.OpacityStep*float64(dist))
	}

	switch cfg.ClickPolicy {
	case ClickRecenter:
		d.Interactive = true
	default:
		d.Interactive = dist == 0
	}
	return d
}
