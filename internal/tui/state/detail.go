package state

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/cristianoliveira/showcase/internal/content"
)

// MarkdownRenderer turns markdown into terminal output at a given width.
type MarkdownRenderer interface {
	Render(markdown string, width int) (string, error)
}

// GlamourRenderer renders with glamour, rebuilding the renderer when the width changes.
type GlamourRenderer struct {
	style    string
	width    int
	renderer *glamour.TermRenderer
}

// NewGlamourRenderer uses a standard glamour style, or the terminal's
// background when style is empty.
func NewGlamourRenderer(style string) *GlamourRenderer {
	return &GlamourRenderer{style: style}
}

func (g *GlamourRenderer) Render(markdown string, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	if g.renderer == nil || g.width != width {
		opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
		if g.style == "" {
			opts = append(opts, glamour.WithAutoStyle())
		} else {
			opts = append(opts, glamour.WithStandardStyle(g.style))
		}
		r, err := glamour.NewTermRenderer(opts...)
		if err != nil {
			return "", fmt.Errorf("create markdown renderer: %w", err)
		}
		g.renderer, g.width = r, width
	}
	return g.renderer.Render(markdown)
}

func projectMarkdown(p content.Project) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.Title)
	if p.Tagline != "" {
		fmt.Fprintf(&b, "_%s_\n\n", p.Tagline)
	}
	if meta := nonEmpty(string(p.Rarity), p.Year, p.Type); len(meta) > 0 {
		fmt.Fprintf(&b, "**%s**\n\n", strings.Join(meta, " · "))
	}
	if p.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", p.Description)
	}
	if p.RPGDescription != "" {
		fmt.Fprintf(&b, "> %s\n\n", p.RPGDescription)
	}
	writeList(&b, "Tech", p.Tech)
	writeList(&b, "Impact", p.Impact)
	if len(p.Stats) > 0 {
		b.WriteString("## Stats\n\n| Stat | Value |\n| --- | --- |\n")
		for _, s := range p.Stats {
			fmt.Fprintf(&b, "| %s | %s |\n", s.Label, s.Value)
		}
		b.WriteString("\n")
	}
	var links []string
	if p.URL != "" {
		links = append(links, "Site: "+p.URL)
	}
	if p.GitHub != "" {
		links = append(links, "Source: "+p.GitHub)
	}
	writeList(&b, "Links", links)
	return b.String()
}

func artworkMarkdown(a content.Artwork) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", a.Title)
	if meta := nonEmpty(a.Category, a.Year); len(meta) > 0 {
		fmt.Fprintf(&b, "**%s**\n\n", strings.Join(meta, " · "))
	}
	if a.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", a.Description)
	}
	fmt.Fprintf(&b, "♥ %d likes · %s views\n\n", a.Likes, a.Views)
	if a.Image != "" {
		fmt.Fprintf(&b, "Image: `%s`\n", a.Image)
	}
	return b.String()
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
	b.WriteString("\n")
}
