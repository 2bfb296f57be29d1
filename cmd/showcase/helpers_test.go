package main

import (
	"testing"

	"github.com/cristianoliveira/showcase/internal/config"
	"github.com/cristianoliveira/showcase/internal/content"
)

// fakeSource serves a fixed catalog.
type fakeSource struct {
	dir   string
	cat   *content.Catalog
	err   error
	loads int
}

func (f *fakeSource) ContentDir() string { return f.dir }

func (f *fakeSource) Load() (*content.Catalog, error) {
	f.loads++
	return f.cat, f.err
}

// recordingHandler keeps every message it receives.
type recordingHandler struct {
	errors    []string
	warnings  []string
	infos     []string
	successes []string
}

func (h *recordingHandler) Error(msg string)   { h.errors = append(h.errors, msg) }
func (h *recordingHandler) Warning(msg string) { h.warnings = append(h.warnings, msg) }
func (h *recordingHandler) Info(msg string)    { h.infos = append(h.infos, msg) }
func (h *recordingHandler) Success(msg string) { h.successes = append(h.successes, msg) }

// setupConfig points the configuration at a temporary home and reloads it.
func setupConfig(t *testing.T, env map[string]string) {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("XDG_STATE_HOME", tmp)
	t.Setenv("HOME", tmp)
	for k, v := range env {
		t.Setenv(k, v)
	}
	config.Load()
}

func published(b bool) *bool { return &b }

func testCatalog() *content.Catalog {
	return &content.Catalog{
		Projects: []content.Project{
			{ID: "tidepool", Title: "Tidepool", Rarity: content.RarityLegendary, Year: "2024", Tech: []string{"Go"}},
			{ID: "glyph", Title: "Glyph", Rarity: content.RarityRare, Year: "2021"},
		},
		Artworks: []content.Artwork{
			{ID: "koi", Title: "Koi", Category: "Traditional", Likes: 12},
			{ID: "sprite", Title: "Sprite Sheet", Category: "Pixel Art", Likes: 40},
		},
		Posts: []content.BlogPost{
			{Slug: "old", Title: "Older post", Date: "2023-05-01"},
			{Slug: "new", Title: "Newer post", Date: "2024-02-10"},
			{Slug: "draft", Title: "Draft post", Date: "2024-06-01", Published: published(false)},
		},
		Profile: &content.Profile{Name: "Sam Rivera"},
	}
}
