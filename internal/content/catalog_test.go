package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func testCatalog() *Catalog {
	return &Catalog{
		Projects: []Project{
			{ID: "a", Title: "Alpha", Rarity: RarityEpic},
			{ID: "b", Title: "Beta", Rarity: RarityCommon},
			{ID: "c", Title: "Gamma", Rarity: RarityEpic},
		},
		Artworks: []Artwork{
			{ID: "x", Category: "Pixel Art"},
			{ID: "y", Category: "Traditional"},
			{ID: "z", Category: "Pixel Art"},
		},
		Posts: []BlogPost{
			{Slug: "old", Date: "2023-01-01"},
			{Slug: "hidden", Date: "2026-01-01", Published: boolPtr(false)},
			{Slug: "new", Date: "2025-05-05T10:00:00Z", Published: boolPtr(true)},
			{Slug: "mid", Date: "Jun 1, 2024"},
			{Slug: "same-day", Date: "2023-01-01"},
		},
	}
}

func TestProjectLookups(t *testing.T) {
	cat := testCatalog()

	p, ok := cat.ProjectByID("b")
	require.True(t, ok)
	assert.Equal(t, "Beta", p.Title)
	_, ok = cat.ProjectByID("nope")
	assert.False(t, ok)

	epic := cat.ProjectsByRarity(RarityEpic)
	require.Len(t, epic, 2)
	assert.Equal(t, "a", epic[0].ID)
	assert.Equal(t, "c", epic[1].ID)
	assert.Empty(t, cat.ProjectsByRarity(RarityMythic))
}

func TestPublishedPostsNewestFirst(t *testing.T) {
	cat := testCatalog()

	var slugs []string
	for _, p := range cat.PublishedPosts() {
		slugs = append(slugs, p.Slug)
	}
	assert.Equal(t, []string{"new", "mid", "old", "same-day"}, slugs)

	_, ok := cat.PostBySlug("hidden")
	assert.True(t, ok, "unpublished posts are still addressable by slug")
}

func TestArtworkLookups(t *testing.T) {
	cat := testCatalog()

	pixel := cat.ArtworksByCategory("Pixel Art")
	require.Len(t, pixel, 2)
	assert.Equal(t, "z", pixel[1].ID)
	assert.Equal(t, []string{"Pixel Art", "Traditional"}, cat.ArtworkCategories())
}

func TestItemIDs(t *testing.T) {
	assert.Equal(t, "a", Project{ID: "a"}.ItemID())
	assert.Equal(t, "x", Artwork{ID: "x"}.ItemID())
	assert.Equal(t, "slug", BlogPost{Slug: "slug"}.ItemID())
}

func TestPostDateLayouts(t *testing.T) {
	want := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	for _, s := range []string{"2025-03-04", "2025-03-04T00:00:00Z", "2025-03-04T00:00:00.000Z", "March 4, 2025", "Mar 4, 2025"} {
		got, ok := BlogPost{Date: s}.PostDate()
		require.True(t, ok, s)
		assert.True(t, want.Equal(got), s)
	}
	_, ok := BlogPost{Date: "soon"}.PostDate()
	assert.False(t, ok)
}

func TestCounts(t *testing.T) {
	assert.Equal(t, map[string]int{"projects": 3, "artworks": 3, "posts": 5}, testCatalog().Counts())
}
