package content

import (
	"sort"
)

// Catalog is one consistent snapshot of all content.
type Catalog struct {
	Projects []Project
	Artworks []Artwork
	Posts    []BlogPost
	// Profile is nil when profile.json is absent.
	Profile *Profile
}

// Counts returns the size of each collection, keyed by collection name.
func (c *Catalog) Counts() map[string]int {
	return map[string]int{
		CollectionProjects: len(c.Projects),
		CollectionArtworks: len(c.Artworks),
		CollectionPosts:    len(c.Posts),
	}
}

func (c *Catalog) ProjectByID(id string) (Project, bool) {
	for _, p := range c.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

func (c *Catalog) ProjectsByRarity(r Rarity) []Project {
	var out []Project
	for _, p := range c.Projects {
		if p.Rarity == r {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) PostBySlug(slug string) (BlogPost, bool) {
	for _, p := range c.Posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return BlogPost{}, false
}

// PublishedPosts returns posts not marked unpublished, newest first.
// Posts with equal dates keep their file order.
func (c *Catalog) PublishedPosts() []BlogPost {
	out := make([]BlogPost, 0, len(c.Posts))
	for _, p := range c.Posts {
		if p.IsPublished() {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ti, _ := out[i].PostDate()
		tj, _ := out[j].PostDate()
		return ti.After(tj)
	})
	return out
}

func (c *Catalog) ArtworksByCategory(category string) []Artwork {
	var out []Artwork
	for _, a := range c.Artworks {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}

// ArtworkCategories returns the distinct categories in first-seen order.
func (c *Catalog) ArtworkCategories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range c.Artworks {
		if a.Category == "" || seen[a.Category] {
			continue
		}
		seen[a.Category] = true
		out = append(out, a.Category)
	}
	return out
}
