package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/sync/errgroup"
)

// File names inside a content directory.
const (
	ProjectsFile = "projects.json"
	ArtworksFile = "artworks.json"
	PostsFile    = "blog.json"
	ProfileFile  = "profile.json"
)

// Collection names used in listings and field paths.
const (
	CollectionProjects = "projects"
	CollectionArtworks = "artworks"
	CollectionPosts    = "posts"
	CollectionProfile  = "profile"
)

const itemsKey = "items"

// Files lists every file Load reads.
var Files = []string{ProjectsFile, ArtworksFile, PostsFile, ProfileFile}

type projectsFile struct {
	Items []Project `json:"items" validate:"unique=ID,dive"`
}

type artworksFile struct {
	Items []Artwork `json:"items" validate:"unique=ID,dive"`
}

type postsFile struct {
	Items []BlogPost `json:"items" validate:"unique=Slug,dive"`
}

// Load reads every content file from fsys concurrently. A missing file yields
// an empty collection; malformed or invalid content fails the whole load.
func Load(fsys fs.FS) (*Catalog, error) {
	var (
		cat Catalog
		g   errgroup.Group
	)

	g.Go(func() error {
		var f projectsFile
		if err := loadCollection(fsys, ProjectsFile, CollectionProjects, &f.Items, &f); err != nil {
			return err
		}
		cat.Projects = f.Items
		return nil
	})
	g.Go(func() error {
		var f artworksFile
		if err := loadCollection(fsys, ArtworksFile, CollectionArtworks, &f.Items, &f); err != nil {
			return err
		}
		cat.Artworks = f.Items
		return nil
	})
	g.Go(func() error {
		var f postsFile
		if err := loadCollection(fsys, PostsFile, CollectionPosts, &f.Items, &f); err != nil {
			return err
		}
		cat.Posts = f.Items
		return nil
	})
	g.Go(func() error {
		p, err := loadProfile(fsys)
		if err != nil {
			return err
		}
		cat.Profile = p
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// LoadDir loads content from a directory on disk.
func LoadDir(dir string) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content dir %s: not a directory", dir)
	}
	return Load(os.DirFS(dir))
}

// readOptional returns nil data when name does not exist.
func readOptional(fsys fs.FS, name string) ([]byte, error) {
	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

// loadCollection decodes name into items, accepting a bare array or an
// {"items": [...]} wrapper, then validates wrapper.
func loadCollection[T any](fsys fs.FS, name, label string, items *[]T, wrapper any) error {
	data, err := readOptional(fsys, name)
	if err != nil {
		return err
	}
	if data == nil {
		*items = []T{}
		return nil
	}
	if err := decodeCollection(data, items); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	if *items == nil {
		*items = []T{}
	}
	return validateFile(name, label, wrapper)
}

func decodeCollection[T any](data []byte, items *[]T) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}
	if trimmed[0] == '[' {
		return json.Unmarshal(trimmed, items)
	}
	var wrapped struct {
		Items []T `json:"items"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return err
	}
	*items = wrapped.Items
	return nil
}

func loadProfile(fsys fs.FS) (*Profile, error) {
	data, err := readOptional(fsys, ProfileFile)
	if err != nil || data == nil {
		return nil, err
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ProfileFile, err)
	}
	if err := validateFile(ProfileFile, CollectionProfile, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
