// Package content loads the portfolio catalog: projects, artworks, blog posts
// and the profile, as written by the CMS into JSON files.
package content

import (
	"strings"
	"time"
)

// Rarity ranks a project in the hub.
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
	RarityMythic    Rarity = "Mythic"
)

// Rarities lists every rarity from most to least prominent.
var Rarities = []Rarity{RarityMythic, RarityLegendary, RarityEpic, RarityRare, RarityCommon}

type ProjectStat struct {
	Label string `json:"label" validate:"required"`
	Value string `json:"value"`
}

type Project struct {
	ID             string        `json:"id" validate:"required"`
	Title          string        `json:"title" validate:"required"`
	Tagline        string        `json:"tagline"`
	Description    string        `json:"description"`
	Tech           []string      `json:"tech"`
	Impact         []string      `json:"impact"`
	AccentColor    string        `json:"accentColor" validate:"omitempty,hexcolor"`
	Year           string        `json:"year"`
	Type           string        `json:"type"`
	URL            string        `json:"url" validate:"omitempty,url"`
	GitHub         string        `json:"github,omitempty" validate:"omitempty,url"`
	Screenshot     string        `json:"screenshot,omitempty"`
	Stats          []ProjectStat `json:"stats,omitempty" validate:"dive"`
	Rarity         Rarity        `json:"rarity" validate:"required,oneof=Legendary Epic Rare Mythic Common"`
	RPGDescription string        `json:"rpgDescription"`
}

// ItemID identifies the project inside a carousel.
func (p Project) ItemID() string { return p.ID }

type Artwork struct {
	ID          string `json:"id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Year        string `json:"year"`
	Category    string `json:"category"`
	Likes       int    `json:"likes" validate:"gte=0"`
	Views       string `json:"views"`
}

// ItemID identifies the artwork inside a carousel.
func (a Artwork) ItemID() string { return a.ID }

type BlogPost struct {
	Slug       string   `json:"slug" validate:"required"`
	Title      string   `json:"title" validate:"required"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content,omitempty"`
	Date       string   `json:"date" validate:"required,postdate"`
	CoverImage string   `json:"coverImage"`
	Tags       []string `json:"tags"`
	ReadTime   string   `json:"readTime"`
	Author     string   `json:"author,omitempty"`
	Published  *bool    `json:"published,omitempty"`
}

// ItemID identifies the post inside a carousel.
func (b BlogPost) ItemID() string { return b.Slug }

// IsPublished reports whether the post is visible. Posts without the flag are.
func (b BlogPost) IsPublished() bool {
	return b.Published == nil || *b.Published
}

// dateLayouts are the forms the CMS writes dates in.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// PostDate parses Date.
func (b BlogPost) PostDate() (time.Time, bool) {
	return parseDate(b.Date)
}

type SocialLink struct {
	Platform string `json:"platform" validate:"required"`
	URL      string `json:"url" validate:"required"`
	Icon     string `json:"icon"`
	Label    string `json:"label"`
}

type StoryChapter struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type StoryContent struct {
	Title     string         `json:"title"`
	Chapters  []StoryChapter `json:"chapters"`
	Highlight string         `json:"highlight"`
	Skills    []string       `json:"skills"`
}

type Profile struct {
	Name      string       `json:"name" validate:"required"`
	FirstName string       `json:"firstName"`
	LastName  string       `json:"lastName"`
	Title     string       `json:"title"`
	Tagline   string       `json:"tagline"`
	Email     string       `json:"email" validate:"omitempty,email"`
	Location  string       `json:"location"`
	Bio       string       `json:"bio"`
	Avatar    string       `json:"avatar,omitempty"`
	Resume    string       `json:"resume,omitempty"`
	Socials   []SocialLink `json:"socials" validate:"dive"`
	Story     StoryContent `json:"story"`
}
