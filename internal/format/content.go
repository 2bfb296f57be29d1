package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cristianoliveira/showcase/internal/content"
)

// Projects lists projects by id, rarity, year and title.
func Projects() Listing[content.Project] {
	return Listing[content.Project]{
		Columns: []Column[content.Project]{
			{Name: "ID", Width: 16, Extract: func(p content.Project) string { return p.ID }},
			{Name: "RARITY", Width: 10, Extract: func(p content.Project) string { return string(p.Rarity) }},
			{Name: "YEAR", Width: 6, Extract: func(p content.Project) string { return p.Year }},
			{Name: "TITLE", Width: 28, Extract: func(p content.Project) string { return p.Title }},
			{Name: "TECH", Width: 30, Extract: func(p content.Project) string { return strings.Join(p.Tech, ", ") }},
		},
		Summary: func(p content.Project) string {
			return fmt.Sprintf("%s - %s [%s]", p.ID, p.Title, p.Rarity)
		},
	}
}

// Artworks lists artworks by id, category and likes.
func Artworks() Listing[content.Artwork] {
	return Listing[content.Artwork]{
		Columns: []Column[content.Artwork]{
			{Name: "ID", Width: 16, Extract: func(a content.Artwork) string { return a.ID }},
			{Name: "CATEGORY", Width: 16, Extract: func(a content.Artwork) string { return a.Category }},
			{Name: "LIKES", Width: 6, Alignment: AlignRight, Extract: func(a content.Artwork) string { return strconv.Itoa(a.Likes) }},
			{Name: "TITLE", Width: 32, Extract: func(a content.Artwork) string { return a.Title }},
		},
		Summary: func(a content.Artwork) string {
			return fmt.Sprintf("%s - %s (%s)", a.ID, a.Title, a.Category)
		},
	}
}

// Posts lists blog posts by date, slug and title.
func Posts() Listing[content.BlogPost] {
	return Listing[content.BlogPost]{
		Columns: []Column[content.BlogPost]{
			{Name: "DATE", Width: 10, Extract: postDate},
			{Name: "SLUG", Width: 24, Extract: func(b content.BlogPost) string { return b.Slug }},
			{Name: "READ", Width: 8, Extract: func(b content.BlogPost) string { return b.ReadTime }},
			{Name: "TITLE", Width: 36, Extract: func(b content.BlogPost) string { return b.Title }},
		},
		Summary: func(b content.BlogPost) string {
			return fmt.Sprintf("%s - %s", postDate(b), b.Title)
		},
	}
}

func postDate(b content.BlogPost) string {
	t, ok := b.PostDate()
	if !ok {
		return b.Date
	}
	return t.Format("2006-01-02")
}
