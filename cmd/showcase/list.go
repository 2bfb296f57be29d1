/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/showcase/cmd"
	"github.com/cristianoliveira/showcase/internal/content"
	"github.com/cristianoliveira/showcase/internal/format"
	"github.com/cristianoliveira/showcase/internal/search"
)

const listCommandLong = `List the portfolio content.

USAGE:
    showcase list <projects|artworks|posts> [OPTIONS]

OPTIONS:
    --rarity <rarity>      Only projects of this rarity (Mythic, Legendary, Epic, Rare, Common)
    --category <name>      Only artworks in this category
    --search <query>       Keep items matching every word; field:value limits a word
                           to one field (tech:go, tags:tui)
    --regex                Treat --search as a regular expression
    --format=<format>      Output format: table (default), simple, json
    -h, --help             Show this help

Posts are limited to published ones, newest first.`

// listFilters narrows a listing.
type listFilters struct {
	Rarity   string
	Category string
	Search   string
	Regex    bool
}

// provider picks the search strategy for the filters.
func (f listFilters) provider() (search.Provider, error) {
	if !f.Regex {
		return search.NewTokenProvider(), nil
	}
	p := search.NewRegexProvider()
	if _, err := p.(*search.RegexProvider).Compile(f.Search); err != nil {
		return nil, err
	}
	return p, nil
}

// NewListCmd creates the list command with explicit dependencies.
func NewListCmd(source catalogSource) *cobra.Command {
	if source == nil {
		panic("NewListCmd: source dependency cannot be nil")
	}

	var listFormat string
	var filters listFilters

	listCmd := &cobra.Command{
		Use:       "list <projects|artworks|posts>",
		Short:     "List projects, artworks or blog posts",
		Long:      listCommandLong,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{content.CollectionProjects, content.CollectionArtworks, content.CollectionPosts},
		RunE: func(c *cobra.Command, args []string) error {
			ftype, err := format.ParseType(listFormat)
			if err != nil {
				return err
			}
			if _, err := filters.provider(); err != nil {
				return err
			}
			cat, err := source.Load()
			if err != nil {
				return fmt.Errorf("failed to load content: %w", err)
			}
			return printCollection(c.OutOrStdout(), cat, args[0], ftype, filters)
		},
	}

	listCmd.Flags().StringVar(&filters.Rarity, "rarity", "", "Only projects of this rarity")
	listCmd.Flags().StringVar(&filters.Category, "category", "", "Only artworks in this category")
	listCmd.Flags().StringVar(&filters.Search, "search", "", "Keep items matching the query")
	listCmd.Flags().BoolVar(&filters.Regex, "regex", false, "Use regex search with --search")
	listCmd.Flags().StringVar(&listFormat, "format", string(format.FormatterTypeTable), "Output format: table, simple, json")
	return listCmd
}

// printCollection writes one collection of cat in the requested format.
func printCollection(w io.Writer, cat *content.Catalog, collection string, ftype format.FormatterType, filters listFilters) error {
	p, err := filters.provider()
	if err != nil {
		return err
	}

	switch collection {
	case content.CollectionProjects:
		rows := cat.Projects
		if filters.Rarity != "" {
			r, err := parseRarity(filters.Rarity)
			if err != nil {
				return err
			}
			rows = cat.ProjectsByRarity(r)
		}
		return writeRows(w, search.Filter(p, rows, filters.Search), ftype, format.Projects(), collection)
	case content.CollectionArtworks:
		rows := cat.Artworks
		if filters.Category != "" {
			rows = cat.ArtworksByCategory(filters.Category)
		}
		return writeRows(w, search.Filter(p, rows, filters.Search), ftype, format.Artworks(), collection)
	case content.CollectionPosts:
		return writeRows(w, search.Filter(p, cat.PublishedPosts(), filters.Search), ftype, format.Posts(), collection)
	default:
		return fmt.Errorf("unknown collection: %s (must be projects, artworks or posts)", collection)
	}
}

func writeRows[T any](w io.Writer, rows []T, ftype format.FormatterType, listing format.Listing[T], label string) error {
	if len(rows) == 0 && ftype != format.FormatterTypeJSON {
		_, err := fmt.Fprintf(w, "No %s found\n", label)
		return err
	}
	return format.NewFormatter(ftype, listing).Format(rows, w)
}

func parseRarity(s string) (content.Rarity, error) {
	for _, r := range content.Rarities {
		if strings.EqualFold(s, string(r)) {
			return r, nil
		}
	}
	names := make([]string, len(content.Rarities))
	for i, r := range content.Rarities {
		names[i] = string(r)
	}
	return "", fmt.Errorf("invalid rarity: %s (must be one of %s)", s, strings.Join(names, ", "))
}

// listCmd represents the list command
var listCmd = NewListCmd(defaultSource)

func init() {
	cmd.RootCmd.AddCommand(listCmd)
}
