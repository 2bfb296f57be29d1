/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/showcase/cmd"
	"github.com/cristianoliveira/showcase/internal/content"
	"github.com/cristianoliveira/showcase/internal/errors"
)

const checkCommandLong = `Validate the content directory.

USAGE:
    showcase check [DIR]

DIR defaults to content_dir, or the built-in sample when that is unset.
Every failing field is reported with its path, e.g. projects[2].accentColor.`

// NewCheckCmd creates the check command with explicit dependencies.
func NewCheckCmd(source catalogSource, handler errors.ErrorHandler) *cobra.Command {
	if source == nil || handler == nil {
		panic("NewCheckCmd: dependencies cannot be nil")
	}

	return &cobra.Command{
		Use:   "check [dir]",
		Short: "Validate content files",
		Long:  checkCommandLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			var (
				cat    *content.Catalog
				err    error
				origin = source.ContentDir()
			)
			if len(args) == 1 {
				origin = args[0]
				cat, err = content.LoadDir(origin)
			} else {
				cat, err = source.Load()
			}
			if origin == "" {
				origin = "built-in content"
			}
			if err != nil {
				errors.Report(handler, err)
				return fmt.Errorf("%s is invalid", origin)
			}
			handler.Success(fmt.Sprintf("%s is valid: %s", origin, summarize(cat)))
			return nil
		},
	}
}

func summarize(cat *content.Catalog) string {
	counts := cat.Counts()
	parts := []string{
		fmt.Sprintf("%d %s", counts[content.CollectionProjects], content.CollectionProjects),
		fmt.Sprintf("%d %s", counts[content.CollectionArtworks], content.CollectionArtworks),
		fmt.Sprintf("%d %s", counts[content.CollectionPosts], content.CollectionPosts),
	}
	if cat.Profile != nil {
		parts = append(parts, "profile "+cat.Profile.Name)
	}
	return strings.Join(parts, ", ")
}

// checkCmd represents the check command
var checkCmd = NewCheckCmd(defaultSource, errors.NewDefaultCLIHandler())

func init() {
	cmd.RootCmd.AddCommand(checkCmd)
}
