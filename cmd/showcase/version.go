/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/showcase/cmd"
	"github.com/cristianoliveira/showcase/internal/version"
)

// NewVersionCmd creates the version command; versionFn reports the version string.
func NewVersionCmd(versionFn func() string) *cobra.Command {
	if versionFn == nil {
		panic("NewVersionCmd: versionFn dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show the current version of showcase.`,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			fmt.Fprintf(c.OutOrStdout(), "showcase version %s\n", versionFn())
			return nil
		},
	}
}

// versionCmd represents the version command
var versionCmd = NewVersionCmd(version.String)

func init() {
	cmd.RootCmd.AddCommand(versionCmd)
}
