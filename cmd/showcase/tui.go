/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cristianoliveira/showcase/cmd"
	"github.com/cristianoliveira/showcase/internal/carousel"
	"github.com/cristianoliveira/showcase/internal/colors"
	"github.com/cristianoliveira/showcase/internal/config"
	"github.com/cristianoliveira/showcase/internal/content"
	"github.com/cristianoliveira/showcase/internal/logging"
	"github.com/cristianoliveira/showcase/internal/tui/state"
)

const tuiCommandLong = `Browse projects and artworks on autoplaying carousels.

USAGE:
    showcase tui

KEY BINDINGS:
    ←/h, →/l    Previous / next card
    1-9         Jump to a card
    Enter       Open the active card's details
    Click       Open the centre card, or bring a side card to the centre
    Space       Hold / release autoplay
    Tab         Switch between projects and gallery
    r           Reload content (content_dir only)
    ESC         Close details, or quit
    q           Quit

Content comes from content_dir when set, otherwise from the built-in sample.
With watch_content enabled, edits to content_dir show up while browsing.`

// programRunner runs the model until the user quits.
type programRunner func(m *state.Model) error

// NewTUICmd creates the tui command with explicit dependencies.
func NewTUICmd(source catalogSource, run programRunner) *cobra.Command {
	if source == nil || run == nil {
		panic("NewTUICmd: dependencies cannot be nil")
	}

	return &cobra.Command{
		Use:   "tui",
		Short: "Browse the portfolio interactively (default)",
		Long:  tuiCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			opts, cleanup, err := buildTUIOptions(c.Context(), source)
			if err != nil {
				return err
			}
			defer cleanup()

			model := state.NewModel(opts)
			defer model.Shutdown()
			return run(model)
		},
	}
}

// buildTUIOptions loads content and carousel settings. The returned cleanup
// stops the content watcher, if one was started.
func buildTUIOptions(ctx context.Context, source catalogSource) (state.Options, func(), error) {
	noop := func() {}
	projects, err := carouselConfig("projects", carousel.ClickActiveOnly.String(), carousel.DefaultAutoPlayInterval)
	if err != nil {
		return state.Options{}, noop, err
	}
	gallery, err := carouselConfig("gallery", carousel.ClickRecenter.String(), 4*time.Second)
	if err != nil {
		return state.Options{}, noop, err
	}

	cat, err := source.Load()
	if err != nil {
		return state.Options{}, noop, fmt.Errorf("failed to load content: %w", err)
	}

	logger := logging.GetGlobal()
	opts := state.Options{
		Catalog:  cat,
		Projects: projects,
		Gallery:  gallery,
		Logger:   logger,
		Markdown: state.NewGlamourRenderer(markdownStyle()),
	}

	dir := source.ContentDir()
	if dir == "" {
		return opts, noop, nil
	}
	opts.Loader = source.Load
	if !config.GetBool("watch_content", false) {
		return opts, noop, nil
	}

	if ctx == nil {
		ctx = context.Background()
	}
	w, err := content.NewWatcher(dir, content.WithWatcherLogger(logger))
	if err != nil {
		return state.Options{}, noop, fmt.Errorf("failed to watch content: %w", err)
	}
	if err := w.Start(ctx); err != nil {
		w.Stop()
		return state.Options{}, noop, fmt.Errorf("failed to watch content: %w", err)
	}
	opts.Reloads = w.Reloads()
	return opts, w.Stop, nil
}

// markdownStyle picks the glamour style up front; querying the terminal once the
// program owns stdin would race with its input reader.
func markdownStyle() string {
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

func runProgram(m *state.Model) error {
	colors.DisableStructuredLogging()
	defer colors.EnableStructuredLogging()

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

// tuiCmd represents the tui command
var tuiCmd = NewTUICmd(defaultSource, runProgram)

func init() {
	cmd.RootCmd.AddCommand(tuiCmd)
	cmd.RootCmd.Args = cobra.NoArgs
	cmd.RootCmd.RunE = tuiCmd.RunE
}
