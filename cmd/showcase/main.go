/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"os"
	"time"

	"github.com/cristianoliveira/showcase/cmd"
	"github.com/cristianoliveira/showcase/internal/colors"
	"github.com/cristianoliveira/showcase/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], cmd.Execute))
}

// run executes the CLI and returns the exit code. Structured lifecycle logs are
// skipped for the TUI, which owns the terminal.
func run(args []string, execute func() error) int {
	tui := isTUICommand(args)
	if tui {
		colors.DisableStructuredLogging()
		defer colors.EnableStructuredLogging()
	}
	started := time.Now()
	ev := colors.Event{Component: "startup", Action: "main", Status: "started"}
	colors.EmitInfo(ev)
	defer func() {
		if err := logging.ShutdownGlobal(); err != nil {
			colors.Debug("failed to close log file: " + err.Error())
		}
	}()

	err := execute()
	ev.Fields = map[string]any{"elapsed_ms": time.Since(started).Milliseconds()}
	if err != nil {
		ev.Status = "failed"
		colors.EmitError(ev, err)
		return 1
	}
	ev.Status = "completed"
	colors.EmitInfo(ev)
	return 0
}

// isTUICommand reports whether args start the interactive view, which is
// also what a bare invocation does.
func isTUICommand(args []string) bool {
	for _, a := range args {
		switch a {
		case "-h", "--help", "-v", "--version":
			return false
		}
		if len(a) > 0 && a[0] == '-' {
			continue
		}
		return a == "tui"
	}
	return true
}
