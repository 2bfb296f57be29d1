package colors

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

var (
	structuredMu       sync.Mutex
	structuredDisabled atomic.Bool
)

// StructuredLogLevel represents log level for structured logs.
type StructuredLogLevel string

const (
	LevelDebug StructuredLogLevel = "debug"
	LevelInfo  StructuredLogLevel = "info"
	LevelWarn  StructuredLogLevel = "warn"
	LevelError StructuredLogLevel = "error"
)

// Event describes one lifecycle step, e.g. {Component: "startup", Action: "main",
// Status: "completed"}.
type Event struct {
	Component string
	Action    string
	Status    string
	ID        string
	Err       error
	Fields    map[string]any
}

// StructuredLogEntry is the JSON line written for an Event.
type StructuredLogEntry struct {
	Timestamp string             `json:"timestamp"`
	Level     StructuredLogLevel `json:"level"`
	Component string             `json:"component"`
	Action    string             `json:"action"`
	Status    string             `json:"status"`
	Error     string             `json:"error,omitempty"`
	ID        string             `json:"id,omitempty"`
	Fields    map[string]any     `json:"fields,omitempty"`
}

// DisableStructuredLogging disables structured logging output.
// The TUI turns it off while the alternate screen owns the terminal.
func DisableStructuredLogging() {
	structuredDisabled.Store(true)
}

// EnableStructuredLogging enables structured logging output.
func EnableStructuredLogging() {
	structuredDisabled.Store(false)
}

// Emit writes ev as a JSON line on stderr when debug mode is on.
func Emit(level StructuredLogLevel, ev Event) {
	if !debugEnabled.Load() || structuredDisabled.Load() {
		return
	}

	entry := StructuredLogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level,
		Component: ev.Component,
		Action:    ev.Action,
		Status:    ev.Status,
		ID:        ev.ID,
		Fields:    ev.Fields,
	}
	if ev.Err != nil {
		entry.Error = ev.Err.Error()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		errorFallback(fmt.Sprintf("failed to marshal structured log: %v", err))
		return
	}

	structuredMu.Lock()
	defer structuredMu.Unlock()
	if _, err := fmt.Fprintf(os.Stderr, "%s\n", data); err != nil {
		errorFallback(fmt.Sprintf("failed to write structured log: %v", err))
	}
}

// EmitInfo writes ev at info level.
func EmitInfo(ev Event) { Emit(LevelInfo, ev) }

// EmitError writes ev at error level; err is attached to the entry.
func EmitError(ev Event, err error) {
	ev.Err = err
	Emit(LevelError, ev)
}
