package colors

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, target **os.File, fn func()) string {
	t.Helper()

	old := *target
	r, w, err := os.Pipe()
	require.NoError(t, err)
	*target = w
	defer func() { *target = old }()

	fn()

	require.NoError(t, w.Close())
	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	return buf.String()
}

type recordingLogger struct {
	entries []string
}

func (r *recordingLogger) Debug(msg string, args ...any) { r.entries = append(r.entries, "debug:"+msg) }
func (r *recordingLogger) Info(msg string, args ...any)  { r.entries = append(r.entries, "info:"+msg) }
func (r *recordingLogger) Warn(msg string, args ...any)  { r.entries = append(r.entries, "warn:"+msg) }
func (r *recordingLogger) Error(msg string, args ...any) { r.entries = append(r.entries, "error:"+msg) }

func TestConsoleOutput(t *testing.T) {
	tests := []struct {
		name   string
		target **os.File
		print  func(...string)
		want   []string
	}{
		{name: "error", target: &os.Stderr, print: Error, want: []string{"Error:", "something went wrong", Red}},
		{name: "success", target: &os.Stdout, print: Success, want: []string{checkmark, "something went wrong", Green}},
		{name: "warning", target: &os.Stderr, print: Warning, want: []string{"Warning:", "something went wrong", Yellow}},
		{name: "info", target: &os.Stdout, print: Info, want: []string{"something went wrong", Blue}},
		{name: "log info", target: &os.Stderr, print: LogInfo, want: []string{"something went wrong", Blue}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := capture(t, tt.target, func() { tt.print("something", "went wrong") })
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestDebugGatedBySetDebug(t *testing.T) {
	SetDebug(false)
	defer SetDebug(false)

	out := capture(t, &os.Stderr, func() { Debug("hidden") })
	assert.Empty(t, out)

	SetDebug(true)
	assert.True(t, DebugEnabled())
	out = capture(t, &os.Stderr, func() { Debug("shown") })
	assert.Contains(t, out, "Debug:")
	assert.Contains(t, out, "shown")
}

func TestMessagesMirrorToLogger(t *testing.T) {
	rec := &recordingLogger{}
	SetLogger(rec)
	defer SetLogger(nil)
	SetDebug(true)
	defer SetDebug(false)

	capture(t, &os.Stderr, func() {
		capture(t, &os.Stdout, func() {
			Error("e")
			Warning("w")
			Info("i")
			Success("s")
			Debug("d")
		})
	})

	assert.Equal(t, []string{"error:e", "warn:w", "info:i", "info:s", "debug:d"}, rec.entries)
}

func TestStructuredLogGating(t *testing.T) {
	EnableStructuredLogging()
	defer EnableStructuredLogging()
	SetDebug(false)
	defer SetDebug(false)

	out := capture(t, &os.Stderr, func() {
		EmitInfo(Event{Component: "carousel", Action: "advance", Status: "skipped"})
	})
	assert.Empty(t, out)

	SetDebug(true)
	DisableStructuredLogging()
	out = capture(t, &os.Stderr, func() {
		EmitInfo(Event{Component: "carousel", Action: "advance", Status: "skipped"})
	})
	assert.Empty(t, out)

	EnableStructuredLogging()
	out = capture(t, &os.Stderr, func() {
		EmitError(Event{Component: "content", Action: "load", Status: "failed", ID: "projects", Fields: map[string]any{"count": 3}}, errors.New("boom"))
	})
	var entry StructuredLogEntry
	require.NoError(t, json.Unmarshal(bytes.TrimSpace([]byte(out)), &entry))
	assert.Equal(t, LevelError, entry.Level)
	assert.Equal(t, "content", entry.Component)
	assert.Equal(t, "load", entry.Action)
	assert.Equal(t, "boom", entry.Error)
	assert.Equal(t, "projects", entry.ID)
	assert.EqualValues(t, 3, entry.Fields["count"])
}
