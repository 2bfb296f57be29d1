// Package logging provides structured file logging for showcase.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/showcase/internal/config"
)

// Config holds logging configuration.
type Config struct {
	Enabled  bool
	Level    string
	MaxFiles int
	// StateDir holds the logs/ directory. Empty means the system temp dir.
	StateDir string
	// Command names the run, e.g. "tui" or "list projects".
	Command string
	PID     int
}

// DefaultConfig returns a disabled Config for the current process.
func DefaultConfig() Config {
	return Config{
		Level:    "info",
		MaxFiles: 10,
		Command:  filepath.Base(os.Args[0]),
		PID:      os.Getpid(),
	}
}

// FromGlobalConfig creates a logging Config from the global configuration.
// Debug mode forces the debug level so carousel transitions are recorded.
func FromGlobalConfig() Config {
	cfg := DefaultConfig()
	cfg.Enabled = config.GetBool("logging_enabled", false)
	cfg.Level = config.Get("logging_level", cfg.Level)
	cfg.MaxFiles = config.GetInt("logging_max_files", cfg.MaxFiles)
	cfg.StateDir = config.Get("state_dir", "")
	if config.GetBool("debug", false) {
		cfg.Level = "debug"
	}
	return cfg
}

// LogDir creates and returns {StateDir}/logs, falling back to
// {os.TempDir()}/showcase/logs when the state dir is unset or read-only.
func (c Config) LogDir() (string, error) {
	if c.StateDir != "" {
		dir := filepath.Join(c.StateDir, "logs")
		if err := os.MkdirAll(dir, 0700); err == nil && writable(dir) {
			return dir, nil
		}
	}
	dir := filepath.Join(os.TempDir(), "showcase", "logs")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("create log dir %s: %w", dir, err)
	}
	return dir, nil
}

// fileName is showcase_<timestamp>_PID<pid>_<command>.log.
func (c Config) fileName(stamp string) string {
	cmd := strings.Join(strings.Fields(c.Command), "_")
	return fmt.Sprintf("%s%s_PID%d_%s.log", logFilePrefix, stamp, c.PID, cmd)
}

func writable(dir string) bool {
	f, err := os.CreateTemp(dir, ".probe")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}
