package logging

import (
	"os"
	"path/filepath"

	clog "github.com/charmbracelet/log"
	"github.com/cristianoliveira/barangay-directory/internal/config"
)

// Config selects where and how much a run logs.
type Config struct {
	Enabled bool
	Level   clog.Level
	// Keep is how many run logs stay in Dir, the new one included.
	Keep    int
	Dir     string
	Command string
	PID     int
}

// FromConfig reads logging_enabled, logging_level and logging_max_files.
// debug forces the debug level and wins over quiet, which forces error.
func FromConfig(command string) Config {
	level, err := clog.ParseLevel(config.Get("logging_level", "info"))
	if err != nil {
		level = clog.InfoLevel
	}
	switch {
	case config.GetBool("debug", false):
		level = clog.DebugLevel
	case config.GetBool("quiet", false):
		level = clog.ErrorLevel
	}

	return Config{
		Enabled: config.GetBool("logging_enabled", false),
		Level:   level,
		Keep:    config.GetInt("logging_max_files", 10),
		Dir:     logDir(config.Get("state_dir", "")),
		Command: command,
		PID:     os.Getpid(),
	}
}

// logDir is state_dir/logs, or a directory under the system temp dir when
// no state dir is configured.
func logDir(stateDir string) string {
	if stateDir == "" {
		return filepath.Join(os.TempDir(), "barangay", "logs")
	}
	return filepath.Join(stateDir, "logs")
}
