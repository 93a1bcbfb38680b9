// Package logging writes the directory's structured run log: one JSON file
// per command run under state_dir/logs, with resident PII scrubbed.
package logging

import (
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the structured logger handed to the directory, the TUI and the
// import and hook runners.
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)
	With(kv ...any) Logger
}

// runLogger writes scrubbed key-value pairs through charmbracelet/log.
type runLogger struct {
	base *clog.Logger
}

func newRunLogger(w io.Writer, level clog.Level) *runLogger {
	base := clog.NewWithOptions(w, clog.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02T15:04:05.000Z07:00",
		Level:           level,
	})
	base.SetFormatter(clog.JSONFormatter)
	return &runLogger{base: base}
}

func (l *runLogger) Debug(msg string, kv ...any) { l.base.Debug(msg, scrub(kv)...) }
func (l *runLogger) Info(msg string, kv ...any)  { l.base.Info(msg, scrub(kv)...) }
func (l *runLogger) Warn(msg string, kv ...any)  { l.base.Warn(msg, scrub(kv)...) }
func (l *runLogger) Error(msg string, kv ...any) { l.base.Error(msg, scrub(kv)...) }

func (l *runLogger) With(kv ...any) Logger {
	return &runLogger{base: l.base.With(scrub(kv)...)}
}

// Discard drops everything. It is the logger until Start succeeds with
// logging enabled.
var Discard Logger = discard{}

type discard struct{}

func (discard) Debug(string, ...any) {}
func (discard) Info(string, ...any)  {}
func (discard) Warn(string, ...any)  {}
func (discard) Error(string, ...any) {}
func (discard) With(...any) Logger   { return discard{} }

// Run is an open run log.
type Run struct {
	Logger
	Path string
	file *os.File
}

// Close closes the log file.
func (r *Run) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	return r.file.Close()
}

// Open prunes old run logs in cfg.Dir and starts a new one. A disabled
// config returns a Run over Discard with no file.
func Open(cfg Config) (*Run, error) {
	if !cfg.Enabled {
		return &Run{Logger: Discard}, nil
	}
	if err := os.MkdirAll(cfg.Dir, 0o700); err != nil {
		return nil, err
	}
	prune(cfg.Dir, cfg.Keep-1)

	path := runFilePath(cfg)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, err
	}
	l := newRunLogger(f, cfg.Level).With("command", cfg.Command, "pid", cfg.PID)
	return &Run{Logger: l, Path: path, file: f}, nil
}
