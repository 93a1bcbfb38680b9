// Package colors prints the CLI's status lines and mirrors each one into
// the run log.
package colors

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	clog "github.com/charmbracelet/log"
)

// ANSI colors shared with the list formatter and the TUI styles.
const (
	Red    = "\033[0;31m"
	Green  = "\033[0;32m"
	Yellow = "\033[1;33m"
	Blue   = "\033[0;34m"
	Cyan   = "\033[0;36m"
	Reset  = "\033[0m"
)

// Logger receives every line the console prints.
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)
}

// Console writes results (info, success) to out and diagnostics (warning,
// error, debug) to errOut.
type Console struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
	debug  bool
	quiet  bool
	events bool
	log    Logger
}

// NewConsole creates a console writing to out and errOut.
func NewConsole(out, errOut io.Writer) *Console {
	return &Console{out: out, errOut: errOut, events: true}
}

// SetDebug shows or hides debug lines and lifecycle events.
func (c *Console) SetDebug(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.debug = enabled
}

// SetQuiet hides info and success lines. They are still logged.
func (c *Console) SetQuiet(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quiet = enabled
}

// SetLogger mirrors every line into l. A nil l stops mirroring.
func (c *Console) SetLogger(l Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.log = l
}

// Error prints "Error: msg" to errOut.
func (c *Console) Error(msgs ...string) {
	msg := strings.Join(msgs, " ")
	c.mirror(clog.ErrorLevel, msg)
	c.print(c.errOut, fmt.Sprintf("%sError:%s %s\n", Red, Reset, msg), true)
}

// Warning prints "Warning: msg" to errOut.
func (c *Console) Warning(msgs ...string) {
	msg := strings.Join(msgs, " ")
	c.mirror(clog.WarnLevel, msg)
	c.print(c.errOut, fmt.Sprintf("%sWarning:%s %s\n", Yellow, Reset, msg), true)
}

// Info prints msg to out.
func (c *Console) Info(msgs ...string) {
	msg := strings.Join(msgs, " ")
	c.mirror(clog.InfoLevel, msg)
	c.print(c.out, fmt.Sprintf("%s%s%s\n", Blue, msg, Reset), !c.isQuiet())
}

// Success prints "✓ msg" to out.
func (c *Console) Success(msgs ...string) {
	msg := strings.Join(msgs, " ")
	c.mirror(clog.InfoLevel, msg, "type", "success")
	c.print(c.out, fmt.Sprintf("%s✓%s %s\n", Green, Reset, msg), !c.isQuiet())
}

// Debug prints "Debug: msg" to errOut when debug is on.
func (c *Console) Debug(msgs ...string) {
	if !c.isDebug() {
		return
	}
	msg := strings.Join(msgs, " ")
	c.mirror(clog.DebugLevel, msg)
	c.print(c.errOut, fmt.Sprintf("%sDebug:%s %s\n", Cyan, Reset, msg), true)
}

func (c *Console) mirror(level clog.Level, msg string, kv ...any) {
	c.mu.Lock()
	l := c.log
	c.mu.Unlock()
	if l == nil {
		return
	}
	switch level {
	case clog.ErrorLevel:
		l.Error(msg, kv...)
	case clog.WarnLevel:
		l.Warn(msg, kv...)
	case clog.DebugLevel:
		l.Debug(msg, kv...)
	default:
		l.Info(msg, kv...)
	}
}

// print writes line when show is set. A console that cannot write has
// nowhere left to report it, so write errors are dropped.
func (c *Console) print(w io.Writer, line string, show bool) {
	if !show {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = io.WriteString(w, line)
}

func (c *Console) isQuiet() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.quiet
}

func (c *Console) isDebug() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.debug
}

var std = NewConsole(os.Stdout, os.Stderr)

// Std returns the process console.
func Std() *Console { return std }

func SetDebug(enabled bool) { std.SetDebug(enabled) }
func SetQuiet(enabled bool) { std.SetQuiet(enabled) }
func SetLogger(l Logger)    { std.SetLogger(l) }

func Error(msgs ...string)   { std.Error(msgs...) }
func Warning(msgs ...string) { std.Warning(msgs...) }
func Info(msgs ...string)    { std.Info(msgs...) }
func Success(msgs ...string) { std.Success(msgs...) }
func Debug(msgs ...string)   { std.Debug(msgs...) }
