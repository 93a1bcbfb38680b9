package logging

import (
	"sync"

	"github.com/cristianoliveira/barangay-directory/internal/colors"
)

var (
	mu      sync.RWMutex
	current Logger = Discard
	run     *Run
)

// Start opens the run log described by the loaded config and makes it the
// process logger. Console output is mirrored into it. A previous run log is
// closed first.
func Start(command string) error {
	r, err := Open(FromConfig(command))
	if err != nil {
		return err
	}

	mu.Lock()
	prev := run
	run, current = r, r.Logger
	mu.Unlock()
	_ = prev.Close()

	if r.Path != "" {
		colors.SetLogger(r.Logger)
		colors.Debug("logging to", r.Path)
	}
	return nil
}

// Stop closes the run log and falls back to Discard.
func Stop() error {
	mu.Lock()
	r := run
	run, current = nil, Discard
	mu.Unlock()

	colors.SetLogger(nil)
	return r.Close()
}

// Path returns the file of the current run log, or "".
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	if run == nil {
		return ""
	}
	return run.Path
}

// Get returns the process logger.
func Get() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Component returns the process logger tagged with component.
func Component(name string) Logger {
	return Get().With("component", name)
}

// Warn logs through the process logger.
func Warn(msg string, kv ...any) {
	Get().Warn(msg, kv...)
}
