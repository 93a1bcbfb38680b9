// Package hooks runs user scripts around changes to the directory.
//
// Scripts live in <hooks_dir>/<hook point>/ and run in name order. Only
// executable regular files are run. Each script receives the hook point and
// the resident id and name through BARANGAY_* environment variables.
package hooks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cristianoliveira/barangay-directory/internal/colors"
	"github.com/cristianoliveira/barangay-directory/internal/config"
	"github.com/cristianoliveira/barangay-directory/internal/logging"
)

// Hook points.
const (
	PreCreate   = "pre-create"
	PostCreate  = "post-create"
	PreUpdate   = "pre-update"
	PostUpdate  = "post-update"
	PreArchive  = "pre-archive"
	PostArchive = "post-archive"
)

// IsPost reports whether point runs after the write. The write has already
// happened there, so a failing post script is never fatal.
func IsPost(point string) bool {
	return strings.HasPrefix(point, "post-")
}

// Failure modes.
const (
	FailureAbort  = "abort"
	FailureWarn   = "warn"
	FailureIgnore = "ignore"
)

const defaultTimeout = 30 * time.Second

// ErrHookFailed is returned by Run in abort mode when a pre script fails.
var ErrHookFailed = errors.New("hook failed")

// Runner executes the scripts of a hook point.
type Runner struct {
	dir     string
	mode    string
	timeout time.Duration
	warn    func(msg string)
	log     logging.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithFailureMode sets what a failing script does: abort, warn or ignore.
func WithFailureMode(mode string) Option {
	return func(r *Runner) {
		switch mode {
		case FailureAbort, FailureWarn, FailureIgnore:
			r.mode = mode
		}
	}
}

// WithTimeout bounds each script's run time.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithWarn replaces the console warning used in warn mode. The TUI passes a
// function that does not write to the terminal.
func WithWarn(fn func(msg string)) Option {
	return func(r *Runner) {
		if fn != nil {
			r.warn = fn
		}
	}
}

// NewRunner creates a runner for scripts under dir.
func NewRunner(dir string, opts ...Option) *Runner {
	r := &Runner{
		dir:     dir,
		mode:    FailureWarn,
		timeout: defaultTimeout,
		warn:    func(msg string) { colors.Warning(msg) },
		log:     logging.Component("hooks"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FromConfig builds a runner from hooks_dir, hooks_failure_mode and hooks_timeout.
func FromConfig(opts ...Option) *Runner {
	base := []Option{
		WithFailureMode(config.Get("hooks_failure_mode", FailureWarn)),
		WithTimeout(time.Duration(config.GetInt("hooks_timeout", 30)) * time.Second),
	}
	return NewRunner(config.Get("hooks_dir", ""), append(base, opts...)...)
}

// Scripts lists the executable scripts for point in run order.
// A missing directory has no scripts.
func (r *Runner) Scripts(point string) []string {
	if r.dir == "" {
		return nil
	}
	hookDir := filepath.Join(r.dir, point)
	entries, err := os.ReadDir(hookDir)
	if err != nil {
		return nil
	}

	var scripts []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(hookDir, e.Name())
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() || info.Mode()&0o111 == 0 {
			continue
		}
		scripts = append(scripts, path)
	}
	sort.Strings(scripts)
	return scripts
}

// Run executes every script for point with env added to the process
// environment. At a pre point in abort mode the first failure stops the run
// and is returned wrapping ErrHookFailed. Otherwise every script runs,
// failures are reported and Run returns nil; post points treat abort as warn.
func (r *Runner) Run(ctx context.Context, point string, env map[string]string) error {
	scripts := r.Scripts(point)
	if len(scripts) == 0 {
		return nil
	}
	r.log.Debug("running hooks", "point", point, "scripts", len(scripts))

	mode := r.mode
	if mode == FailureAbort && IsPost(point) {
		mode = FailureWarn
	}

	environ := r.environ(point, env)
	for _, script := range scripts {
		err := r.runScript(ctx, script, environ)
		if err == nil {
			continue
		}

		name := filepath.Base(script)
		switch mode {
		case FailureAbort:
			r.log.Error("hook aborted", "point", point, "script", name, "error", err)
			return fmt.Errorf("%w: %s/%s: %v", ErrHookFailed, point, name, err)
		case FailureWarn:
			r.log.Warn("hook failed", "point", point, "script", name, "error", err)
			r.warn(fmt.Sprintf("hook %s/%s failed: %v", point, name, err))
		default:
			r.log.Debug("hook failed", "point", point, "script", name, "error", err)
		}
	}
	return nil
}

func (r *Runner) runScript(ctx context.Context, script string, environ []string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	cmd := exec.CommandContext(ctx, script)
	cmd.Env = environ
	cmd.WaitDelay = time.Second
	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	err := cmd.Run()
	if out := strings.TrimSpace(output.String()); out != "" {
		r.log.Info("hook output", "script", filepath.Base(script), "output", out)
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("timed out after %s", r.timeout)
	}
	if err != nil {
		return err
	}
	r.log.Debug("hook completed", "script", filepath.Base(script), "duration", time.Since(start).String())
	return nil
}

func (r *Runner) environ(point string, env map[string]string) []string {
	out := append([]string{}, os.Environ()...)
	out = append(out,
		"BARANGAY_HOOK_POINT="+point,
		"BARANGAY_HOOK_TIMESTAMP="+time.Now().Format(time.RFC3339),
	)
	if exe, err := os.Executable(); err == nil {
		out = append(out, "BARANGAY_BINARY="+exe)
	}

	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, k+"="+env[k])
	}
	return out
}
