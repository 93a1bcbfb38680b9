package colors

import (
	clog "github.com/charmbracelet/log"
)

// SuppressEvents stops lifecycle events. The browser calls it because the
// alternate screen owns the terminal.
func (c *Console) SuppressEvents() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = false
}

// Event writes one JSON line to errOut describing a process lifecycle step,
// such as a command starting or failing. Events only show in debug mode.
func (c *Console) Event(component, action, status string, err error, kv ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.debug || !c.events {
		return
	}

	level := clog.InfoLevel
	fields := []any{"component", component, "action", action, "status", status}
	if err != nil {
		level = clog.ErrorLevel
		fields = append(fields, "error", err.Error())
	}
	l := clog.NewWithOptions(c.errOut, clog.Options{
		ReportTimestamp: true,
		Formatter:       clog.JSONFormatter,
	})
	l.Log(level, action, append(fields, kv...)...)
}

func SuppressEvents() { std.SuppressEvents() }

func Event(component, action, status string, err error, kv ...any) {
	std.Event(component, action, status, err, kv...)
}
