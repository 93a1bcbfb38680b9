// Package errors routes user-facing failures to the CLI or the TUI status line.
package errors

import (
	stderrors "errors"

	"github.com/cristianoliveira/barangay-directory/internal/colors"
	"github.com/cristianoliveira/barangay-directory/internal/directory"
	"github.com/cristianoliveira/barangay-directory/internal/hooks"
	"github.com/cristianoliveira/barangay-directory/internal/resident"
)

// ErrorHandler is where a command or the TUI sends its user-facing messages.
type ErrorHandler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Success(msg string)
}

// Report sends err to h with a severity matching what the user can do about it.
// A nil err is ignored.
func Report(h ErrorHandler, err error) {
	if err == nil {
		return
	}
	msg, kind := Classify(err)
	switch kind {
	case MessageTypeInfo:
		h.Info(msg)
	case MessageTypeWarning:
		h.Warning(msg)
	default:
		h.Error(msg)
	}
}

// Classify maps directory failures to a message and its severity.
func Classify(err error) (string, MessageType) {
	var perr *directory.PersistenceError
	isPersistence := stderrors.As(err, &perr)

	switch {
	case stderrors.Is(err, directory.ErrNoSelection):
		return "Select a resident first", MessageTypeInfo
	case stderrors.Is(err, directory.ErrNotFound):
		return "Resident record not found; it may have been archived", MessageTypeWarning
	case stderrors.Is(err, resident.ErrInvalidResident):
		return err.Error(), MessageTypeWarning
	case stderrors.Is(err, directory.ErrOutOfRange):
		return err.Error(), MessageTypeInfo
	case stderrors.Is(err, hooks.ErrHookFailed) && isPersistence:
		return "A hook stopped the " + perr.Op + ": " + perr.Err.Error(), MessageTypeWarning
	case isPersistence:
		return "Could not " + perr.Op + " resident: " + perr.Err.Error(), MessageTypeError
	default:
		return err.Error(), MessageTypeError
	}
}

// ColorOutput is the console surface CLIHandler writes to. *colors.Console
// satisfies it.
type ColorOutput interface {
	Error(msgs ...string)
	Warning(msgs ...string)
	Info(msgs ...string)
	Success(msgs ...string)
}

// CLIHandler prints messages on a console.
type CLIHandler struct {
	out ColorOutput
}

var _ ErrorHandler = (*CLIHandler)(nil)

// NewCLIHandler creates a handler printing on out.
func NewCLIHandler(out ColorOutput) *CLIHandler {
	return &CLIHandler{out: out}
}

// NewDefaultCLIHandler creates a handler printing on the process console.
func NewDefaultCLIHandler() *CLIHandler {
	return NewCLIHandler(colors.Std())
}

func (h *CLIHandler) Error(msg string)   { h.out.Error(msg) }
func (h *CLIHandler) Warning(msg string) { h.out.Warning(msg) }
func (h *CLIHandler) Info(msg string)    { h.out.Info(msg) }
func (h *CLIHandler) Success(msg string) { h.out.Success(msg) }
