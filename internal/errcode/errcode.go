// Package errcode provides typed, code-carrying errors for the accessibility runtime.
package errcode

import (
	"errors"
	"fmt"
)

// Code identifies a class of runtime failure.
type Code string

const (
	// ShortcutConflict is returned when a binding with the same combination
	// already exists in the target context.
	ShortcutConflict Code = "SHORTCUT_CONFLICT"

	// InvalidColor is returned for color strings that cannot be parsed.
	InvalidColor Code = "INVALID_COLOR"

	// ValidationError wraps unexpected failures during contrast computation.
	ValidationError Code = "VALIDATION_ERROR"

	// AnnouncementFailed is returned when an announcement cannot be queued.
	AnnouncementFailed Code = "ANNOUNCEMENT_FAILED"

	// FocusTrapError is returned for focus trap misuse.
	FocusTrapError Code = "FOCUS_TRAP_ERROR"

	// NoRegionAvailable is returned when an announcer has no live region sink.
	NoRegionAvailable Code = "NO_REGION_AVAILABLE"

	// RegionNotFound is returned when addressing an unknown live region.
	RegionNotFound Code = "REGION_NOT_FOUND"

	// ManagerDestroyed is returned when an engine is used after Destroy.
	ManagerDestroyed Code = "MANAGER_DESTROYED"
)

// Error is a failure tagged with a Code.
type Error struct {
	Code    Code
	Message string
	Err     error // wrapped cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error around a cause.
func Wrap(code Code, err error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Err: err}
}

// CodeOf extracts the Code from an error chain, or "" if none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Is reports whether the error chain carries the given code.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}
