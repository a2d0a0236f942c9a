// Package pmerrors carries the typed errors the derivation engine and the
// persistence gateway return. Errors propagate as values; nothing in this
// system panics on malformed user configuration.
package pmerrors

import (
	"errors"
	"fmt"
	"runtime"
)

// Error is a coded error with an optional cause and the stack captured at
// creation.
type Error struct {
	Code       Code
	Message    string
	Cause      error
	StackTrace []StackFrame
}

// StackFrame is a single frame of the captured stack.
type StackFrame struct {
	File     string
	Line     int
	Function string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a coded error.
func New(code Code, message string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		StackTrace: captureStackTrace(),
	}
}

// Newf creates a coded error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap attaches a code and message to an existing error. A nil err yields
// nil. When err is already a coded error its original stack is preserved.
func Wrap(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	var original *Error
	if errors.As(err, &original) {
		return &Error{
			Code:       code,
			Message:    message,
			Cause:      err,
			StackTrace: original.StackTrace,
		}
	}
	return &Error{
		Code:       code,
		Message:    message,
		Cause:      err,
		StackTrace: captureStackTrace(),
	}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, code Code, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code == code
	}
	return false
}

// GetCode extracts the code from err, defaulting to CodeInternal for
// uncoded errors.
func GetCode(err error) Code {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeInternal
}

// IsConfig reports whether err belongs to the persistence error family.
func IsConfig(err error) bool {
	var coded *Error
	return errors.As(err, &coded) && coded.Code.IsConfig()
}

// IsSettings reports whether err belongs to the derivation-parameter error
// family.
func IsSettings(err error) bool {
	var coded *Error
	return errors.As(err, &coded) && coded.Code.IsSettings()
}

func captureStackTrace() []StackFrame {
	const maxDepth = 16
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])

	frames := make([]StackFrame, 0, n)
	for i := 0; i < n; i++ {
		fn := runtime.FuncForPC(pcs[i])
		if fn == nil {
			continue
		}
		file, line := fn.FileLine(pcs[i])
		frames = append(frames, StackFrame{File: file, Line: line, Function: fn.Name()})
	}
	return frames
}
