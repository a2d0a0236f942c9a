package pmerrors

import (
	"errors"
	"fmt"
	"strings"
)

// ToCMDError formats an error for display in place of a password or in CLI
// output. Format: [CODE] Message.
func ToCMDError(err error) string {
	if err == nil {
		return ""
	}
	var coded *Error
	if errors.As(err, &coded) {
		return fmt.Sprintf("[%s] %s", coded.Code, coded.Message)
	}
	return fmt.Sprintf("[%s] %s", CodeInternal, err.Error())
}

// ToCMDErrorWithStack appends the captured stack trace, for debug output.
func ToCMDErrorWithStack(err error) string {
	msg := ToCMDError(err)
	if msg == "" {
		return ""
	}
	var coded *Error
	if !errors.As(err, &coded) || len(coded.StackTrace) == 0 {
		return msg
	}
	var sb strings.Builder
	sb.WriteString(msg)
	sb.WriteString("\nStack Trace:\n")
	for _, frame := range coded.StackTrace {
		fmt.Fprintf(&sb, "  at %s:%d %s\n", frame.File, frame.Line, frame.Function)
	}
	return sb.String()
}
