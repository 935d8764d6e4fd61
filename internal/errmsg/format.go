// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

const (
	OpConfigLoad Op = "load configuration"
	OpRun        Op = "run program"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	return FormatWith(op, "", err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return fmt.Sprintf("Failed to %s: %v", op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
