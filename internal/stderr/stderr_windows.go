//go:build windows

// Package stderr is a no-op on Windows, where fd-level redirection via dup2
// is unavailable.
package stderr

import "os"

// Messages is never written to on Windows.
var Messages = make(chan string, 1)

// Start is a no-op on Windows.
func Start() error {
	return nil
}

// WriteOriginal writes to stderr.
func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop is a no-op on Windows.
func Stop() {}
