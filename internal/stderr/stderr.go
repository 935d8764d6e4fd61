//go:build !windows

// Package stderr captures writes to file descriptor 2 so that stray output
// from linked libraries or child code cannot corrupt the alternate-screen
// layout. Captured lines are surfaced on a channel for the UI to display.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"syscall"
)

// Messages receives captured stderr lines. Read from this channel to show
// them inside the UI instead of over it.
var Messages = make(chan string, 100)

var (
	origStderr int
	pipeRead   *os.File
	pipeWrite  *os.File
	started    bool
)

// Start redirects fd 2 into a pipe and begins forwarding lines to Messages.
// Call it in main() before entering the alternate screen. Failure is not
// fatal: without capture, stderr simply prints over the UI.
func Start() error {
	if started {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	origStderr, err = syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(origStderr)
		r.Close()
		w.Close()
		return err
	}

	pipeRead = r
	pipeWrite = w
	started = true

	go func() {
		scanner := bufio.NewScanner(pipeRead)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			select {
			case Messages <- line:
			default:
				// Channel full, drop the line rather than block the reader.
			}
		}
	}()

	return nil
}

// WriteOriginal writes directly to the saved stderr, bypassing capture.
// Used for fatal errors that must stay visible after the UI tears down.
func WriteOriginal(msg string) {
	if origStderr > 0 {
		_, _ = syscall.Write(origStderr, []byte(msg))
	}
}

// Stop restores the original fd 2 and closes the capture pipe. Call on
// program exit.
func Stop() {
	if !started {
		return
	}

	_ = syscall.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)

	pipeWrite.Close()
	pipeRead.Close()

	close(Messages)
	started = false
}
