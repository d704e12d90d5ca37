// Package target abstracts the interactive command channel to a
// network device. The session layer talks to a Channel only, the
// concrete transport lives in a sub-package.
package target

import (
	"fmt"
	"time"
)

// CommandOptions tune how a single command is sent over the channel.
// The zero value sends the command with a trailing newline and waits
// for the prompt.
type CommandOptions struct {
	// Prompt is an additional prompt pattern to answer during the
	// command, e.g. a confirmation question.
	Prompt string
	// Answer is the input sent when Prompt is seen.
	Answer string
	// SendOnly fires the command without waiting for a response.
	SendOnly bool
	// NoNewline suppresses the trailing newline.
	NoNewline bool
	// CheckAll requires every configured prompt to be seen before
	// the command completes.
	CheckAll bool
}

// Channel is a line-oriented command session with exclusive access
// semantics: callers must not interleave operations on the same
// channel.
type Channel interface {
	// Send writes a command and returns the device response. A nil
	// opts sends with defaults. Transport failures are returned as
	// *ConnectionError.
	Send(command string, opts *CommandOptions) (string, error)
	// GetPrompt returns the current device prompt.
	GetPrompt() (string, error)
	// CommandTimeout returns the per-command timeout the transport
	// enforces. The commit-confirm safety gate compares it against
	// the rollback timer.
	CommandTimeout() time.Duration
	// Close tears down the session.
	Close() error
}

// ConnectionError is the transport failure kind: the connection is
// broken or the device did not answer in a usable way. It is never
// retried by this layer.
type ConnectionError struct {
	Msg string
	Err error
}

func (e *ConnectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// NewConnectionError wraps err as a transport failure.
func NewConnectionError(err error, format string, a ...any) *ConnectionError {
	return &ConnectionError{Msg: fmt.Sprintf(format, a...), Err: err}
}
