package core

import (
	"errors"
	"fmt"
)

var (
	// ErrContextInUse is returned when a second graphics context is requested
	// while another Host still owns one.
	ErrContextInUse = errors.New("core: a graphics context is already live in this process")
	// ErrContextNotCurrent means the window did not leave its context current
	// on the calling thread.
	ErrContextNotCurrent = errors.New("core: graphics context is not current on the host thread")
	ErrHostClosed        = errors.New("core: host is closed")
	ErrNilPlugin         = errors.New("core: plugin factory returned nil")
)

// PanicError is a panic recovered from a plugin or component callback.
// The Host treats it as fatal.
type PanicError struct {
	Phase  string // "register", "event", "render" or "update"
	Index  int
	Plugin string
	Value  any
	Stack  []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("core: %s: %s #%d panicked: %v", e.Phase, e.Plugin, e.Index, e.Value)
}

// Unwrap exposes the panic value when it was an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}
