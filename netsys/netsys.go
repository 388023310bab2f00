// Package netsys models the process-wide socket subsystem lifecycle.
//
// Some platforms require the socket subsystem to be initialized once per
// process before any socket call. The contract is kept explicit here: callers
// invoke [Startup] at process start and [Shutdown] at exit, and connection
// opening refuses to proceed until [Startup] has been called.
package netsys

import (
	"sync/atomic"

	"github.com/pkg/errors"
)

var (
	// ErrStartup is returned when the subsystem fails to initialize.
	// A failed startup is fatal to every subsequent socket operation.
	ErrStartup = errors.New("socket subsystem failed to initialize")

	// ErrNotReady is reported by socket operations attempted before [Startup].
	ErrNotReady = errors.New("socket subsystem is not started")
)

var ready atomic.Bool

// Startup initializes the process-wide socket subsystem.
// Calling it more than once has no further effect.
func Startup() error {
	ready.Store(true)
	return nil
}

// Shutdown releases the process-wide socket subsystem.
func Shutdown() error {
	ready.Store(false)
	return nil
}

// Ready reports whether [Startup] has been called without a matching [Shutdown].
func Ready() bool { return ready.Load() }
