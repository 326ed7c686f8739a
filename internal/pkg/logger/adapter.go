package logger

import "github.com/orb3-protocol/l2beat/internal/app/port"

// slogAdapter implements port.Logger on top of the package-level functions.
type slogAdapter struct{}

// NewSlogAdapter creates a new slogAdapter.
func NewSlogAdapter() port.Logger {
	return &slogAdapter{}
}

// Info logs an informational message.
func (a *slogAdapter) Info(msg string, args ...any) {
	Info(msg, args...)
}

// Debug logs a debug message.
func (a *slogAdapter) Debug(msg string, args ...any) {
	Debug(msg, args...)
}

// Warn logs a warning.
func (a *slogAdapter) Warn(msg string, args ...any) {
	Warn(msg, args...)
}

// Error logs an error.
func (a *slogAdapter) Error(msg string, args ...any) {
	Error(msg, args...)
}

// nopAdapter discards everything; used by tests and tools that must stay quiet.
type nopAdapter struct{}

// NewNopAdapter returns a port.Logger that discards all messages.
func NewNopAdapter() port.Logger {
	return nopAdapter{}
}

func (nopAdapter) Info(string, ...any)  {}
func (nopAdapter) Debug(string, ...any) {}
func (nopAdapter) Warn(string, ...any)  {}
func (nopAdapter) Error(string, ...any) {}
