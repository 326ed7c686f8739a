package port

// Logger is the structured logger handed to every catalog component.
// args are alternating key/value pairs, e.g. "project", id, "error", err.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
