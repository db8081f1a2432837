package structlog

import "context"

// Logger writes message-template events. Implementations never panic and
// never report errors from logging calls; invalid input drops the event.
//
// The per-level methods (Information, Warning, ...) come from LevelWriter
// and are generated; they all funnel into Write and WriteContext.
type Logger interface {
	LevelWriter

	// IsEnabled reports whether events of level would reach the sink.
	IsEnabled(level Level) bool

	// Write binds template to values and dispatches the event. Disabled
	// levels and empty templates return without binding.
	Write(level Level, err error, template string, values ...any)

	// WriteContext is Write with trace correlation taken from ctx.
	WriteContext(ctx context.Context, level Level, err error, template string, values ...any)

	BindMessageTemplate(template string, values []any) (*Template, []Property, bool)
	BindProperty(name string, value any, destructure bool) (Property, bool)

	// ForContext returns a logger that adds one more property to every
	// event it writes.
	// Example: reqLogger := logger.ForContext("RequestID", id, false)
	ForContext(name string, value any, destructure bool) Logger
}

// Nop returns a Logger that discards everything.
func Nop() Logger { return noopLogger{} }

// noopLogger is a no-op implementation of Logger
type noopLogger struct{}

func (noopLogger) IsEnabled(Level) bool                                       { return false }
func (noopLogger) Write(Level, error, string, ...any)                         {}
func (noopLogger) WriteContext(context.Context, Level, error, string, ...any) {}
func (noopLogger) BindMessageTemplate(string, []any) (*Template, []Property, bool) {
	return nil, nil, false
}
func (noopLogger) BindProperty(string, any, bool) (Property, bool) { return Property{}, false }
func (n noopLogger) ForContext(string, any, bool) Logger           { return n }
