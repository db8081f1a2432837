package structlog

import "context"

// contextLogger is a child of a Service carrying extra properties. It
// delegates to the parent for gating, binding and lifecycle, so every child
// is closed with its parent.
type contextLogger struct {
	parent *Service
	props  []Property
}

func newContextLogger(parent *Service, props []Property) *contextLogger {
	return &contextLogger{parent: parent, props: props}
}

func (cl *contextLogger) IsEnabled(level Level) bool {
	return cl.parent.IsEnabled(level)
}

func (cl *contextLogger) Write(level Level, err error, template string, values ...any) {
	cl.parent.write(context.Background(), level, err, template, values, cl.props)
}

func (cl *contextLogger) WriteContext(ctx context.Context, level Level, err error, template string, values ...any) {
	cl.parent.write(ctx, level, err, template, values, cl.props)
}

func (cl *contextLogger) BindMessageTemplate(template string, values []any) (*Template, []Property, bool) {
	return cl.parent.BindMessageTemplate(template, values)
}

func (cl *contextLogger) BindProperty(name string, value any, destructure bool) (Property, bool) {
	return cl.parent.BindProperty(name, value, destructure)
}

// ForContext adds a property; a property of the same name set by an
// enclosing ForContext is replaced. Properties bound from the message
// template still take precedence over context properties.
func (cl *contextLogger) ForContext(name string, value any, destructure bool) Logger {
	if cl.parent == nil {
		return Nop()
	}
	prop, ok := cl.parent.BindProperty(name, value, destructure)
	if !ok {
		return cl
	}
	props := make([]Property, 0, len(cl.props)+1)
	props = append(props, prop)
	for _, p := range cl.props {
		if p.Name != name {
			props = append(props, p)
		}
	}
	return newContextLogger(cl.parent, props)
}
