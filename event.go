package structlog

import (
	"strings"
	"time"
)

// Event is a bound log event. It is immutable: accessors return copies and
// it can be handed to any number of sinks or goroutines.
type Event struct {
	timestamp  time.Time
	level      Level
	err        error
	template   *Template
	properties []Property
	index      map[string]int
	traceID    string
	spanID     string
}

// NewEvent builds an event. Properties are copied and deduplicated by name,
// the first occurrence winning. A nil template renders as an empty message.
func NewEvent(ts time.Time, level Level, err error, tmpl *Template, props []Property, traceID, spanID string) *Event {
	if tmpl == nil {
		tmpl = ParseTemplate("")
	}
	props = dedupeProperties(props)
	index := make(map[string]int, len(props))
	for i, p := range props {
		index[p.Name] = i
	}
	return &Event{
		timestamp:  ts,
		level:      level,
		err:        err,
		template:   tmpl,
		properties: props,
		index:      index,
		traceID:    traceID,
		spanID:     spanID,
	}
}

func (e *Event) Timestamp() time.Time { return e.timestamp }
func (e *Event) Level() Level         { return e.level }

// Err returns the error attached to the event, if any.
func (e *Event) Err() error { return e.err }

func (e *Event) Template() *Template { return e.template }

// MessageTemplate returns the template source text.
func (e *Event) MessageTemplate() string { return e.template.Text() }

// TraceID and SpanID are empty when the write had no span in its context.
func (e *Event) TraceID() string { return e.traceID }
func (e *Event) SpanID() string  { return e.spanID }

// Properties returns the bound properties in binding order.
func (e *Event) Properties() []Property {
	return append([]Property(nil), e.properties...)
}

// Property looks up a bound property by name.
func (e *Event) Property(name string) (Value, bool) {
	i, ok := e.index[name]
	if !ok {
		return nil, false
	}
	return e.properties[i].Value, true
}

// RenderMessage renders the template with the event's properties.
func (e *Event) RenderMessage() string {
	var b strings.Builder
	e.template.render(&b, e.Property)
	return b.String()
}
