package structlog

// Sink receives bound events. Emit is called once per enabled, successfully
// bound write and may be called concurrently.
type Sink interface {
	Emit(event *Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(event *Event)

func (f SinkFunc) Emit(event *Event) { f(event) }

// Fanout returns a sink that emits every event to each sink in order.
func Fanout(sinks ...Sink) Sink {
	out := make(fanout, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

type fanout []Sink

func (f fanout) Emit(event *Event) {
	for _, s := range f {
		s.Emit(event)
	}
}

type nopSink struct{}

func (nopSink) Emit(*Event) {}
