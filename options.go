package structlog

import "time"

// Option configures a Service built with New.
type Option func(*Service)

// WithSink sets the sink events are dispatched to.
func WithSink(sink Sink) Option {
	return func(s *Service) { s.sink = sink }
}

// WithMinimumLevel enables level and everything above it. The switch is
// available from Service.Levels for later adjustment.
func WithMinimumLevel(level Level) Option {
	return func(s *Service) {
		s.levels = NewLevelSwitch(level)
		s.gate = s.levels
	}
}

// WithLevelGate replaces the level switch with an arbitrary gate.
func WithLevelGate(gate LevelGate) Option {
	return func(s *Service) {
		s.levels = nil
		s.gate = gate
	}
}

// WithClock sets the timestamp source.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) { s.clock = clock }
}

// WithMetrics records written and dropped events.
func WithMetrics(m *Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithCaptureLimits bounds captured values.
func WithCaptureLimits(limits CaptureLimits) Option {
	return func(s *Service) { s.Capture = limits.withDefaults() }
}

// WithTemplateCache configures the parsed-template cache. A zero size
// disables it.
func WithTemplateCache(cfg TemplateCacheConfig) Option {
	return func(s *Service) { s.TemplateCache = cfg }
}

// WithBinder shares a binder between services.
func WithBinder(b *Binder) Option {
	return func(s *Service) { s.binder = b }
}

// WithShutdownTimeout bounds how long Close waits for in-flight writes.
func WithShutdownTimeout(d time.Duration, warn bool) Option {
	return func(s *Service) {
		s.shutdownTimeout = d
		s.timeoutWarning = warn
	}
}
