package structlog

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/types"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Service is the default Logger implementation. Build it with New, or set
// LoggingConfig (and WorkingDir for file logging) and call Initialize.
type Service struct {
	WorkingDir    string `di.inject:"WorkingDir"`
	LoggingConfig *types.LoggingConfig
	// Capture and TemplateCache are read by Initialize; zero values select
	// the defaults.
	Capture       CaptureLimits
	TemplateCache TemplateCacheConfig

	sink       Sink
	gate       LevelGate
	levels     *LevelSwitch
	binder     *Binder
	clock      func() time.Time
	metrics    *Metrics
	fileWriter *lumberjack.Logger

	shutdownTimeout time.Duration
	timeoutWarning  bool

	initOnce      sync.Once
	initErr       error
	isInitialized atomic.Bool
	mu            sync.RWMutex
	wg            sync.WaitGroup
	activeOps     atomic.Int64
}

// New returns a ready Service. Without options every level is enabled and
// events are discarded.
func New(opts ...Option) *Service {
	s := &Service{
		Capture:         DefaultCaptureLimits(),
		TemplateCache:   DefaultTemplateCacheConfig(),
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.setDefaults()
	s.initOnce.Do(func() {})
	s.isInitialized.Store(true)
	return s
}

func (s *Service) setDefaults() {
	if s.sink == nil {
		s.sink = nopSink{}
	}
	if s.gate == nil {
		if s.levels != nil {
			s.gate = s.levels
		} else {
			s.gate = allLevels{}
		}
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	if s.binder == nil {
		s.binder = NewBinder(s.Capture, NewTemplateCache(s.TemplateCache))
	}
	if s.shutdownTimeout <= 0 {
		s.shutdownTimeout = defaultShutdownTimeout
	}
}

// Initialize configures the service from LoggingConfig: a zerolog sink over
// a rolling file and/or the console, with the configured minimum level.
// It is safe to call more than once; later calls return the first result.
func (s *Service) Initialize() error {
	const op errors.Op = "structlog.Service.Initialize"
	if s == nil {
		return errors.New(op).Msg(errMsgNilService)
	}
	s.initOnce.Do(func() {
		s.initErr = s.initialize()
	})
	return s.initErr
}

func (s *Service) initialize() error {
	const op errors.Op = "structlog.Service.initialize"
	if s.LoggingConfig == nil {
		return errors.New(op).Msg(errMsgNilConfig)
	}
	if err := validateConfig(s.LoggingConfig); err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}

	s.Capture = s.Capture.withDefaults()
	if s.TemplateCache == (TemplateCacheConfig{}) {
		s.TemplateCache = DefaultTemplateCacheConfig()
	}
	if err := validateCapture(s.Capture, s.TemplateCache); err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}

	level, err := ParseLevel(s.LoggingConfig.Level)
	if err != nil {
		return errors.New(op).Err(err).Msg(errMsgInvalidLevel)
	}

	writers, err := s.initializeWriters()
	if err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}

	logger := zerolog.New(io.MultiWriter(writers...)).Level(zerolog.TraceLevel)
	if s.LoggingConfig.SkipFrameCount > 0 {
		logger = logger.With().CallerWithSkipFrameCount(s.LoggingConfig.SkipFrameCount).Logger()
	}

	s.sink = NewZerologSink(logger, s.LoggingConfig.WithTimestamp)
	s.levels = NewLevelSwitch(level)
	s.gate = s.levels
	if s.LoggingConfig.ShutdownTimeoutMS > 0 {
		s.shutdownTimeout = time.Duration(s.LoggingConfig.ShutdownTimeoutMS) * time.Millisecond
	}
	s.timeoutWarning = s.LoggingConfig.ShutdownTimeoutWarning
	s.setDefaults()

	s.isInitialized.Store(true)
	return nil
}

// Close stops accepting writes and waits, up to the shutdown timeout, for
// writes already in flight. It's safe to call Close multiple times.
func (s *Service) Close() error {
	if s == nil {
		return nil
	}

	s.mu.Lock()
	wasInitialized := s.isInitialized.Swap(false)
	s.mu.Unlock()
	if !wasInitialized {
		return nil
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(s.shutdownTimeout):
		active := s.activeOps.Load()
		selfLogf("logger shutdown timeout exceeded with %d active operations", active)
		if s.timeoutWarning {
			s.emitShutdownWarning(active)
		}
	}

	if s.fileWriter != nil {
		if err := s.fileWriter.Close(); err != nil {
			return errors.New("structlog.Service.Close").Err(err).Msg("Failed to close log file.")
		}
	}
	return nil
}

func (s *Service) emitShutdownWarning(active int64) {
	defer func() { _ = recover() }()
	tmpl, props, ok := s.binder.BindMessageTemplate(
		"Logger shutdown timeout exceeded, {ActiveOperations} active operations", []any{active})
	if !ok {
		return
	}
	s.sink.Emit(NewEvent(s.clock(), LevelWarning, nil, tmpl, props, emptyString, emptyString))
}

// IsEnabled reports whether level passes the service's level gate. The
// check is a single atomic comparison for the default LevelSwitch.
func (s *Service) IsEnabled(level Level) bool {
	if s == nil || !level.valid() {
		return false
	}
	if s.gate == nil {
		return true
	}
	return s.gate.IsEnabled(level)
}

// Levels returns the service's level switch, or nil when the gate was
// supplied with WithLevelGate.
func (s *Service) Levels() *LevelSwitch {
	if s == nil {
		return nil
	}
	return s.levels
}

func (s *Service) Write(level Level, err error, template string, values ...any) {
	s.write(context.Background(), level, err, template, values, nil)
}

func (s *Service) WriteContext(ctx context.Context, level Level, err error, template string, values ...any) {
	s.write(ctx, level, err, template, values, nil)
}

// BindMessageTemplate binds with the service's binder and capture limits.
func (s *Service) BindMessageTemplate(template string, values []any) (*Template, []Property, bool) {
	if s == nil || s.binder == nil {
		return nil, nil, false
	}
	return s.binder.BindMessageTemplate(template, values)
}

// BindProperty binds with the service's binder and capture limits.
func (s *Service) BindProperty(name string, value any, destructure bool) (Property, bool) {
	if s == nil || s.binder == nil {
		return Property{}, false
	}
	return s.binder.BindProperty(name, value, destructure)
}

// ForContext returns a child logger sharing the service's sink, level gate
// and lifecycle.
func (s *Service) ForContext(name string, value any, destructure bool) Logger {
	return newContextLogger(s, nil).ForContext(name, value, destructure)
}

// Binder returns the service's binder.
func (s *Service) Binder() *Binder {
	if s == nil {
		return nil
	}
	return s.binder
}

func (s *Service) write(ctx context.Context, level Level, err error, template string, values []any, enrich []Property) {
	if !s.IsEnabled(level) || template == emptyString {
		return
	}

	// Acquire read lock so Close() cannot start waiting between the check
	// and wg.Add.
	s.mu.RLock()
	if !s.isInitialized.Load() {
		s.mu.RUnlock()
		s.metrics.eventDropped(dropReasonClosed)
		return
	}
	s.activeOps.Inc()
	s.wg.Add(1)
	s.mu.RUnlock()

	defer func() {
		if r := recover(); r != nil {
			selfLogf("dropped %s event %q: %v", level, template, r)
			s.metrics.eventDropped(dropReasonPanic)
		}
		s.activeOps.Dec()
		s.wg.Done()
	}()

	ts := s.clock()
	traceID, spanID := CorrelationFromContext(ctx)

	tmpl, props, ok := s.binder.BindMessageTemplate(template, values)
	if !ok {
		s.metrics.eventDropped(dropReasonBind)
		return
	}
	if len(enrich) > 0 {
		props = append(props, enrich...)
	}

	s.sink.Emit(NewEvent(ts, level, err, tmpl, props, traceID, spanID))
	s.metrics.eventWritten(level)
}
