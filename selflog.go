package structlog

import (
	"io"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

var selfLog atomic.Pointer[zerolog.Logger]

// EnableSelfLog routes the library's own diagnostics (dropped events,
// recovered faults, template/value count mismatches) to w. Writes to w are
// serialised. Diagnostics are off by default.
func EnableSelfLog(w io.Writer) {
	if w == nil {
		DisableSelfLog()
		return
	}
	l := zerolog.New(zerolog.SyncWriter(w)).With().Timestamp().Str("component", "structlog").Logger()
	selfLog.Store(&l)
}

// DisableSelfLog turns diagnostics off.
func DisableSelfLog() {
	selfLog.Store(nil)
}

// selfLogf is best-effort; a failing diagnostics writer is ignored.
func selfLogf(format string, args ...any) {
	l := selfLog.Load()
	if l == nil {
		return
	}
	defer func() { _ = recover() }()
	l.Warn().Msgf(format, args...)
}
