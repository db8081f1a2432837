package structlog

import (
	"fmt"
	"strings"

	"github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
	"go.uber.org/zap/zapcore"
)

//go:generate go run ./cmd/levelgen --out levels_gen.go

// Level is the severity of an event. Levels are ordered: a gate that passes
// a level passes every level above it.
type Level int32

const (
	LevelVerbose Level = iota
	LevelDebug
	LevelInformation
	LevelWarning
	LevelError
	LevelFatal
)

var levelNames = [...]string{
	LevelVerbose:     "Verbose",
	LevelDebug:       "Debug",
	LevelInformation: "Information",
	LevelWarning:     "Warning",
	LevelError:       "Error",
	LevelFatal:       "Fatal",
}

// Levels returns every level in ascending order.
func Levels() []Level {
	return []Level{LevelVerbose, LevelDebug, LevelInformation, LevelWarning, LevelError, LevelFatal}
}

func (l Level) String() string {
	if l.valid() {
		return levelNames[l]
	}
	return fmt.Sprintf("Level(%d)", int32(l))
}

func (l Level) valid() bool {
	return l >= LevelVerbose && l <= LevelFatal
}

// ParseLevel parses a level name. Both the long names (verbose, information,
// warning) and the zerolog short names (trace, info, warn) are accepted,
// case-insensitively.
func ParseLevel(s string) (Level, error) {
	const op errors.Op = "structlog.ParseLevel"
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verbose", "trace", "vrb":
		return LevelVerbose, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "information", "info", "inf":
		return LevelInformation, nil
	case "warning", "warn", "wrn":
		return LevelWarning, nil
	case "error", "err":
		return LevelError, nil
	case "fatal", "ftl", "panic":
		return LevelFatal, nil
	}
	return LevelVerbose, errors.New(op).Errorf("unknown level %q", s)
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case LevelVerbose:
		return zerolog.TraceLevel
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInformation:
		return zerolog.InfoLevel
	case LevelWarning:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	case LevelFatal:
		return zerolog.FatalLevel
	}
	return zerolog.NoLevel
}

// zap has no level below Debug, so Verbose shares it.
func (l Level) zap() zapcore.Level {
	switch l {
	case LevelVerbose, LevelDebug:
		return zapcore.DebugLevel
	case LevelInformation:
		return zapcore.InfoLevel
	case LevelWarning:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	case LevelFatal:
		return zapcore.FatalLevel
	}
	return zapcore.InfoLevel
}
