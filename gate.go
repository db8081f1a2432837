package structlog

import "go.uber.org/atomic"

// LevelGate decides whether events of a level reach the sink. It is called
// on every log call and must not allocate.
type LevelGate interface {
	IsEnabled(level Level) bool
}

// LevelSwitch is a LevelGate with an adjustable minimum level. The zero
// value enables every level.
type LevelSwitch struct {
	minimum atomic.Int32
}

// NewLevelSwitch returns a switch passing minimum and everything above it.
func NewLevelSwitch(minimum Level) *LevelSwitch {
	ls := &LevelSwitch{}
	ls.minimum.Store(int32(minimum))
	return ls
}

func (ls *LevelSwitch) IsEnabled(level Level) bool {
	if ls == nil {
		return true
	}
	return int32(level) >= ls.minimum.Load()
}

// MinimumLevel returns the current minimum level.
func (ls *LevelSwitch) MinimumLevel() Level {
	if ls == nil {
		return LevelVerbose
	}
	return Level(ls.minimum.Load())
}

// SetMinimumLevel changes the minimum level for all loggers sharing the switch.
func (ls *LevelSwitch) SetMinimumLevel(level Level) {
	if ls == nil {
		return
	}
	ls.minimum.Store(int32(level))
}

type allLevels struct{}

func (allLevels) IsEnabled(Level) bool { return true }
