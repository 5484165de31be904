package logging

import (
	"github.com/pkg/errors"
)

// Level represents a log level. Its value hierarchy is ordered so that a
// logger at a given level emits messages at that level and all lower ones.
type Level uint

const (
	// LevelDisabled indicates that logging is completely disabled.
	LevelDisabled Level = iota
	// LevelError indicates that only errors are logged.
	LevelError
	// LevelWarn indicates that errors and warnings are logged.
	LevelWarn
	// LevelInfo indicates that basic execution information is logged.
	LevelInfo
	// LevelDebug indicates that listing and action execution details are
	// logged.
	LevelDebug
	// LevelTrace indicates that per-entry details are logged.
	LevelTrace
)

// levelNames maps levels to their names.
var levelNames = [...]string{
	LevelDisabled: "disabled",
	LevelError:    "error",
	LevelWarn:     "warn",
	LevelInfo:     "info",
	LevelDebug:    "debug",
	LevelTrace:    "trace",
}

// NameToLevel converts a string-based representation of a log level to the
// appropriate Level value. It returns a boolean indicating whether or not the
// conversion was valid. If the name is invalid, LevelDisabled is returned.
func NameToLevel(name string) (Level, bool) {
	for level, levelName := range levelNames {
		if levelName == name {
			return Level(level), true
		}
	}
	return LevelDisabled, false
}

// String provides a human-readable representation of a log level.
func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// UnmarshalText implements encoding.TextUnmarshaler, which is used when loading
// levels from YAML configuration files.
func (l *Level) UnmarshalText(text []byte) error {
	level, ok := NameToLevel(string(text))
	if !ok {
		return errors.Errorf("invalid log level: %s", string(text))
	}
	*l = level
	return nil
}
