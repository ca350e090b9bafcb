package multilog

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Level is the severity of a log message. Levels are ordered: a logger with
// a minimum level of [LevelInfo] drops LevelDebug messages and emits the
// rest.
type Level int

// Severities, from least to most severe.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelFatal
)

// String returns the level name used in formatted log lines.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name into a Level. Matching is
// case-insensitive, ignores surrounding whitespace, and accepts "WARN" as
// an alias for WARNING.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarning, nil
	case "ERROR":
		return LevelError, nil
	case "FATAL":
		return LevelFatal, nil
	default:
		return LevelInfo, errors.Newf("unknown log level %q", s)
	}
}
