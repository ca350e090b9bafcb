package multilog

import "sync"

var (
	defaultOnce   sync.Once
	defaultLogger *Logger
)

// Default returns the process-wide logger, constructing it on first use.
// Construction happens exactly once even under concurrent first access,
// and no caller ever observes a partially built instance. The fresh
// instance delivers to [Console] at [LevelInfo].
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = New()
	})
	return defaultLogger
}

// MinLevel returns the minimum severity of the process-wide logger.
func MinLevel() Level {
	return Default().MinLevel()
}

// SetMinLevel replaces the minimum severity of the process-wide logger.
func SetMinLevel(level Level) {
	Default().SetMinLevel(level)
}

// AddOutput registers a destination on the process-wide logger.
func AddOutput(out Output) {
	Default().AddOutput(out)
}

// RemoveOutput detaches a destination from the process-wide logger.
func RemoveOutput(out Output) {
	Default().RemoveOutput(out)
}

// Outputs returns a snapshot of the process-wide logger's destinations.
func Outputs() []Output {
	return Default().Outputs()
}

// Log emits msg through the process-wide logger.
func Log(level Level, msg string, err error) {
	Default().log(level, msg, err)
}

// Debug emits msg at [LevelDebug] through the process-wide logger.
func Debug(msg string, errs ...error) {
	Default().log(LevelDebug, msg, firstError(errs))
}

// Info emits msg at [LevelInfo] through the process-wide logger.
func Info(msg string, errs ...error) {
	Default().log(LevelInfo, msg, firstError(errs))
}

// Warn emits msg at [LevelWarning] through the process-wide logger.
func Warn(msg string, errs ...error) {
	Default().log(LevelWarning, msg, firstError(errs))
}

// Error emits msg at [LevelError] through the process-wide logger.
func Error(msg string, errs ...error) {
	Default().log(LevelError, msg, firstError(errs))
}

// Fatal emits msg at [LevelFatal] through the process-wide logger. It does
// not terminate the process.
func Fatal(msg string, errs ...error) {
	Default().log(LevelFatal, msg, firstError(errs))
}
