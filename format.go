package multilog

import (
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// timestampLayout renders wall-clock time with millisecond precision, e.g.
// "2026-01-12 15:04:05.012". The rendered form is always 23 bytes.
const timestampLayout = "2006-01-02 15:04:05.000"

// formatMessage renders the single line handed to every destination:
// "[<timestamp>] [<LEVEL>] <message>". Message content is passed through
// verbatim, so callers that need strictly line-oriented output must supply
// messages without line breaks.
func formatMessage(ts time.Time, level Level, msg string) string {
	return fmt.Sprintf("[%s] [%s] %s", ts.Format(timestampLayout), level, msg)
}

// formatTrace renders err as a block: the error text on the first line,
// then one tab-indented line per stack frame, innermost call first. Errors
// that do not carry a stack of their own get one captured here, skipping
// skip frames above this function, so the block points at the logging call
// site rather than at logger internals.
//
// The block carries no trailing line break; destinations terminate it the
// same way they terminate any other message.
func formatTrace(err error, skip int) string {
	trace := errors.GetReportableStackTrace(err)
	if trace == nil {
		trace = errors.GetReportableStackTrace(errors.WithStackDepth(err, skip+1))
	}

	var b strings.Builder
	b.WriteString(err.Error())
	if trace == nil {
		return b.String()
	}
	// Reportable traces list the outermost call first.
	for i := len(trace.Frames) - 1; i >= 0; i-- {
		f := trace.Frames[i]
		name := f.Function
		if f.Module != "" {
			name = f.Module + "." + name
		}
		file := f.Filename
		if file == "" {
			file = f.AbsPath
		}
		b.WriteString("\n\t")
		if file == "" {
			b.WriteString(name)
			continue
		}
		fmt.Fprintf(&b, "%s (%s:%d)", name, file, f.Lineno)
	}
	return b.String()
}
