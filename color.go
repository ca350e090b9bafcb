package multilog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// ColorConsole writes messages to standard output like [ConsoleOutput], but
// tints the timestamp and level tag when the terminal supports it. Color
// support is probed once at construction; lines that do not carry the
// standard "[timestamp] [LEVEL]" prefix, stack-trace blocks for example,
// pass through untouched.
type ColorConsole struct {
	out io.Writer

	timeColor  *color.Color
	debugColor *color.Color
	infoColor  *color.Color
	warnColor  *color.Color
	errorColor *color.Color
}

// NewColorConsole returns a console destination with color enabled when
// standard output is a capable terminal.
func NewColorConsole() *ColorConsole {
	return newColorConsole(os.Stdout, SupportsColor(os.Stdout))
}

func newColorConsole(out io.Writer, colorize bool) *ColorConsole {
	c := &ColorConsole{out: out}

	// Only initialize colors if the writer supports them
	if colorize {
		c.timeColor = color.New(color.FgHiBlack)
		c.debugColor = color.New(color.FgMagenta)
		c.infoColor = color.New(color.FgGreen)
		c.warnColor = color.New(color.FgYellow)
		c.errorColor = color.New(color.FgRed, color.Bold)
	}

	return c
}

// Write appends message and a line break to the console, tinted when color
// is enabled.
func (o *ColorConsole) Write(message string) error {
	_, err := fmt.Fprintln(o.out, o.render(message))
	return err
}

func (o *ColorConsole) render(message string) string {
	if o.timeColor == nil { // use timeColor as proxy for "useColor"
		return message
	}

	const prefixLen = 1 + len(timestampLayout)
	const tagStart = prefixLen + 3
	if len(message) < tagStart || message[0] != '[' || message[prefixLen:tagStart] != "] [" {
		return message
	}
	end := strings.IndexByte(message[tagStart:], ']')
	if end < 0 {
		return message
	}

	name := message[tagStart : tagStart+end]
	lvl, err := ParseLevel(name)
	if err != nil {
		return message
	}

	var levelColor *color.Color
	switch {
	case lvl >= LevelError:
		levelColor = o.errorColor
	case lvl >= LevelWarning:
		levelColor = o.warnColor
	case lvl >= LevelInfo:
		levelColor = o.infoColor
	default:
		levelColor = o.debugColor
	}

	ts := message[1:prefixLen]
	return "[" + o.timeColor.Sprint(ts) + "] [" + levelColor.Sprint(name) + message[tagStart+end:]
}
