// Package commands implements the CLI commands for multilog.
package commands

import (
	"bufio"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/multilog"
	"github.com/thoreinstein/multilog/cmd"
)

// maxLineBytes bounds the length of a single input line.
const maxLineBytes = 1 << 20

// levelFlag holds the value of the -l/--level flag.
var levelFlag string

// fileFlag holds the value of the -f/--file flag.
var fileFlag string

// stateLog holds the value of the --state flag.
var stateLog bool

// noConsole holds the value of the --no-console flag.
var noConsole bool

// quiet holds the value of the -q/--quiet flag.
var quiet bool

func init() {
	rootCmd.Flags().StringVarP(&levelFlag, "level", "l", "info",
		"severity to stamp lines with: debug, info, warning, error, fatal")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "",
		"append stamped lines to this file")
	rootCmd.Flags().BoolVar(&stateLog, "state", false,
		"also append to the state log under $XDG_STATE_HOME/multilog")
	rootCmd.Flags().BoolVar(&noConsole, "no-console", false,
		"do not write to standard output")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress everything below ERROR")

	// Add version flag
	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("multilog version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "multilog",
	Short: "Stamp standard input with timestamps and severity tags",
	Long: `multilog reads lines from standard input, stamps each one with the
wall-clock time and a severity tag, and delivers it to every configured
destination, in the spirit of logger(1).

By default stamped lines go to standard output. Add --file to append them
to a log file as well, or --state to keep them under the XDG state
directory.`,
	Example: `  # Stamp build output and keep a copy on disk
  make 2>&1 | multilog --level warning --file build.log

  # Keep the state log only
  backup.sh | multilog --state --no-console`,
	Args: cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		return run(c, multilog.Default())
	},
}

// Execute runs the root command.
func Execute() error {
	return errors.Wrap(rootCmd.Execute(), "executing root command")
}

// run wires the destinations described by the flags into logger, then
// stamps every input line.
func run(c *cobra.Command, logger *multilog.Logger) error {
	level, err := multilog.ParseLevel(levelFlag)
	if err != nil {
		return err
	}

	if quiet {
		logger.SetMinLevel(multilog.LevelError)
	} else {
		logger.SetMinLevel(multilog.LevelDebug)
	}

	if noConsole {
		logger.RemoveOutput(multilog.Console)
	}
	if fileFlag != "" {
		out, err := multilog.NewFileOutput(fileFlag)
		if err != nil {
			return err
		}
		logger.AddOutput(out)
	}
	if stateLog {
		out, err := multilog.NewFileOutput(multilog.DefaultLogPath("multilog"))
		if err != nil {
			return err
		}
		logger.AddOutput(out)
	}

	_, err = stampLines(c.InOrStdin(), logger, level)
	return err
}

// stampLines logs every line of r at the given level and reports how many
// lines it saw.
func stampLines(r io.Reader, logger *multilog.Logger, level multilog.Level) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	n := 0
	for scanner.Scan() {
		logger.Log(level, scanner.Text(), nil)
		n++
	}
	if err := scanner.Err(); err != nil {
		return n, errors.Wrap(err, "reading input")
	}
	return n, nil
}
