package multilog

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

const (
	logFilePerm = 0o600
	logDirPerm  = 0o700
)

// FileOutput appends messages to a file, one per line. The file is opened
// in append mode for every write and closed again afterwards, so no
// descriptor is held between calls and external rotation or removal is
// picked up on the next write.
type FileOutput struct {
	path string
}

// NewFileOutput returns a file destination for path. Missing parent
// directories are created here, so a misconfigured location fails at
// construction rather than surfacing later on the write path.
func NewFileOutput(path string) (*FileOutput, error) {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), logDirPerm); err != nil {
		return nil, errors.Wrap(err, "creating log directory")
	}
	return &FileOutput{path: path}, nil
}

// Path returns the file the destination appends to.
func (o *FileOutput) Path() string {
	return o.path
}

// Write appends message and a line break to the file, creating the file on
// first use.
func (o *FileOutput) Write(message string) error {
	f, err := os.OpenFile(o.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return errors.Wrap(err, "opening log file")
	}
	if _, err := f.Write([]byte(message + "\n")); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "writing log file")
	}
	return errors.Wrap(f.Close(), "closing log file")
}

// DefaultLogPath returns the conventional location for app's log file,
// $XDG_STATE_HOME/<app>/<app>.log. The XDG base directory specification
// reserves the state directory for data that should survive restarts but
// is not portable between machines, logs included.
func DefaultLogPath(app string) string {
	return filepath.Join(xdg.StateHome, app, app+".log")
}
