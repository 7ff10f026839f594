package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// FileConfig controls writing logs to a file.
type FileConfig struct {
	Enabled       bool
	LogDir        string
	WriteToStderr bool
}

const runStampLayout = "20060102_150405"

// RunFilename returns the log file name for a run started at t.
// Example: dockyard_20251217_205106.log
func RunFilename(t time.Time) string {
	return "dockyard_" + t.Format(runStampLayout) + ".log"
}

// ParseRunFilename extracts the start time from a RunFilename.
func ParseRunFilename(name string) (time.Time, bool) {
	stamp, ok := strings.CutPrefix(name, "dockyard_")
	if !ok {
		return time.Time{}, false
	}
	stamp, ok = strings.CutSuffix(stamp, ".log")
	if !ok {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(runStampLayout, stamp, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// NewWithFile creates a logger that writes to a per-run file in the log
// directory, optionally mirrored to stderr. The cleanup function closes the file.
// Interactive terminal commands log here so output never corrupts the screen.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	const logDirPerm = 0o750
	noop := func() {}

	if !fileCfg.Enabled {
		if !fileCfg.WriteToStderr {
			cfg.Output = io.Discard
		}
		return New(cfg), noop, nil
	}

	if err := os.MkdirAll(fileCfg.LogDir, logDirPerm); err != nil {
		return New(cfg), noop, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(fileCfg.LogDir, RunFilename(time.Now()))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return New(cfg), noop, fmt.Errorf("open log file: %w", err)
	}

	cfg.Output = f
	if fileCfg.WriteToStderr {
		cfg.Output = io.MultiWriter(f, os.Stderr)
	}

	return New(cfg), func() { _ = f.Close() }, nil
}
