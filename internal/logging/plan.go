package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/myproject/myproject/internal/conf"
)

const (
	// FileName is the active log file inside the plan directory.
	FileName = "info.log"
	// DefaultMaxBytes is the rotation threshold used when none is configured.
	DefaultMaxBytes = 1_000_000
	// DefaultBackupCount is the number of rotated files kept by default.
	DefaultBackupCount = 5
)

// Plan describes where logs go and how they rotate.
type Plan struct {
	Environment conf.Environment
	Dir         string
	File        string
	MaxBytes    int64
	BackupCount int
	// Notices lists configured values that were rejected in favour of
	// defaults.
	Notices []error
}

// NewPlan derives the log plan for cfg under root. Invalid rotation values
// fall back to the defaults and are reported in Notices.
func NewPlan(root string, cfg conf.Config) Plan {
	env := cfg.Environment()
	dir := filepath.Join(root, "logs", string(env))
	p := Plan{
		Environment: env,
		Dir:         dir,
		File:        filepath.Join(dir, FileName),
		MaxBytes:    DefaultMaxBytes,
		BackupCount: DefaultBackupCount,
	}

	if raw, ok := cfg.Lookup(conf.KeyLogMaxBytes); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil || n <= 0 {
			p.Notices = append(p.Notices, fmt.Errorf("invalid %s %q, using default %d", conf.KeyLogMaxBytes, raw, DefaultMaxBytes))
		} else {
			p.MaxBytes = n
		}
	}
	if raw, ok := cfg.Lookup(conf.KeyLogBackupCount); ok {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n < 0 {
			p.Notices = append(p.Notices, fmt.Errorf("invalid %s %q, using default %d", conf.KeyLogBackupCount, raw, DefaultBackupCount))
		} else {
			p.BackupCount = n
		}
	}
	return p
}

// LogDirectoryError reports a log directory that cannot be created or
// written.
type LogDirectoryError struct {
	Dir string
	Err error
}

func (e *LogDirectoryError) Error() string {
	return fmt.Sprintf("log directory %s is unusable: %v", e.Dir, e.Err)
}

func (e *LogDirectoryError) Unwrap() error {
	return e.Err
}

// Ensure creates the plan directory with any missing parents and checks that
// it is writable. Calling it on an existing directory is not an error.
func (p Plan) Ensure() error {
	if err := os.MkdirAll(p.Dir, 0755); err != nil {
		return &LogDirectoryError{Dir: p.Dir, Err: err}
	}
	if err := writable(p.Dir); err != nil {
		return &LogDirectoryError{Dir: p.Dir, Err: err}
	}
	return nil
}
