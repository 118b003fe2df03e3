package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/myproject/myproject/internal/conf"
)

// LevelQuiet is above every level the application emits; a console at this
// level stays silent.
const LevelQuiet = slog.LevelError + 4

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO":
		return slog.LevelInfo, true
	case "WARN", "WARNING":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	case "CRITICAL", "QUIET":
		return LevelQuiet, true
	}
	return slog.LevelInfo, false
}

// Options configures Setup.
type Options struct {
	// Console receives console output. Defaults to os.Stderr.
	Console io.Writer
	// Level names the console level. Empty selects DEBUG in DEV and INFO
	// elsewhere.
	Level string
	// Quiet silences the console regardless of Level.
	Quiet bool
}

// Logger is the application logger. Records go to the console and, unless
// logging degraded, to the plan's rotating file.
type Logger struct {
	*slog.Logger
	// RunID identifies this process in every record.
	RunID string
	file  *RotatingFile
}

// FileEnabled reports whether records are written to the log file.
func (l *Logger) FileEnabled() bool {
	return l.file != nil
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Setup builds the logger for plan. When the log directory is unusable it
// returns a console-only logger together with the *LogDirectoryError, after
// reporting the error as a warning through that logger. The returned Logger
// is always usable.
func Setup(plan Plan, opts Options) (*Logger, error) {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	consoleLevel := slog.LevelInfo
	if plan.Environment == conf.EnvDev {
		consoleLevel = slog.LevelDebug
	}
	if lvl, ok := ParseLevel(opts.Level); ok {
		consoleLevel = lvl
	}
	if opts.Quiet {
		consoleLevel = LevelQuiet
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(console, &slog.HandlerOptions{Level: consoleLevel}),
	}

	l := &Logger{RunID: uuid.NewString()}
	dirErr := plan.Ensure()
	if dirErr == nil {
		l.file = NewRotatingFile(plan.File, plan.MaxBytes, plan.BackupCount)
		handlers = append(handlers, slog.NewTextHandler(l.file, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	l.Logger = slog.New(&fanoutHandler{handlers: handlers}).With("env", string(plan.Environment), "run", l.RunID)

	if dirErr != nil {
		l.Warn("file logging disabled, using console only", "error", dirErr)
		return l, dirErr
	}
	for _, n := range plan.Notices {
		l.Warn("log settings", "error", n)
	}
	l.Debug("logging initialized", "dir", plan.Dir, "max_bytes", plan.MaxBytes, "backups", plan.BackupCount)
	return l, nil
}

// fanoutHandler passes every record to each handler that accepts its level.
type fanoutHandler struct {
	handlers []slog.Handler
}

func (h *fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *fanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, r.Level) {
			continue
		}
		if err := handler.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (h *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return &fanoutHandler{handlers: handlers}
}

func (h *fanoutHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return &fanoutHandler{handlers: handlers}
}
