package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myproject/myproject/internal/conf"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name   string
		want   slog.Level
		wantOK bool
	}{
		{name: "DEBUG", want: slog.LevelDebug, wantOK: true},
		{name: "info", want: slog.LevelInfo, wantOK: true},
		{name: "Warning", want: slog.LevelWarn, wantOK: true},
		{name: "WARN", want: slog.LevelWarn, wantOK: true},
		{name: " error ", want: slog.LevelError, wantOK: true},
		{name: "critical", want: LevelQuiet, wantOK: true},
		{name: "", want: slog.LevelInfo, wantOK: false},
		{name: "loud", want: slog.LevelInfo, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLevel(tt.name)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestSetup_WritesConsoleAndFile(t *testing.T) {
	root := t.TempDir()
	plan := NewPlan(root, configWith(t, map[string]string{conf.KeyEnvironment: "PROD"}))

	var console bytes.Buffer
	logger, err := Setup(plan, Options{Console: &console})
	require.NoError(t, err)
	require.True(t, logger.FileEnabled())
	require.NotEmpty(t, logger.RunID)

	logger.Debug("debug detail")
	logger.Info("processed query", "output", "HELLO")
	require.NoError(t, logger.Close())

	// PROD console starts at INFO.
	assert.NotContains(t, console.String(), "debug detail")
	assert.Contains(t, console.String(), "processed query")
	assert.Contains(t, console.String(), "env=PROD")

	file := readFile(t, plan.File)
	assert.Contains(t, file, "debug detail")
	assert.Contains(t, file, "output=HELLO")
	assert.Contains(t, file, "run="+logger.RunID)
}

func TestSetup_ConsoleLevels(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		opts      Options
		wantDebug bool
		wantError bool
	}{
		{name: "dev defaults to debug", env: "DEV", wantDebug: true, wantError: true},
		{name: "uat defaults to info", env: "UAT", wantDebug: false, wantError: true},
		{name: "explicit level", env: "DEV", opts: Options{Level: "ERROR"}, wantDebug: false, wantError: true},
		{name: "quiet", env: "DEV", opts: Options{Level: "DEBUG", Quiet: true}, wantDebug: false, wantError: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := NewPlan(t.TempDir(), configWith(t, map[string]string{conf.KeyEnvironment: tt.env}))
			var console bytes.Buffer
			opts := tt.opts
			opts.Console = &console

			logger, err := Setup(plan, opts)
			require.NoError(t, err)
			defer logger.Close()

			logger.Debug("dbg-line")
			logger.Error("err-line")

			assert.Equal(t, tt.wantDebug, bytes.Contains(console.Bytes(), []byte("dbg-line")))
			assert.Equal(t, tt.wantError, bytes.Contains(console.Bytes(), []byte("err-line")))
		})
	}
}

func TestSetup_DegradesToConsole(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "logs"), []byte("not a directory"), 0644))
	plan := NewPlan(root, configWith(t, nil))

	var console bytes.Buffer
	logger, err := Setup(plan, Options{Console: &console})

	var dirErr *LogDirectoryError
	require.True(t, errors.As(err, &dirErr), "expected *LogDirectoryError, got %v", err)
	require.NotNil(t, logger)
	assert.False(t, logger.FileEnabled())
	assert.Contains(t, console.String(), "file logging disabled")

	// The degraded logger keeps working.
	logger.Info("still alive")
	assert.Contains(t, console.String(), "still alive")
	assert.NoError(t, logger.Close())
}

func TestSetup_ReportsPlanNotices(t *testing.T) {
	plan := NewPlan(t.TempDir(), configWith(t, map[string]string{conf.KeyLogMaxBytes: "huge"}))

	var console bytes.Buffer
	logger, err := Setup(plan, Options{Console: &console})
	require.NoError(t, err)
	defer logger.Close()

	assert.Contains(t, console.String(), conf.KeyLogMaxBytes)
}
