package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/myproject/myproject/internal/conf"
	"github.com/myproject/myproject/internal/core"
	"github.com/myproject/myproject/internal/diagnostics"
	"github.com/myproject/myproject/internal/l10n"
	"github.com/myproject/myproject/internal/logging"
	"github.com/myproject/myproject/internal/style"
)

// results memoizes query processing for the life of the process.
var results = core.NewCache()

// errSimulated is returned for the query "fail" in DEV.
var errSimulated = errors.New("simulated runtime failure for DEV debugging")

var envBanners = map[conf.Environment]string{
	conf.EnvDev:  "DEV environment: Full diagnostics enabled",
	conf.EnvUAT:  "UAT environment: Pre-production validation",
	conf.EnvProd: "PROD environment: Logs and diagnostics are limited",
	conf.EnvTest: "TEST environment: Isolated test configuration",
}

// result is the JSON output document.
type result struct {
	Environment conf.Environment `json:"environment"`
	Input       string           `json:"input"`
	Output      string           `json:"output"`
}

func (r *runner) action(c *cli.Context) error {
	opts, err := parseOptions(c)
	if err != nil {
		fmt.Fprintln(r.stderr, r.styler(c.String("color")).Error(l10n.T("argument error: %v", err)))
		return cli.Exit("", ExitInvalidUsage)
	}
	st := r.styler(opts.Color)

	resolver := conf.Resolver{
		Root:         r.root,
		ExplicitPath: r.explicitPath,
		TestMode:     conf.DetectTestMode(r.environ),
		Environ:      r.environ,
		Strict:       opts.Strict,
	}
	cfg, strictErr := resolver.Read()

	plan := logging.NewPlan(r.root, cfg)
	logger, _ := logging.Setup(plan, logging.Options{
		Console: r.stderr,
		Level:   cfg.Get(conf.KeyLogLevel),
		Quiet:   !opts.Verbose,
	})
	defer logger.Close()

	for _, notice := range cfg.Trace().Notices {
		logger.Warn("configuration", "error", notice)
	}
	if opts.Strict && len(plan.Notices) > 0 {
		strictErr = errors.Join(strictErr, errors.Join(plan.Notices...))
	}

	reporter := diagnostics.Reporter{Out: r.stdout, Style: st}
	if opts.Debug || cfg.Bool(conf.KeyDebugEnvLoad) {
		reporter.Trace(cfg, plan.Notices...)
	}
	if strictErr != nil {
		fmt.Fprintln(r.stderr, st.Error(l10n.T("Error: configuration rejected in strict mode: %v", strictErr)))
		return cli.Exit("", ExitInvalidUsage)
	}
	if opts.Debug {
		reporter.Summary(opts.fields(), cfg)
	}

	r.say(opts.Verbose, logger, st.Info, slog.LevelInfo, l10n.T("Processing query..."))

	if opts.Query == "" {
		fmt.Fprintln(r.stderr, st.Error(l10n.T("Error: --query is required.")))
		return cli.Exit("", ExitInvalidUsage)
	}

	processed, err := r.process(c.Context, opts, cfg, logger, st)
	switch {
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		r.say(opts.Verbose, logger, st.Warning, slog.LevelWarn, l10n.T("Search cancelled by user."))
		return cli.Exit("", ExitCancelled)
	case err != nil:
		logger.Error("query processing failed", "query", opts.Query, "error", err)
		fmt.Fprintln(r.stderr, st.Error(l10n.T("Error: %v", err)))
		return cli.Exit("", ExitError)
	}

	stats := results.Stats()
	logger.Debug("result cache", "hits", stats.Hits, "misses", stats.Misses, "size", stats.Queries)

	return r.render(opts, cfg, processed, logger, st)
}

// say writes msg to stdout when verbose, and otherwise logs it at level.
func (r *runner) say(verbose bool, logger *logging.Logger, format func(string) string, level slog.Level, msg string) {
	if verbose {
		fmt.Fprintln(r.stdout, format(msg))
		return
	}
	logger.Log(context.Background(), level, msg)
}

// process runs the query. DEV returns a mock result without touching the
// core logic; the query "fail" simulates an error.
func (r *runner) process(ctx context.Context, opts options, cfg conf.Config, logger *logging.Logger, st style.Styler) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if cfg.Environment() != conf.EnvDev {
		return results.Query(opts.Query)
	}

	r.say(opts.Verbose, logger, st.Debug, slog.LevelDebug, l10n.T("Simulating logic in DEV mode..."))
	if strings.ToLower(opts.Query) == "fail" {
		if _, err := results.SimulatedFailure(opts.Query); err != nil {
			return "", fmt.Errorf("%w: %w", errSimulated, err)
		}
	}
	return "Processed (DEV MOCK): " + strings.ToUpper(opts.Query), nil
}

func (r *runner) render(opts options, cfg conf.Config, processed string, logger *logging.Logger, st style.Styler) error {
	env := cfg.Environment()
	banner := l10n.T(envBanners[env])
	bannerStyle, bannerLevel := st.Info, slog.LevelInfo
	switch env {
	case conf.EnvDev:
		bannerStyle, bannerLevel = st.Debug, slog.LevelDebug
	case conf.EnvProd:
		bannerStyle, bannerLevel = st.Warning, slog.LevelWarn
	}

	if opts.Format == FormatJSON {
		data, err := json.MarshalIndent(result{Environment: env, Input: opts.Query, Output: processed}, "", "  ")
		if err != nil {
			fmt.Fprintln(r.stderr, st.Error(l10n.T("Error: %v", err)))
			return cli.Exit("", ExitError)
		}
		fmt.Fprintln(r.stdout, string(data))
		if opts.Verbose {
			fmt.Fprintln(r.stdout, st.Info(l10n.T("Processed query: %s", processed)))
			fmt.Fprintln(r.stdout, bannerStyle(banner))
		} else {
			logger.Info("processed query", "output", processed)
			logger.Log(context.Background(), bannerLevel, banner)
		}
		return nil
	}

	logger.Info("processed query", "output", processed)
	lines := []string{
		"[RESULT]",
		l10n.T("Input query    : %s", opts.Query),
		processed,
	}
	if opts.Verbose {
		lines = append(lines, bannerStyle(banner))
	} else {
		logger.Log(context.Background(), bannerLevel, banner)
	}
	for _, line := range lines {
		fmt.Fprintln(r.stdout, line)
	}
	return nil
}
