// Package cli implements the myproject command line: early flag handling,
// configuration resolution, logging setup and query dispatch.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/myproject/myproject/internal/conf"
	"github.com/myproject/myproject/internal/l10n"
	"github.com/myproject/myproject/internal/style"
)

// Process exit codes.
const (
	ExitSuccess      = 0
	ExitInvalidUsage = 1
	ExitError        = 3
	ExitCancelled    = 130
)

// Output formats accepted by --format.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Version is reported by --version. It is set at build time with
// -ldflags "-X github.com/myproject/myproject/internal/cli.Version=...".
var Version = "unknown"

// Run executes the command line in args (args[0] is the program name) and
// returns the process exit code. env is the process environment; it is
// copied, never modified.
func Run(ctx context.Context, args []string, env map[string]string, stdout, stderr io.Writer) int {
	var flagArgs []string
	if len(args) > 1 {
		flagArgs = args[1:]
	}
	early := ParseEarly(flagArgs)

	environ := make(map[string]string, len(env)+1)
	for k, v := range env {
		environ[k] = v
	}
	if early.Env != "" {
		environ[conf.KeyEnvironment] = strings.ToUpper(early.Env)
	}

	root := environ[conf.KeyRootDir]
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			fmt.Fprintln(stderr, l10n.T("Error: cannot determine working directory: %v", err))
			return ExitError
		}
		root = wd
	}

	r := &runner{
		root:    root,
		environ: environ,
		stdout:  stdout,
		stderr:  stderr,
	}

	if early.DotenvPath != "" {
		path, err := filepath.Abs(early.DotenvPath)
		if err != nil {
			path = early.DotenvPath
		}
		// A missing file is still handed to the resolver, which records it.
		r.explicitPath = path
		if _, err := os.Stat(path); err != nil {
			fmt.Fprintln(stderr, l10n.T("Warning: dotenv path not found: %s", path))
		}
	}

	err := r.app().RunContext(ctx, args)
	if err == nil {
		return ExitSuccess
	}
	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	if errors.Is(err, context.Canceled) {
		return ExitCancelled
	}
	fmt.Fprintln(stderr, l10n.T("Error: %v", err))
	return ExitError
}

// runner carries the state of one Run.
type runner struct {
	root         string
	explicitPath string
	environ      map[string]string
	stdout       io.Writer
	stderr       io.Writer
}

func (r *runner) app() *cli.App {
	return &cli.App{
		Name:  "myproject",
		Usage: l10n.T("process queries with environment-aware configuration"),
		Description: l10n.T(`Configuration is read from dotenv files in the project root.
From lowest to highest precedence:
  .env.local     developer-local overrides
  .env           team-wide defaults
  .env.override  enforced values
  --dotenv-path or MYPROJECT_DOTENV_PATH
  process environment
.env.sample is read only when none of the first three exist.
With MYPROJECT_TEST_MODE set, .env.test replaces the file chain.`),
		Version:         Version,
		Writer:          r.stdout,
		ErrWriter:       r.stderr,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   l10n.T("search query to process"),
			},
			&cli.StringFlag{
				Name:  "format",
				Value: FormatJSON,
				Usage: l10n.T("output format (%s)", strings.Join([]string{FormatText, FormatJSON}, ", ")),
			},
			&cli.StringFlag{
				Name:  "color",
				Value: style.ModeAuto,
				Usage: l10n.T("colorize output (%s)", strings.Join(style.Modes, ", ")),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: l10n.T("enable console output"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: l10n.T("print resolution diagnostics; implies --verbose"),
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: l10n.T("fail on a missing or malformed configuration file, an unknown environment or invalid log settings"),
			},
			&cli.StringFlag{
				Name:  "env",
				Usage: l10n.T("override the environment (DEV, UAT, PROD)"),
			},
			&cli.StringFlag{
				Name:  "dotenv-path",
				Usage: l10n.T("read this file above the default chain"),
			},
		},
		Action: r.action,
		OnUsageError: func(c *cli.Context, err error, _ bool) error {
			fmt.Fprintln(r.stderr, r.styler(style.ModeAuto).Error(l10n.T("argument error: %v", err)))
			return cli.Exit("", ExitInvalidUsage)
		},
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func (r *runner) styler(mode string) style.Styler {
	return style.Styler{Enabled: style.ShouldUseColor(mode, r.stdout, r.environ)}
}

// options are the parsed command line flags.
type options struct {
	Query   string
	Format  string
	Color   string
	Verbose bool
	Debug   bool
	Strict  bool
}

func (o options) fields() map[string]string {
	return map[string]string{
		"query":   o.Query,
		"format":  o.Format,
		"color":   o.Color,
		"verbose": fmt.Sprint(o.Verbose),
		"debug":   fmt.Sprint(o.Debug),
		"strict":  fmt.Sprint(o.Strict),
	}
}

func parseOptions(c *cli.Context) (options, error) {
	opts := options{
		Query:   strings.TrimSpace(c.String("query")),
		Format:  c.String("format"),
		Color:   c.String("color"),
		Debug:   c.Bool("debug"),
		Strict:  c.Bool("strict"),
		Verbose: c.Bool("verbose") || c.Bool("debug"),
	}
	if c.IsSet("query") && opts.Query == "" {
		return opts, errors.New(l10n.T("query string must not be empty"))
	}
	if !slices.Contains([]string{FormatText, FormatJSON}, opts.Format) {
		return opts, errors.New(l10n.T("invalid value %q for --format", opts.Format))
	}
	if !slices.Contains(style.Modes, opts.Color) {
		return opts, errors.New(l10n.T("invalid value %q for --color", opts.Color))
	}
	return opts, nil
}
