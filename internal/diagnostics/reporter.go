// Package diagnostics prints how the configuration was resolved, for users
// debugging their dotenv setup. Output goes to a writer, not the log.
package diagnostics

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/myproject/myproject/internal/conf"
	"github.com/myproject/myproject/internal/l10n"
	"github.com/myproject/myproject/internal/style"
)

const tracePrefix = "[dotenv-debug] "

// Reporter writes resolution diagnostics to Out.
type Reporter struct {
	Out   io.Writer
	Style style.Styler
}

func (r Reporter) line(format func(string) string, msg string) {
	fmt.Fprintln(r.Out, format(msg))
}

// Trace prints the probed files, the applied files in order, recovered
// notices, and the origin of every application key. extra notices, such as
// rejected log settings, are listed after those recorded during resolution.
func (r Reporter) Trace(cfg conf.Config, extra ...error) {
	tr := cfg.Trace()
	settings := func(msg string) { r.line(r.Style.Settings, tracePrefix+msg) }

	settings(l10n.T("root: %s", tr.Root))
	settings(l10n.T("test mode: %v", tr.TestMode))
	for _, c := range tr.Candidates {
		state := l10n.T("missing")
		if c.Exists {
			state = l10n.T("found")
		}
		settings(fmt.Sprintf("  %-13s %s (%s)", c.Kind, c.Path, state))
	}

	sources := cfg.Sources()
	if len(sources) == 0 {
		settings(l10n.T("No .env file found or resolved."))
		settings(l10n.T("Environment variables may only be coming from the OS."))
	} else {
		n := uint32(len(sources))
		settings(l10n.TN("%d file applied, lowest precedence first:", "%d files applied, lowest precedence first:", n, n))
		for _, src := range sources {
			settings(fmt.Sprintf("  %s", src))
		}
	}

	for _, notice := range append(tr.Notices, extra...) {
		r.line(r.Style.Warning, tracePrefix+l10n.T("notice: %v", notice))
	}

	for _, key := range traceKeys(cfg) {
		origin, _ := cfg.Origin(key)
		value, _ := cfg.Lookup(key)
		settings(fmt.Sprintf("  %s=%s <- %s", key, value, origin))
	}
	settings(l10n.T("environment: %s", cfg.Environment()))
}

// traceKeys returns the keys worth reporting: every file-supplied key, and
// process environment keys carrying the application prefix.
func traceKeys(cfg conf.Config) []string {
	var keys []string
	for _, key := range cfg.Keys() {
		origin, _ := cfg.Origin(key)
		if origin.Kind != conf.KindProcessEnv || strings.HasPrefix(key, conf.KeyPrefix) {
			keys = append(keys, key)
		}
	}
	return keys
}

// Summary prints the parsed arguments, the environment and the applied files.
func (r Reporter) Summary(args map[string]string, cfg conf.Config) {
	debug := func(msg string) { r.line(r.Style.Debug, msg) }

	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + "=" + args[name]
	}

	var loaded []string
	for _, src := range cfg.Sources() {
		loaded = append(loaded, src.Path)
	}

	debug("=== DEBUG DIAGNOSTICS ===")
	debug(fmt.Sprintf("%-16s: %s", l10n.T("Parsed args"), strings.Join(parts, " ")))
	debug(fmt.Sprintf("%-16s: %s", l10n.T("Environment"), cfg.Environment()))
	debug(fmt.Sprintf("%-16s: [%s]", l10n.T("Loaded dotenvs"), strings.Join(loaded, ", ")))
	debug("=== END DEBUG DIAGNOSTICS ===")
}
