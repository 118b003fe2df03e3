package conf

import (
	"errors"
	"sort"
)

// Config is an immutable snapshot of resolved configuration. The zero value
// is an empty DEV configuration. Build a new Config with Resolver.Read rather
// than patching one.
type Config struct {
	values  map[string]string
	origins map[string]ConfigSource
	env     Environment
	sources []ConfigSource
	trace   Trace
}

// Trace records how a Config was resolved.
type Trace struct {
	Root     string
	TestMode bool
	// Candidates holds every probed file, with Exists filled in.
	Candidates []ConfigSource
	// Notices holds the recovered warnings and errors of the resolution:
	// *MissingSourceWarning, *MalformedSourceError and
	// *UnrecognizedEnvironmentNotice.
	Notices []error
}

// Lookup returns the value of key and whether it is set.
func (c Config) Lookup(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Get returns the value of key, or an empty string.
func (c Config) Get(key string) string {
	return c.values[key]
}

// Bool reports whether key holds a truthy value (1, true, yes, on).
func (c Config) Bool(key string) bool {
	return truthy(c.values[key])
}

// Keys returns the set keys in sorted order.
func (c Config) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Origin returns the source that supplied the value of key.
func (c Config) Origin(key string) (ConfigSource, bool) {
	src, ok := c.origins[key]
	return src, ok
}

// Environment returns the classified environment.
func (c Config) Environment() Environment {
	if c.env == "" {
		return DefaultEnvironment
	}
	return c.env
}

// Sources returns the file sources that were applied, in application order.
func (c Config) Sources() []ConfigSource {
	return append([]ConfigSource(nil), c.sources...)
}

// Trace returns the resolution trace.
func (c Config) Trace() Trace {
	t := c.trace
	t.Candidates = append([]ConfigSource(nil), t.Candidates...)
	t.Notices = append([]error(nil), t.Notices...)
	return t
}

// Resolver runs the resolution pipeline: probe files, decide their order,
// load and merge them under the process environment, and classify the
// environment.
type Resolver struct {
	// Root is the project root the file names are relative to.
	Root string
	// ExplicitPath names a file layered above the base chain. When empty,
	// MYPROJECT_DOTENV_PATH from Environ is used.
	ExplicitPath string
	// TestMode makes the test file the only file source when it exists, and
	// pins the environment to TEST.
	TestMode bool
	// Environ is the process environment. It always takes final precedence.
	Environ map[string]string
	// Probe defaults to OSProbe.
	Probe FileProbe
	// Strict makes Read return the recorded notices as an error.
	Strict bool
}

// Read resolves a Config. Missing and malformed files are recorded in the
// trace and never abort resolution. In strict mode the recorded notices are
// also returned, joined, alongside the Config.
func (r *Resolver) Read() (Config, error) {
	probe := r.Probe
	if probe == nil {
		probe = OSProbe{}
	}
	explicit := r.ExplicitPath
	if explicit == "" {
		explicit = r.Environ[KeyDotenvPath]
	}

	sources, candidates, notices := ResolveSources(r.Root, explicit, r.TestMode, probe.Exists)

	layers := make([]Layer, 0, len(sources))
	applied := make([]ConfigSource, 0, len(sources))
	for _, src := range sources {
		values, err := loadSource(probe, src)
		if err != nil {
			notices = append(notices, err)
			continue
		}
		layers = append(layers, Layer{Source: src, Values: values})
		applied = append(applied, src)
	}

	merged := Merge(layers, r.Environ)

	env, err := Classify(merged.Values[KeyEnvironment], r.TestMode)
	if err != nil {
		notices = append(notices, err)
	}

	cfg := Config{
		values:  merged.Values,
		origins: merged.Origins,
		env:     env,
		sources: applied,
		trace: Trace{
			Root:       r.Root,
			TestMode:   r.TestMode,
			Candidates: candidates,
			Notices:    notices,
		},
	}

	if r.Strict && len(notices) > 0 {
		return cfg, errors.Join(notices...)
	}
	return cfg, nil
}

func loadSource(probe FileProbe, src ConfigSource) (map[string]string, error) {
	data, err := probe.ReadFile(src.Path)
	if err != nil {
		return nil, &MalformedSourceError{Source: src, Err: err}
	}
	values, err := parseSource(src.Path, data)
	if err != nil {
		return nil, &MalformedSourceError{Source: src, Err: err}
	}
	return values, nil
}
