package conf

import (
	"os"
	"path/filepath"
)

// Kind identifies where a ConfigSource comes from.
type Kind int

const (
	KindProcessEnv Kind = iota
	KindExplicitPath
	KindOverride
	KindBase
	KindLocal
	KindTest
	KindSample
)

func (k Kind) String() string {
	switch k {
	case KindProcessEnv:
		return "process-env"
	case KindExplicitPath:
		return "explicit-path"
	case KindOverride:
		return "override"
	case KindBase:
		return "base"
	case KindLocal:
		return "local"
	case KindTest:
		return "test"
	case KindSample:
		return "sample"
	}
	return "unknown"
}

// ConfigSource is one candidate origin of configuration values. Path is empty
// for KindProcessEnv.
type ConfigSource struct {
	Kind   Kind
	Path   string
	Exists bool
}

func (s ConfigSource) String() string {
	if s.Path == "" {
		return s.Kind.String()
	}
	return s.Kind.String() + ":" + s.Path
}

// processEnvSource is the origin recorded for values taken from the process
// environment.
var processEnvSource = ConfigSource{Kind: KindProcessEnv, Exists: true}

// FileProbe answers existence and read queries against the filesystem.
type FileProbe interface {
	Exists(path string) bool
	ReadFile(path string) ([]byte, error)
}

// OSProbe is a FileProbe backed by the os package.
type OSProbe struct{}

func (OSProbe) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (OSProbe) ReadFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, &notRegularError{path: path}
	}
	return os.ReadFile(path)
}

type notRegularError struct {
	path string
}

func (e *notRegularError) Error() string {
	return e.path + " is not a regular file"
}

// candidatePaths returns every file the resolver may probe, keyed by kind.
// The explicit path is joined to root when relative.
func candidatePaths(root, explicit string) map[Kind]string {
	paths := map[Kind]string{
		KindOverride: filepath.Join(root, FileOverride),
		KindBase:     filepath.Join(root, FileBase),
		KindLocal:    filepath.Join(root, FileLocal),
		KindTest:     filepath.Join(root, FileTest),
		KindSample:   filepath.Join(root, FileSample),
	}
	if explicit != "" {
		if !filepath.IsAbs(explicit) {
			explicit = filepath.Join(root, explicit)
		}
		paths[KindExplicitPath] = explicit
	}
	return paths
}
