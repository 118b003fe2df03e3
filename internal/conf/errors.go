package conf

import "fmt"

// MissingSourceWarning reports an explicit configuration path that does not
// exist. Resolution continues with the remaining sources.
type MissingSourceWarning struct {
	Source ConfigSource
}

func (w *MissingSourceWarning) Error() string {
	return fmt.Sprintf("explicit config file %s does not exist", w.Source.Path)
}

// MalformedSourceError reports a file that exists but could not be read or
// parsed as key-value pairs. The source contributes no keys.
type MalformedSourceError struct {
	Source ConfigSource
	Err    error
}

func (e *MalformedSourceError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Source.Path, e.Err)
}

func (e *MalformedSourceError) Unwrap() error {
	return e.Err
}

// UnrecognizedEnvironmentNotice reports an environment name outside the
// closed set. Classification falls back to DEV.
type UnrecognizedEnvironmentNotice struct {
	Value string
}

func (n *UnrecognizedEnvironmentNotice) Error() string {
	return fmt.Sprintf("unrecognized environment %q, using %s", n.Value, DefaultEnvironment)
}
