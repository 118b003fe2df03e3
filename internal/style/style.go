// Package style colors terminal output.
package style

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color modes accepted by the --color flag.
const (
	ModeAuto   = "auto"
	ModeAlways = "always"
	ModeNever  = "never"
)

// Modes lists the valid color modes.
var Modes = []string{ModeAuto, ModeAlways, ModeNever}

// ShouldUseColor decides whether output to w is colored. In auto mode color
// is used when w is a terminal and NO_COLOR is unset in env.
func ShouldUseColor(mode string, w io.Writer, env map[string]string) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}
	if _, ok := env["NO_COLOR"]; ok {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Styler formats messages by kind.
type Styler struct {
	Enabled bool
}

func (s Styler) paint(msg string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	if s.Enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(msg)
}

func (s Styler) Error(msg string) string    { return s.paint(msg, color.FgRed, color.Bold) }
func (s Styler) Warning(msg string) string  { return s.paint(msg, color.FgYellow) }
func (s Styler) Info(msg string) string     { return s.paint(msg, color.FgGreen) }
func (s Styler) Debug(msg string) string    { return s.paint(msg, color.FgCyan) }
func (s Styler) Settings(msg string) string { return s.paint(msg, color.FgMagenta) }
