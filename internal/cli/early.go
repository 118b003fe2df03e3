package cli

import "strings"

// EarlyFlags are the flags that shape configuration resolution. They are read
// before the full parser runs, since the environment they select decides how
// the rest of the run behaves.
type EarlyFlags struct {
	Env        string
	DotenvPath string
}

// valueFlags take a value as the following argument. Their values are skipped
// so that a query spelled like a flag is not mistaken for one.
var valueFlags = map[string]bool{
	"q":      true,
	"query":  true,
	"format": true,
	"color":  true,
}

// ParseEarly scans args for the env and dotenv-path flags. Like the full
// parser it accepts one or two leading dashes and both the "-flag value" and
// "-flag=value" forms. Other arguments are ignored and scanning stops at
// "--". The last occurrence of a flag wins.
func ParseEarly(args []string) EarlyFlags {
	var early EarlyFlags
	for i := 0; i < len(args); i++ {
		if args[i] == "--" {
			break
		}
		name, value, hasValue := strings.Cut(args[i], "=")
		name, ok := flagName(name)
		if !ok {
			continue
		}
		if valueFlags[name] {
			if !hasValue {
				i++
			}
			continue
		}
		if name != "env" && name != "dotenv-path" {
			continue
		}
		if !hasValue {
			if i+1 >= len(args) {
				break
			}
			i++
			value = args[i]
		}
		if name == "env" {
			early.Env = value
		} else {
			early.DotenvPath = value
		}
	}
	return early
}

// flagName strips one or two leading dashes from arg.
func flagName(arg string) (string, bool) {
	name, ok := strings.CutPrefix(arg, "-")
	if !ok {
		return "", false
	}
	name = strings.TrimPrefix(name, "-")
	if name == "" || strings.HasPrefix(name, "-") {
		return "", false
	}
	return name, true
}
