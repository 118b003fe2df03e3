package conf

import (
	"os"
	"strconv"
	"strings"
)

// Environment is a named deployment environment.
type Environment string

const (
	EnvDev  Environment = "DEV"
	EnvUAT  Environment = "UAT"
	EnvProd Environment = "PROD"
	EnvTest Environment = "TEST"
)

// DefaultEnvironment is used when no recognized environment is configured.
const DefaultEnvironment = EnvDev

// Environments lists the recognized environments.
var Environments = []Environment{EnvDev, EnvUAT, EnvProd, EnvTest}

// Classify maps a raw environment value to an Environment. Test mode always
// yields EnvTest. An absent value yields the default silently; an
// unrecognized one yields the default and an *UnrecognizedEnvironmentNotice.
func Classify(raw string, testMode bool) (Environment, error) {
	if testMode {
		return EnvTest, nil
	}
	normalized := Environment(strings.ToUpper(strings.TrimSpace(raw)))
	if normalized == "" {
		return DefaultEnvironment, nil
	}
	for _, env := range Environments {
		if normalized == env {
			return env, nil
		}
	}
	return DefaultEnvironment, &UnrecognizedEnvironmentNotice{Value: raw}
}

// DetectTestMode reports whether env carries the test harness marker.
func DetectTestMode(env map[string]string) bool {
	return truthy(env[KeyTestMode])
}

// Environ returns a copy of the process environment as a map.
func Environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

func truthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "y", "on":
		return true
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	return err == nil && b
}
