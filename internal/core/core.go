// Package core holds the query processing logic shared by the CLI and
// library callers. It does no I/O.
package core

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyQuery is returned for missing or blank input.
	ErrEmptyQuery = errors.New("query string cannot be empty")
	// ErrSimulatedFailure is returned by SimulateFailure for input containing "fail".
	ErrSimulatedFailure = errors.New("simulated processing failure triggered by input")
)

// SanitizeInput trims value and rejects blank input.
func SanitizeInput(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", ErrEmptyQuery
	}
	return trimmed, nil
}

// ProcessQuery sanitizes query and returns it upper-cased.
func ProcessQuery(query string) (string, error) {
	clean, err := SanitizeInput(query)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(clean), nil
}

// SimulateFailure fails for input containing "fail" (case-insensitive) and
// otherwise returns it upper-cased.
func SimulateFailure(input string) (string, error) {
	if strings.Contains(strings.ToLower(input), "fail") {
		return "", ErrSimulatedFailure
	}
	return strings.ToUpper(input), nil
}

// Hello returns a static greeting.
func Hello() string {
	return "Hello from core!"
}
