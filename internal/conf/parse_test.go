package conf

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSource(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		input       string
		expectError bool
		expected    map[string]string
	}{
		{
			name: "dotenv with comments, quotes and export",
			path: ".env",
			input: `# team defaults
MYPROJECT_ENV=uat
export MYPROJECT_LOG_LEVEL="DEBUG"
MYPROJECT_LOG_MAX_BYTES='2048'
`,
			expected: map[string]string{
				KeyEnvironment: "uat",
				KeyLogLevel:    "DEBUG",
				KeyLogMaxBytes: "2048",
			},
		},
		{
			name:     "empty dotenv",
			path:     ".env",
			input:    "",
			expected: map[string]string{},
		},
		{
			name:        "invalid dotenv",
			path:        ".env.local",
			input:       "!broken",
			expectError: true,
		},
		{
			name: "TOML with nested table and array",
			path: "config/settings.TOML",
			input: `MYPROJECT_ENV = "prod"
MYPROJECT_DEBUG_ENV_LOAD = true

[LOG]
TAGS = ["a", "b"]
`,
			expected: map[string]string{
				KeyEnvironment:  "prod",
				KeyDebugEnvLoad: "true",
				"LOG_TAGS":      "a,b",
			},
		},
		{
			name:        "invalid TOML",
			path:        "x.toml",
			input:       "not valid toml ===",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseSource(tt.path, []byte(tt.input))

			if tt.expectError && err == nil {
				t.Error("expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.expectError {
				if diff := cmp.Diff(tt.expected, result); diff != "" {
					t.Errorf("parseSource() mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}
