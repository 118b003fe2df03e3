package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEarly(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want EarlyFlags
	}{
		{name: "none", args: []string{"--query", "hello"}, want: EarlyFlags{}},
		{name: "separate values", args: []string{"--env", "uat", "--dotenv-path", "cfg/dev.env"}, want: EarlyFlags{Env: "uat", DotenvPath: "cfg/dev.env"}},
		{name: "joined values", args: []string{"--env=prod", "--dotenv-path=/etc/app.env"}, want: EarlyFlags{Env: "prod", DotenvPath: "/etc/app.env"}},
		{name: "mixed with other flags", args: []string{"-q", "x", "--env", "dev", "--verbose"}, want: EarlyFlags{Env: "dev"}},
		{name: "last wins", args: []string{"--env", "dev", "--env=uat"}, want: EarlyFlags{Env: "uat"}},
		{name: "dangling flag", args: []string{"--env"}, want: EarlyFlags{}},
		{name: "stops at terminator", args: []string{"--", "--env", "prod"}, want: EarlyFlags{}},
		{name: "similar prefix ignored", args: []string{"--envelope", "x"}, want: EarlyFlags{}},
		{name: "single dash", args: []string{"-env", "PROD", "-dotenv-path", "a.env"}, want: EarlyFlags{Env: "PROD", DotenvPath: "a.env"}},
		{name: "single dash joined", args: []string{"-env=uat", "-dotenv-path=b.env"}, want: EarlyFlags{Env: "uat", DotenvPath: "b.env"}},
		{name: "three dashes ignored", args: []string{"---env", "prod"}, want: EarlyFlags{}},
		{name: "query value spelled like flag", args: []string{"-q", "--env", "--format", "json"}, want: EarlyFlags{}},
		{name: "query value then real flag", args: []string{"--query", "--env", "--env", "uat"}, want: EarlyFlags{Env: "uat"}},
		{name: "joined query value", args: []string{"--query=--env", "--env", "prod"}, want: EarlyFlags{Env: "prod"}},
		{name: "color value skipped", args: []string{"--color", "never", "-env", "dev"}, want: EarlyFlags{Env: "dev"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseEarly(tt.args))
		})
	}
}
