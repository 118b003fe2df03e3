package conf

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
}

// TestMissingKeysInOverride tests what happens when a higher layer doesn't
// specify certain keys - they should NOT overwrite the lower layers
func TestMissingKeysInOverride(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		FileBase: `MYPROJECT_ENV=UAT
MYPROJECT_LOG_MAX_BYTES=2048
MYPROJECT_LOG_BACKUP_COUNT=7
MYPROJECT_LOG_LEVEL=INFO
`,
		// Override only sets the log level, nothing else
		FileOverride: "MYPROJECT_LOG_LEVEL=DEBUG\n",
	})

	r := &Resolver{Root: root}
	config, err := r.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := config.Get(KeyEnvironment); got != "UAT" {
		t.Errorf("expected %s=UAT (preserved!), got %s", KeyEnvironment, got)
	}
	if got := config.Get(KeyLogMaxBytes); got != "2048" {
		t.Errorf("expected %s=2048 (preserved!), got %s", KeyLogMaxBytes, got)
	}
	if got := config.Get(KeyLogBackupCount); got != "7" {
		t.Errorf("expected %s=7 (preserved!), got %s", KeyLogBackupCount, got)
	}
	if got := config.Get(KeyLogLevel); got != "DEBUG" {
		t.Errorf("expected %s=DEBUG (overridden), got %s", KeyLogLevel, got)
	}
	if src, _ := config.Origin(KeyLogLevel); src.Kind != KindOverride {
		t.Errorf("expected %s to come from the override file, got %s", KeyLogLevel, src)
	}
}

// TestEmptyStringOverwrite tests if we can actually set values to empty strings
func TestEmptyStringOverwrite(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		FileBase:     "MYPROJECT_LOG_LEVEL=WARN\nMYPROJECT_ENV=PROD\n",
		FileOverride: "MYPROJECT_LOG_LEVEL=\nMYPROJECT_ENV=\"\"\n",
	})

	r := &Resolver{Root: root}
	config, err := r.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	level, ok := config.Lookup(KeyLogLevel)
	if !ok || level != "" {
		t.Errorf("log level was not overridden to empty: got %q (set=%v)", level, ok)
	}
	if got := config.Get(KeyEnvironment); got != "" {
		t.Errorf("environment was not overridden to empty: got %q", got)
	}
	// An empty environment name falls back to the default.
	if config.Environment() != EnvDev {
		t.Errorf("expected environment DEV, got %s", config.Environment())
	}
}

func TestProcessEnvironmentOverridesFiles(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		FileLocal:    "MYPROJECT_LOG_BACKUP_COUNT=1\n",
		FileBase:     "MYPROJECT_ENV=PROD\nMYPROJECT_LOG_BACKUP_COUNT=2\n",
		FileOverride: "MYPROJECT_LOG_BACKUP_COUNT=3\n",
		"custom.env": "MYPROJECT_LOG_BACKUP_COUNT=4\nMYPROJECT_LOG_LEVEL=ERROR\n",
	})

	r := &Resolver{
		Root:         root,
		ExplicitPath: "custom.env",
		Environ:      map[string]string{KeyEnvironment: "UAT", KeyLogLevel: "DEBUG"},
	}
	config, err := r.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.Environment() != EnvUAT {
		t.Errorf("expected process environment to win with UAT, got %s", config.Environment())
	}
	if got := config.Get(KeyLogBackupCount); got != "4" {
		t.Errorf("expected explicit file to win with 4, got %s", got)
	}
	if got := config.Get(KeyLogLevel); got != "DEBUG" {
		t.Errorf("expected process environment to win with DEBUG, got %s", got)
	}
	if src, _ := config.Origin(KeyLogLevel); src.Kind != KindProcessEnv {
		t.Errorf("expected %s origin process-env, got %s", KeyLogLevel, src)
	}

	var kinds []Kind
	for _, src := range config.Sources() {
		kinds = append(kinds, src.Kind)
	}
	want := []Kind{KindLocal, KindBase, KindOverride, KindExplicitPath}
	if len(kinds) != len(want) {
		t.Fatalf("expected sources %v, got %v", want, kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("source %d: expected %s, got %s", i, want[i], kinds[i])
		}
	}
}
