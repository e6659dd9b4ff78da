package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
)

// TestEnvironment points every XDG base directory at a temp dir so that
// user settings and log files never leak into tests
type TestEnvironment struct {
	Root        string
	ConfigHome  string
	StateHome   string
	SettingsDir string

	t *testing.T
}

// NewTestEnvironment creates an isolated environment. Every ZEN_* variable
// of the calling process is cleared for the duration of the test.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		Root:       root,
		ConfigHome: filepath.Join(root, "config"),
		StateHome:  filepath.Join(root, "state"),
		t:          t,
	}
	env.SettingsDir = filepath.Join(env.ConfigHome, "zen")

	for _, kv := range os.Environ() {
		if name, _, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(name, "ZEN_") {
			t.Setenv(name, "")
			_ = os.Unsetenv(name)
		}
	}

	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	return env
}

// WriteUserSettings writes content as the user's settings.toml
func (e *TestEnvironment) WriteUserSettings(content string) string {
	e.t.Helper()
	return e.WriteFile(filepath.Join(e.SettingsDir, "settings.toml"), content)
}

// WriteFile writes content at path, relative paths being taken from Root
func (e *TestEnvironment) WriteFile(path, content string) string {
	e.t.Helper()

	if !filepath.IsAbs(path) {
		path = filepath.Join(e.Root, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}
