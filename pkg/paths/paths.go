// Package paths provides centralized path handling for zen.
// It follows the XDG base directory layout, with environment
// overrides for the directories zen reads and writes.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/zen/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the directory holding the user settings
	EnvConfigDir = "ZEN_CONFIG_DIR"

	// EnvLogFile overrides the location of the log file
	EnvLogFile = "ZEN_LOG_FILE"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Names of zen's own directories and files
const (
	// AppDirName is the directory name under each XDG base directory
	AppDirName = "zen"

	// SettingsBaseName is the user settings file name, without extension
	SettingsBaseName = "settings"

	// LogFileName is the name of the log file
	LogFileName = "zen.log"
)

// SettingsExtensions are tried in order when looking for user settings
var SettingsExtensions = []string{".toml", ".yaml", ".yml"}

// ConfigDir returns the directory of the user settings files
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		if expanded, err := ExpandHome(dir); err == nil {
			return expanded
		}
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the directory zen writes its log to
func StateDir() string {
	return filepath.Join(xdg.StateHome, AppDirName)
}

// SettingsCandidates lists the user settings files in lookup order
func SettingsCandidates() []string {
	dir := ConfigDir()
	candidates := make([]string, len(SettingsExtensions))
	for i, ext := range SettingsExtensions {
		candidates[i] = filepath.Join(dir, SettingsBaseName+ext)
	}
	return candidates
}

// LogFilePath returns the log file location, honoring ZEN_LOG_FILE
func LogFilePath() string {
	if path := os.Getenv(EnvLogFile); path != "" {
		return path
	}
	return filepath.Join(StateDir(), LogFileName)
}

// GetHomeDirectory returns the user's home directory.
// It first tries os.UserHomeDir(), then falls back to the HOME environment variable.
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}

	homeDir = os.Getenv(EnvHome)
	if homeDir != "" {
		return homeDir, nil
	}

	return "", errors.New(errors.ErrNotFound, "unable to determine home directory: neither os.UserHomeDir() nor HOME environment variable are available")
}

// ExpandHome expands a leading ~ to the user's home directory.
// Other paths are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := GetHomeDirectory()
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot expand %s", path)
	}
	return filepath.Join(homeDir, path[1:]), nil
}
