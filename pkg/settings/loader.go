package settings

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	zenerrors "github.com/arthur-debert/zen/pkg/errors"
	"github.com/arthur-debert/zen/pkg/logging"
	"github.com/arthur-debert/zen/pkg/paths"
	"github.com/arthur-debert/zen/pkg/resources"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultSettings []byte

// EnvPrefix is the prefix of environment variables that override options
const EnvPrefix = "ZEN_"

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// LoadOptions selects the layers Load stacks over the built-in defaults
type LoadOptions struct {
	// Files are applied in order after the user settings file
	Files []string
	// SkipUserConfig ignores $XDG_CONFIG_HOME/zen/settings.*
	SkipUserConfig bool
	// SkipEnv ignores ZEN_* environment overrides
	SkipEnv bool
}

// DefaultRaw returns a fresh copy of the built-in raw settings tree
func DefaultRaw() map[string]interface{} {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultSettings}, toml.Parser()); err != nil {
		return map[string]interface{}{}
	}
	return k.Raw()
}

// Defaults compiles the built-in settings only
func Defaults() (*resources.Settings, error) {
	return Build(DefaultRaw())
}

// Load merges every configured layer into one raw settings tree:
// built-in defaults, the user settings file, explicit files, then the
// environment. Each file layer is extended over the result so far.
func Load(opts LoadOptions) (map[string]interface{}, error) {
	logger := logging.GetLogger("settings")

	merged := DefaultRaw()
	if len(merged) == 0 {
		return nil, zenerrors.New(zenerrors.ErrConfigParse, "failed to load built-in settings")
	}

	var files []string
	if !opts.SkipUserConfig {
		if path := UserConfigPath(); path != "" {
			files = append(files, path)
		}
	}
	files = append(files, opts.Files...)

	for _, path := range files {
		layer, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		logger.Debug().Str("path", path).Int("keys", len(layer)).Msg("Applying settings layer")
		Extend(merged, layer)
	}

	if !opts.SkipEnv {
		overrides, err := loadEnv()
		if err != nil {
			return nil, err
		}
		if len(overrides) > 0 {
			logger.Debug().Int("keys", len(overrides)).Msg("Applying environment overrides")
		}
		Extend(merged, overrides)
	}

	return merged, nil
}

// LoadSettings loads and compiles settings in one step
func LoadSettings(opts LoadOptions) (*resources.Settings, error) {
	raw, err := Load(opts)
	if err != nil {
		return nil, err
	}
	return Build(raw)
}

// UserConfigPath returns the first existing user settings file, or ""
func UserConfigPath() string {
	for _, path := range UserConfigCandidates() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// UserConfigCandidates lists the user settings locations in lookup order
func UserConfigCandidates() []string {
	return paths.SettingsCandidates()
}

func loadFile(path string) (map[string]interface{}, error) {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		return nil, zenerrors.Newf(zenerrors.ErrConfigLoad, "unsupported settings format %q", filepath.Ext(path)).
			WithDetail("path", path)
	}

	if _, err := os.Stat(path); err != nil {
		return nil, zenerrors.Wrapf(err, zenerrors.ErrConfigLoad, "failed to read settings from %s", path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, zenerrors.Wrapf(err, zenerrors.ErrConfigParse, "failed to parse settings from %s", path)
	}
	return k.Raw(), nil
}

var envOptions = map[string]bool{
	"indentation":  true,
	"newline":      true,
	"default_type": true,
}

func loadEnv() (map[string]interface{}, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, zenerrors.Wrap(err, zenerrors.ErrConfigLoad, "failed to load env vars")
	}

	overrides := make(map[string]interface{})
	for key, value := range k.Raw() {
		if envOptions[key] {
			overrides[key] = value
		}
	}
	return overrides, nil
}
