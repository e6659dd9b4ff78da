package settings

import (
	"strings"

	"github.com/arthur-debert/zen/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Dump serializes a raw settings tree as "toml" or "yaml"
func Dump(raw map[string]interface{}, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "toml", "":
		out, err := toml.Marshal(raw)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode settings as TOML")
		}
		return out, nil
	case "yaml", "yml":
		out, err := yaml.Marshal(raw)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode settings as YAML")
		}
		return out, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown settings format %q", format)
	}
}
