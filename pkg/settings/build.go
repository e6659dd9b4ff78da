package settings

import (
	"reflect"
	"sort"
	"strings"

	"github.com/arthur-debert/zen/pkg/errors"
	"github.com/arthur-debert/zen/pkg/logging"
	"github.com/arthur-debert/zen/pkg/resources"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
)

// Options are the top-level presentation settings
type Options struct {
	Indentation string `koanf:"indentation"`
	Newline     string `koanf:"newline"`
	DefaultType string `koanf:"default_type"`
}

// DefaultOptions returns the options used when a layer leaves them unset
func DefaultOptions() Options {
	return Options{
		Indentation: "\t",
		Newline:     "\n",
		DefaultType: "html",
	}
}

// Build compiles a merged raw settings tree into the resource model.
// Top-level scalars are options; every top-level object is a document type.
// Document types declaring "extends" are layered over their parent first.
func Build(raw map[string]interface{}) (*resources.Settings, error) {
	logger := logging.GetLogger("settings")
	done := logging.LogOperationStart(logger, "build")
	defer done()

	opts, err := decodeOptions(raw)
	if err != nil {
		return nil, err
	}

	types, err := resolveExtends(raw)
	if err != nil {
		return nil, err
	}

	compiled := CreateMaps(Parse(types))

	s := resources.NewSettings(opts.Indentation, opts.Newline, opts.DefaultType)
	for name, value := range compiled {
		node, ok := value.(map[string]interface{})
		if !ok {
			continue
		}
		s.Types[name] = toResourceSet(name, node)
		logger.Debug().
			Str("type", name).
			Int("abbreviations", len(s.Types[name].Abbreviations)).
			Int("snippets", len(s.Types[name].Snippets)).
			Msg("Compiled resource set")
	}

	return s, nil
}

// decodeOptions reads the top-level scalars through koanf so that option
// decoding follows the same rules for every layer.
func decodeOptions(raw map[string]interface{}) (Options, error) {
	top := make(map[string]interface{})
	for k, v := range raw {
		if _, isMap := v.(map[string]interface{}); !isMap {
			top[k] = v
		}
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(top, ""), nil); err != nil {
		return Options{}, errors.Wrap(err, errors.ErrConfigParse, "failed to load options")
	}

	opts := DefaultOptions()
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &opts,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				unescapeHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &opts, unmarshalConf); err != nil {
		return Options{}, errors.Wrap(err, errors.ErrConfigParse, "failed to decode options")
	}

	nl, err := ParseNewline(opts.Newline)
	if err != nil {
		return Options{}, err
	}
	opts.Newline = nl
	return opts, nil
}

var escapes = strings.NewReplacer(`\t`, "\t", `\r`, "\r", `\n`, "\n")

// unescapeHookFunc turns literal escape sequences (as typed in environment
// variables) into the characters they name.
func unescapeHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() == reflect.String && t.Kind() == reflect.String {
			return escapes.Replace(data.(string)), nil
		}
		return data, nil
	}
}

// ParseNewline accepts a literal line ending or one of the names lf, crlf
// and cr.
func ParseNewline(s string) (string, error) {
	switch strings.ToLower(s) {
	case "lf", "\n":
		return "\n", nil
	case "crlf", "\r\n":
		return "\r\n", nil
	case "cr", "\r":
		return "\r", nil
	default:
		return "", errors.Newf(errors.ErrConfigValid, "unsupported newline %q (use lf, crlf or cr)", s)
	}
}

// resolveExtends returns a copy of the document type subtrees with every
// "extends" declaration applied: the parent's tree is cloned and the
// child extended over it.
func resolveExtends(raw map[string]interface{}) (map[string]interface{}, error) {
	types := make(map[string]interface{})
	for k, v := range raw {
		if m, ok := v.(map[string]interface{}); ok {
			types[k] = m
		}
	}

	resolved := make(map[string]map[string]interface{})
	visiting := make(map[string]bool)

	var resolve func(name string) (map[string]interface{}, error)
	resolve = func(name string) (map[string]interface{}, error) {
		if r, ok := resolved[name]; ok {
			return r, nil
		}
		if visiting[name] {
			return nil, errors.Newf(errors.ErrConfigValid, "document type %q extends itself", name)
		}
		node, ok := types[name].(map[string]interface{})
		if !ok {
			return nil, errors.Newf(errors.ErrConfigValid, "unknown document type %q", name)
		}

		parentName, hasParent := node[KeyExtends].(string)
		if !hasParent {
			r := Clone(node)
			resolved[name] = r
			return r, nil
		}

		visiting[name] = true
		parent, err := resolve(parentName)
		delete(visiting, name)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid, "document type %q extends %q", name, parentName)
		}

		r := Clone(parent)
		Extend(r, node)
		delete(r, KeyExtends)
		resolved[name] = r
		return r, nil
	}

	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]interface{}, len(types))
	for _, name := range names {
		r, err := resolve(name)
		if err != nil {
			return nil, err
		}
		out[name] = r
	}
	return out, nil
}

func toResourceSet(name string, node map[string]interface{}) *resources.ResourceSet {
	res := resources.NewResourceSet(name)
	if entries, ok := node[KeyAbbreviations].(map[string]resources.Entry); ok {
		res.Abbreviations = entries
	}
	if sets, ok := node[KeyElementTypes].(map[string]resources.ElementSet); ok {
		res.ElementTypes = sets
	}
	if snippets, ok := node[KeySnippets].(map[string]interface{}); ok {
		for k, v := range snippets {
			res.Snippets[k] = toString(v)
		}
	}
	return res
}
