package testutil

import (
	"testing"

	"github.com/arthur-debert/zen/pkg/resources"
	"github.com/arthur-debert/zen/pkg/settings"
	toml "github.com/pelletier/go-toml/v2"
)

// Settings compiles the built-in resources with an inline TOML layer
// extended over them. An empty layer yields the plain defaults.
func Settings(t *testing.T, layer string) *resources.Settings {
	t.Helper()

	raw := settings.DefaultRaw()
	settings.Extend(raw, decodeTOML(t, layer))
	return build(t, raw)
}

// BareSettings compiles an inline TOML document on its own, without the
// built-in resources
func BareSettings(t *testing.T, doc string) *resources.Settings {
	t.Helper()
	return build(t, decodeTOML(t, doc))
}

// ResourceSet returns the named document type, failing the test if absent
func ResourceSet(t *testing.T, s *resources.Settings, docType string) *resources.ResourceSet {
	t.Helper()

	res, err := s.ResourceSet(docType)
	if err != nil {
		t.Fatalf("Failed to get resource set %q: %v", docType, err)
	}
	return res
}

func decodeTOML(t *testing.T, doc string) map[string]interface{} {
	t.Helper()

	raw := map[string]interface{}{}
	if doc == "" {
		return raw
	}
	if err := toml.Unmarshal([]byte(doc), &raw); err != nil {
		t.Fatalf("Failed to parse inline settings: %v", err)
	}
	return raw
}

func build(t *testing.T, raw map[string]interface{}) *resources.Settings {
	t.Helper()

	s, err := settings.Build(raw)
	if err != nil {
		t.Fatalf("Failed to build settings: %v", err)
	}
	return s
}
