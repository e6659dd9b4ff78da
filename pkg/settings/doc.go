// Package settings loads and compiles zen's resource configuration.
//
// Raw settings are nested key/value trees (TOML or YAML). The built-in tree
// is embedded; user files and ZEN_* environment variables are layered over
// it with Extend. Build turns the merged tree into a resources.Settings:
//
//	raw := settings.DefaultRaw()
//	settings.Extend(raw, userLayer)
//	s, err := settings.Build(raw)
//
// Compilation is permissive: an abbreviation value that is not a tag is
// kept as a reference and only checked when a tree is built (or by
// resources.Settings.Validate).
package settings
