// Package testutil provides helpers for testing zen components.
//
// Key components:
//   - TestEnvironment: isolates XDG directories and ZEN_* variables
//   - Settings / BareSettings: compile inline TOML into resources
//   - Assertions for coded errors and multi-line output
//
// Usage guidelines:
//   - All test data should be defined inline, not in external files
//   - Each test should be completely isolated with no shared state
package testutil
