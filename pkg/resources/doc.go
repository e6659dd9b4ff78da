// Package resources holds the compiled resource model the expander works
// against: per document type, the known abbreviations, snippet templates
// and element classification sets.
//
// A Settings value is built once by package settings and treated as
// read-only afterwards, so it can be shared by concurrent parse and render
// calls without locking.
package resources
