// Package wikinormal converts wiki page and category names into normal form
// slugs, e.g. "Component:Image Block" becomes "component:image-block".
//
// The package-level functions use a shared Normalizer with default Options
// and never read NORMALIZE_* settings. Build your own with New (or
// New(FromEnv())) for other options.
package wikinormal

import (
	"sync"

	"wikinormal/internal/core/normalize"
)

// DefaultCategory is the implicit category that normalization strips
const DefaultCategory = normalize.DefaultCategory

type (
	// Normalizer converts identifiers to normal form; safe for concurrent use
	Normalizer = normalize.Normalizer
	// Options configures a Normalizer
	Options = normalize.Options
	// SlashMode selects how '/' is treated
	SlashMode = normalize.SlashMode
)

const (
	// SlashFilter replaces '/' like any other punctuation (default)
	SlashFilter = normalize.SlashFilter
	// SlashKeep keeps '/' as part of the slug
	SlashKeep = normalize.SlashKeep
)

// New builds a Normalizer; it fails only on an unknown SlashMode
func New(opt Options) (*Normalizer, error) { return normalize.New(opt) }

// FromEnv reads Options from NORMALIZE_* environment variables
func FromEnv() Options { return normalize.FromEnv() }

var std = sync.OnceValue(func() *Normalizer {
	n, err := normalize.New(normalize.Options{})
	if err != nil {
		// the zero Options are always valid
		panic(err)
	}
	return n
})

// Normalize returns the normal form of text
func Normalize(text string) string { return std().Normalize(text) }

// NormalizeInPlace replaces *text with its normal form
func NormalizeInPlace(text *string) { *text = std().Normalize(*text) }

// NormalizeDecode percent-decodes text, then normalizes it. Undecodable input
// is logged and normalized as is
func NormalizeDecode(text string) string { return std().NormalizeDecode(text) }

// IsNormal reports whether text is already in normal form
func IsNormal(text string) bool { return std().IsNormal(text) }

// Decode percent-decodes text without normalizing it
func Decode(text string) (string, error) { return normalize.Decode(text) }
