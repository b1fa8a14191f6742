package normalize

import (
	"wikinormal/internal/platform/config"
	"wikinormal/internal/platform/logger"
)

// SlashMode selects how '/' is treated
type SlashMode string

const (
	// SlashFilter treats '/' like any other disallowed character (default)
	SlashFilter SlashMode = "filter"
	// SlashKeep treats '/' as a word character so page paths survive verbatim
	SlashKeep SlashMode = "keep"
)

// Options configures a Normalizer
type Options struct {
	// Slashes picks the slash variant; empty means SlashFilter
	Slashes SlashMode
	// Verify checks every result with IsNormal and panics on a mismatch
	Verify bool
	// Logger receives decode and invariant diagnostics; nil uses the "normalize" component logger
	Logger *logger.Logger
}

// FromEnv reads NORMALIZE_SLASHES (filter|keep) and NORMALIZE_VERIFY
func FromEnv() Options {
	c := config.New().Prefix("NORMALIZE_")
	return Options{
		Slashes: SlashMode(c.MayEnum("SLASHES", string(SlashFilter), string(SlashFilter), string(SlashKeep))),
		Verify:  c.MayBool("VERIFY", false),
	}
}
