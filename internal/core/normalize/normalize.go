// Package normalize canonicalizes wiki page and category identifiers into
// normal form slugs and recognizes strings already in normal form.
//
// Pipeline order
// 1 Trim surrounding whitespace
// 2 Unicode NFKC normalization then full case folding
// 3 Replace each run of characters outside letter/number/-/:/_ with one dash
// 4 Merge extra categories, only the last colon stays a separator
// 5 Demote underscores to dashes unless leading or right after the colon
// 6 Collapse dash runs, drop dashes touching : or _, trim dashes and colons
// 7 Strip the implicit default category prefix
//
// NormalizeDecode runs a percent-decode step before 1. IsNormal accepts exactly
// the fixed points of the pipeline.
package normalize

import (
	"strings"

	perr "wikinormal/internal/platform/errors"
	"wikinormal/internal/platform/logger"

	"golang.org/x/text/runes"
)

// stage is one rewrite of the pipeline
type stage struct {
	name string
	run  func(n *Normalizer, s string) string
}

// pipeline is the ordered list of stages (seam for tests)
var pipeline = []stage{
	{"trim", func(_ *Normalizer, s string) string { return strings.TrimSpace(s) }},
	{"unicode", func(_ *Normalizer, s string) string { return foldUnicode(s) }},
	{"filter", func(n *Normalizer, s string) string { return filterClass(s, n.word) }},
	{"categories", func(_ *Normalizer, s string) string { return mergeCategories(s) }},
	{"underscores", func(_ *Normalizer, s string) string { return replaceUnderscores(s) }},
	{"collapse", func(_ *Normalizer, s string) string { return collapse(s) }},
	{"default_category", func(_ *Normalizer, s string) string { return stripDefaultCategory(s) }},
}

// Normalizer is safe for concurrent use; it holds only immutable state
type Normalizer struct {
	word    runes.Set
	slashes SlashMode
	verify  bool
	log     *logger.Logger
}

// New constructs a Normalizer from opt
func New(opt Options) (*Normalizer, error) {
	word, err := wordSet(opt.Slashes)
	if err != nil {
		return nil, perr.WithField(err, "slashes")
	}
	log := opt.Logger
	if log == nil {
		log = logger.Named("normalize")
	}
	return &Normalizer{
		word:    word,
		slashes: opt.Slashes,
		verify:  opt.Verify,
		log:     log,
	}, nil
}

// Normalize returns the normal form of s. It never fails
//
// Examples:
//   - "Big Cheese Horace" -> "big-cheese-horace"
//   - "Tufto's Proposal" -> "tufto-s-proposal"
//   - "protected::fragment::_template" -> "protected-fragment:_template"
//   - "_default:_template" -> "_template"
func (n *Normalizer) Normalize(s string) string {
	out := s
	for _, st := range pipeline {
		out = st.run(n, out)
		if e := n.log.Trace(); e.Enabled() {
			e.Str("stage", st.name).Str("text", out).Msg("normalize stage")
		}
	}

	if n.verify && !n.IsNormal(out) {
		err := perr.Invariantf("normalize(%q) produced %q which is not in normal form", s, out)
		n.log.Error().Err(err).Str("input", s).Str("output", out).Msg("normal form invariant violated")
		panic(err)
	}
	return out
}

// NormalizeDecode percent-decodes s and normalizes the result. When s cannot be
// decoded the failure is logged and the raw s is normalized instead
func (n *Normalizer) NormalizeDecode(s string) string {
	decoded, err := Decode(s)
	if err != nil {
		n.log.Warn().Err(perr.WithOp(err, "normalize_decode")).Str("input", s).
			Msg("percent decode failed; normalizing raw input")
		decoded = s
	}
	return n.Normalize(decoded)
}

// Slashes reports the slash handling this Normalizer was built with
func (n *Normalizer) Slashes() SlashMode {
	if n.slashes == "" {
		return SlashFilter
	}
	return n.slashes
}
