package normalize

import (
	"strings"
	"sync"

	perr "wikinormal/internal/platform/errors"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// transformers are stateful, so each call takes its own chain from the pool
var chainPool = sync.Pool{
	New: func() any {
		// the second NFKC recomposes anything folding decomposed
		return transform.Chain(norm.NFKC, cases.Fold(), runes.Map(foldCherokee), norm.NFKC)
	},
}

// foldCherokee maps Cherokee letters to their CaseFolding.txt targets (the
// uppercase block). cases.Fold swaps Cherokee case on every pass instead
func foldCherokee(r rune) rune {
	switch {
	case r >= 0xAB70 && r <= 0xABBF:
		return r - 0xAB70 + 0x13A0
	case r >= 0x13F8 && r <= 0x13FD:
		return r - 8
	}
	return r
}

// foldUnicode applies NFKC then full case folding. Invalid UTF-8 bytes become U+FFFD
func foldUnicode(s string) string {
	if s == "" {
		return s
	}
	s = strings.ToValidUTF8(s, "\uFFFD")

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	if err != nil {
		// valid UTF-8 in, so the chain has no reason to fail
		panic(perr.Wrap(err, perr.ErrorCodeInvariant, "unicode transform failed"))
	}
	return out
}
