package normalize

import (
	"sync"
	"unicode"

	perr "wikinormal/internal/platform/errors"

	"golang.org/x/text/runes"
	"golang.org/x/text/unicode/rangetable"
)

// classTables holds the word-character sets. Built once, read-only afterwards
type classTables struct {
	strict runes.Set // letters and numbers
	slash  runes.Set // letters, numbers and '/'
}

var tables = sync.OnceValue(func() *classTables {
	word := rangetable.Merge(unicode.L, unicode.N)
	return &classTables{
		strict: runes.In(word),
		slash:  runes.In(rangetable.Merge(word, rangetable.New('/'))),
	}
})

func wordSet(mode SlashMode) (runes.Set, error) {
	switch mode {
	case "", SlashFilter:
		return tables().strict, nil
	case SlashKeep:
		return tables().slash, nil
	default:
		return nil, perr.InvalidArgf("unknown slash mode %q", mode)
	}
}

// isSeparator reports the three punctuation characters normal form allows
func isSeparator(r rune) bool { return r == '-' || r == ':' || r == '_' }
