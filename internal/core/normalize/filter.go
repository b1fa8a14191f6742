package normalize

import (
	"strings"

	"golang.org/x/text/runes"
)

// filterClass replaces each maximal run of runes that are neither in word nor
// a separator with a single dash
func filterClass(s string, word runes.Set) string {
	allowed := func(r rune) bool { return isSeparator(r) || word.Contains(r) }

	i := strings.IndexFunc(s, func(r rune) bool { return !allowed(r) })
	if i < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:i])

	inRun := false
	for _, r := range s[i:] {
		if allowed(r) {
			b.WriteRune(r)
			inRun = false
			continue
		}
		if !inRun {
			b.WriteByte('-')
			inRun = true
		}
	}
	return b.String()
}
