package normalize

import "strings"

// IsNormal reports whether s is already in normal form, i.e. Normalize(s) == s.
// It checks the invariants directly without running the pipeline
func (n *Normalizer) IsNormal(s string) bool {
	if s == "" {
		return true
	}
	if strings.HasPrefix(s, defaultPrefix) {
		return false
	}

	var prev rune
	colons := 0
	for i, r := range s {
		switch r {
		case '-':
			if i == 0 || prev == '-' || prev == ':' || prev == '_' {
				return false
			}
		case ':':
			colons++
			if i == 0 || colons > 1 || prev == '-' {
				return false
			}
		case '_':
			if i > 0 && prev != ':' {
				return false
			}
		default:
			// utf8.RuneError is not a word character, so invalid bytes land here
			if !n.word.Contains(r) {
				return false
			}
		}
		prev = r
	}
	if prev == '-' || prev == ':' {
		return false
	}

	// letters must already be NFKC and case folded
	return foldUnicode(s) == s
}
