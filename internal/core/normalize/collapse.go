package normalize

import "strings"

// collapse cleans separator artifacts in one pass. The result equals applying
// each of these rewrites until it no longer matches, in order:
//
//	^-+ | -+$   -> ""
//	-{2,}       -> "-"
//	:{2,}       -> ":"
//	:- | -:     -> ":"
//	_- | -_     -> "_"
//	^: | :$     -> ""
//
// Input must already be filtered and category-merged.
func collapse(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	var prev byte // last byte written
	dash := false // a dash run is pending
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '-' {
			dash = true
			continue
		}
		if c == ':' && prev == ':' && !dash {
			continue
		}
		if dash {
			// a run survives as one dash only between two non-separators
			if b.Len() > 0 && !touchesDash(prev) && !touchesDash(c) {
				b.WriteByte('-')
			}
			dash = false
		}
		b.WriteByte(c)
		prev = c
	}

	return strings.Trim(b.String(), ":")
}

// touchesDash reports the characters that absorb an adjacent dash
func touchesDash(c byte) bool { return c == ':' || c == '_' }
