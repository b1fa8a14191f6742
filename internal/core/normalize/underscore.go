package normalize

import "strings"

// replaceUnderscores turns every underscore into a dash unless it is the first
// character or directly follows a colon. That keeps "_template" and
// "fragment:_template" while "snake_case" becomes "snake-case".
//
// Same matches as the look-behind pattern "(?<!:)_" with index 0 exempted
func replaceUnderscores(s string) string {
	if strings.IndexByte(s, '_') < 0 {
		return s
	}

	b := []byte(s)
	prevColon := false
	for i, c := range b {
		if c == '_' && i > 0 && !prevColon {
			b[i] = '-'
		}
		prevColon = c == ':'
	}
	return string(b)
}
