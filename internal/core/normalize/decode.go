package normalize

import (
	"strings"
	"unicode/utf8"

	perr "wikinormal/internal/platform/errors"
)

// unescape turns %XX escapes into bytes (seam for tests)
var unescape = percentDecode

// Decode percent-decodes s. Malformed escapes ("%", "%zz") stay literal and '+'
// is not a space. It fails with an ErrorCodeDecode error, returning s unchanged,
// only when the decoded bytes are not UTF-8
func Decode(s string) (string, error) {
	if strings.IndexByte(s, '%') < 0 {
		return s, nil
	}

	out := unescape(s)
	if !utf8.ValidString(out) {
		return s, perr.Decodef("percent escapes in %q do not decode to utf-8", s)
	}
	return out, nil
}

// percentDecode replaces every well-formed %XX with its byte and copies
// everything else verbatim
func percentDecode(s string) string {
	i := strings.IndexByte(s, '%')
	if i < 0 {
		return s
	}

	b := make([]byte, 0, len(s))
	b = append(b, s[:i]...)
	for ; i < len(s); i++ {
		c := s[i]
		if c == '%' && i+2 < len(s) {
			hi, ok1 := unhex(s[i+1])
			lo, ok2 := unhex(s[i+2])
			if ok1 && ok2 {
				b = append(b, hi<<4|lo)
				i += 2
				continue
			}
		}
		b = append(b, c)
	}
	return string(b)
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
