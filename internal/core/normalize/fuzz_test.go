package normalize

import (
	"strings"
	"testing"
	"unicode/utf8"
)

var fuzzSeeds = []string{
	"",
	"Big Cheese Horace",
	"bottom--Text",
	"--TEST--",
	":test:",
	"fragment::scp-4447-2",
	"protected::fragment::_template",
	"_default:_template",
	"_default:_default:x",
	"__template",
	"/fragment:_template",
	"a:_-_:b",
	"_:_:_",
	"-_-:-_-",
	"İstanbul",
	"ΣΊΣΥΦΟΣ",
	"ÄÀ-áö ðñæ_þß*řƒŦ",
	"ﬁ ﬂ ﬃ ½ ㎏ ℡",
	"ＳＣＰ－１７３",
	"한국어 페이지",
	"e\u0301\u0302\u0303",
	"a\xff\xfe:b",
	"\u200b\u200d\ufeff",
	"100% pure",
	"\uab740",
	"\u13f0",
	"\u13f8",
	"K\uab70\u216b\u03d2/",
	"50%off%20sale",
}

func FuzzNormalize(f *testing.F) {
	for _, s := range fuzzSeeds {
		f.Add(s)
	}
	n, err := New(Options{})
	if err != nil {
		f.Fatal(err)
	}

	f.Fuzz(func(t *testing.T, in string) {
		out := n.Normalize(in)

		if again := n.Normalize(out); again != out {
			t.Fatalf("not idempotent: %q -> %q -> %q", in, out, again)
		}
		if !n.IsNormal(out) {
			t.Fatalf("IsNormal(%q) = false for Normalize(%q)", out, in)
		}
		if !utf8.ValidString(out) {
			t.Fatalf("Normalize(%q) produced invalid utf-8 %q", in, out)
		}
		for _, bad := range []string{"--", "::", ":-", "-:", "_-", "-_"} {
			if strings.Contains(out, bad) {
				t.Fatalf("Normalize(%q) = %q contains %q", in, out, bad)
			}
		}
		if strings.HasPrefix(out, "-") || strings.HasSuffix(out, "-") ||
			strings.HasPrefix(out, ":") || strings.HasSuffix(out, ":") {
			t.Fatalf("Normalize(%q) = %q has a dash or colon at an edge", in, out)
		}
		if strings.Count(out, ":") > 1 {
			t.Fatalf("Normalize(%q) = %q has more than one category separator", in, out)
		}
		for i, r := range out {
			if isSeparator(r) {
				continue
			}
			if !tables().strict.Contains(r) {
				t.Fatalf("Normalize(%q) = %q has disallowed rune %q at %d", in, out, r, i)
			}
		}
	})
}

func FuzzIsNormal(f *testing.F) {
	for _, s := range fuzzSeeds {
		f.Add(s)
	}
	for _, s := range []string{"big-cheese-horace", "_template", "fragment:_template", "a:b:c", "a--b"} {
		f.Add(s)
	}
	n, err := New(Options{})
	if err != nil {
		f.Fatal(err)
	}

	f.Fuzz(func(t *testing.T, in string) {
		fixed := n.Normalize(in) == in
		if got := n.IsNormal(in); got != fixed {
			t.Fatalf("IsNormal(%q) = %v, but Normalize fixed point = %v", in, got, fixed)
		}
	})
}
