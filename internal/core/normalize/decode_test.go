package normalize

import (
	"bytes"
	"testing"

	perr "wikinormal/internal/platform/errors"
	"wikinormal/internal/platform/logger"
	kit "wikinormal/internal/platform/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"no escapes", "Big Cheese", "Big Cheese", false},
		{"spaces", "Big%20Cheese%20Horace", "Big Cheese Horace", false},
		{"plus stays literal", "a+b", "a+b", false},
		{"colon", "fragment%3A_template", "fragment:_template", false},
		{"multibyte", "caf%C3%A9", "caf\u00e9", false},
		{"cjk", "%E6%97%A5%E6%9C%AC", "日本", false},
		{"truncated escape", "100%", "100%", false},
		{"truncated escape pair", "a%4", "a%4", false},
		{"bad hex", "%zz", "%zz", false},
		{"stray percent then escape", "50%off%20sale", "50%off sale", false},
		{"bad hex then escape", "a%zz%41", "a%zzA", false},
		{"lowercase hex", "%c3%a9", "\u00e9", false},
		{"escaped percent", "100%25", "100%", false},
		{"invalid utf8", "%FF%FE", "%FF%FE", true},
		{"half a rune", "caf%C3", "caf%C3", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode(tc.in)
			assert.Equal(t, tc.want, got)
			if !tc.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, perr.IsCode(err, perr.ErrorCodeDecode), "code = %v", perr.CodeOf(err))
		})
	}
}

func TestNormalizeDecode(t *testing.T) {
	var buf bytes.Buffer
	n := newTestNormalizer(t, Options{
		Verify: true,
		Logger: logger.New(logger.Options{Level: "warn", Format: "json", Writer: &buf}),
	})

	tests := []struct {
		in, want string
		logged   bool
	}{
		{"Big%20Cheese%20Horace", "big-cheese-horace", false},
		{"SCP%2D173", "scp-173", false},
		{"fragment%3A%3A_template", "fragment:_template", false},
		{"_default%3A_template", "_template", false},
		{"caf%C3%A9", "caf\u00e9", false},
		{"a+b", "a-b", false},
		{"plain Page", "plain-page", false},
		{"100%", "100", false},
		{"50%off%20sale", "50-off-sale", false},
		{"a%zz%41", "a-zza", false},
		{"%FF%FE", "ff-fe", true},
		{"caf%C3", "caf-c3", true},
	}
	for _, tc := range tests {
		buf.Reset()
		assert.Equal(t, tc.want, n.NormalizeDecode(tc.in), "NormalizeDecode(%q)", tc.in)
		if tc.logged {
			kit.MustContain(t, buf.String(), "percent decode failed")
			kit.MustContain(t, buf.String(), "normalize_decode")
		} else {
			assert.Empty(t, buf.String(), "unexpected log for %q", tc.in)
		}
	}
}

func TestPercentDecode(t *testing.T) {
	assert.Equal(t, "", percentDecode(""))
	assert.Equal(t, "plain", percentDecode("plain"))
	assert.Equal(t, "%", percentDecode("%"))
	assert.Equal(t, "%%", percentDecode("%%"))
	assert.Equal(t, "%A", percentDecode("%%41"))
	assert.Equal(t, "a b+c", percentDecode("a%20b+c"))
	assert.Equal(t, "\xff", percentDecode("%ff"))
}

func TestNormalizeDecode_UnescapeSeam(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &unescape, func(string) string { return "\xff" })

	var buf bytes.Buffer
	n := newTestNormalizer(t, Options{
		Logger: logger.New(logger.Options{Level: "warn", Format: "json", Writer: &buf}),
	})

	assert.Equal(t, "big-20cheese", n.NormalizeDecode("Big%20Cheese"))
	kit.MustContain(t, buf.String(), "do not decode to utf-8")
	kit.MustContain(t, buf.String(), `"input":"Big%20Cheese"`)
}
