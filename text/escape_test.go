package text

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"lukechampine.com/frand"

	"realy.lol/nostrcore/chk"
	"realy.lol/nostrcore/sha256"
)

func TestNostrEscapeTable(t *testing.T) {
	for _, v := range []struct{ in, out string }{
		{"hello", `hello`},
		{"a\"b", `a\"b`},
		{`back\slash`, `back\\slash`},
		{"\b\t\n\f\r", `\b\t\n\f\r`},
		{"\x00\x01\x1f", `\u0000\u0001\u001f`},
		{"\x0b", `\u000b`},
		{"\x7f", "\x7f"},
		{"a/b", `a/b`},
		{"\u2028\u2029", "\u2028\u2029"},
		{"おみくじ 🎴", "おみくじ 🎴"},
		{"<&>", "<&>"},
	} {
		if got := string(NostrEscape(nil, []byte(v.in))); got != v.out {
			t.Errorf("escape %q: got %q want %q", v.in, got, v.out)
		}
	}
}

var seed = sha256.Sum256([]byte(`
The tao that can be told
is not the eternal Tao
The name that can be named
is not the eternal Name
`))

var src = frand.NewCustom(seed[:], 32, 12)

var alphabet = []rune{0, 1, 8, 9, 10, 11, 12, 13, 0x1f, ' ', '"', '\\', '/', 'a', 'z',
	0x7f, 0xe9, 0x2028, 0x2029, 0x3042, 0x1f3b4}

func randomString(l int) string {
	var sb strings.Builder
	for range l {
		sb.WriteRune(alphabet[src.Intn(len(alphabet))])
	}
	return sb.String()
}

func TestRandomEscapeIsValidLosslessJSON(t *testing.T) {
	// a kind of fuzz test, random content from the awkward part of the
	// character set must escape into a JSON string that decodes back to the
	// original.
	for range 10000 {
		s := randomString(src.Intn(64) + 1)
		esc := AppendQuote(nil, []byte(s), NostrEscape)
		if !utf8.Valid(esc) {
			t.Fatalf("escaped form of %q is not valid utf-8", s)
		}
		var back string
		if err := json.Unmarshal(esc, &back); chk.E(err) {
			t.Fatalf("escaped form %s is not valid JSON: %v", esc, err)
		}
		if back != s {
			t.Fatalf("round trip mismatch\n%q\n%q", s, back)
		}
		if strings.Contains(string(esc), `\/`) || strings.Contains(string(esc), `\u2028`) {
			t.Fatalf("escaped form %s escapes a character that must be verbatim", esc)
		}
	}
}

func TestAppendList(t *testing.T) {
	got := AppendBracket(nil, nil, func(dst, _ []byte) []byte {
		return AppendList(dst, [][]byte{[]byte("a"), []byte("b\"")}, ',',
			func(dst, src []byte) []byte { return AppendQuote(dst, src, NostrEscape) })
	})
	if string(got) != `["a","b\""]` {
		t.Fatalf("got %s", got)
	}
}
