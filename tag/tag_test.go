package tag

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"

	"realy.lol/nostrcore/chk"
)

func TestParseEmptyFails(t *testing.T) {
	tg, err := Parse()
	require.Nil(t, tg)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrValidation))
	tg, err = Parse([]string{}...)
	require.Nil(t, tg)
	require.ErrorIs(t, err, ErrValidation)
}

func TestParseCopiesInput(t *testing.T) {
	in := []string{"p", "f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9"}
	tg, err := Parse(in...)
	require.NoError(t, err)
	in[0] = "e"
	require.Equal(t, "p", tg.Key())
	require.Equal(t, in[1], tg.Value())
	require.Equal(t, 2, tg.Len())
	require.Equal(t, "", tg.S(Relay))
}

func TestMarshalIsValidJSON(t *testing.T) {
	var b []byte
	for range 1000 {
		n := frand.Intn(8)
		fields := make([]string, n)
		for i := range fields {
			fields[i] = string(frand.Bytes(frand.Intn(16)))
		}
		tg := New(fields...)
		b = tg.Marshal(b[:0])
		if !json.Valid(b) {
			// random bytes that are not valid utf-8 are passed through verbatim
			// and may not be valid json, only check strings that are.
			continue
		}
		var back []string
		if err := json.Unmarshal(b, &back); chk.E(err) {
			t.Fatal(err)
		}
		if len(back) != n {
			t.Fatalf("got %d elements want %d", len(back), n)
		}
	}
}

func TestMarshal(t *testing.T) {
	require.Equal(t, `[]`, string(New[string]().Marshal(nil)))
	require.Equal(t, `["t","a\"b","c\\d","\n"]`,
		New("t", "a\"b", `c\d`, "\n").String())
	var nilTag *T
	require.Equal(t, `[]`, string(nilTag.Marshal(nil)))
}

func TestCompareAndEqual(t *testing.T) {
	a := New("e", "abc")
	require.True(t, a.Equal(New("e", "abc")))
	require.False(t, a.Equal(New("e", "abc", "wss://relay")))
	require.Equal(t, -1, a.Compare(New("e", "abc", "wss://relay")))
	require.Equal(t, 1, a.Compare(New("e", "abb")))
	require.Equal(t, -1, New("e").Compare(New("p")))
	var nilTag *T
	require.True(t, nilTag.Equal(New[string]()))
}

func TestStartsWith(t *testing.T) {
	tg := New("d", "app-settings", "x")
	require.True(t, tg.StartsWith(New[string]()))
	require.True(t, tg.StartsWith(New("d")))
	require.True(t, tg.StartsWith(New("d", "app-settings")))
	require.False(t, tg.StartsWith(New("d", "app")))
	require.False(t, tg.StartsWith(New("e")))
	require.False(t, tg.StartsWith(New("d", "app-settings", "x", "y")))
	require.False(t, New("emoji", "x").StartsWith(New("e")))
}

func TestClone(t *testing.T) {
	tg := New("t", "nostr")
	c := tg.Clone()
	require.True(t, tg.Equal(c))
	c.field[1] = "other"
	require.Equal(t, "nostr", tg.Value())
	require.Equal(t, []string{"t", "nostr"}, tg.ToStringSlice())
}
