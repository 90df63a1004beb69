package tags

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"

	"realy.lol/nostrcore/chk"
	"realy.lol/nostrcore/tag"
)

var values = []string{"", "t", "nostr", "a\"b", `c\d`, "line\nbreak", "おみくじ", "\x01"}

func TestMarshalMatchesStringSlice(t *testing.T) {
	var b []byte
	for range 10000 {
		n := frand.Intn(4)
		s := make([][]string, n)
		for i := range s {
			s[i] = make([]string, frand.Intn(4)+1)
			for j := range s[i] {
				s[i][j] = values[frand.Intn(len(values))]
			}
		}
		tgs, err := FromStringSlice(s)
		require.NoError(t, err)
		b = tgs.Marshal(b[:0])
		var back [][]string
		if err := json.Unmarshal(b, &back); chk.E(err) {
			t.Fatal(err)
		}
		if n == 0 {
			require.Equal(t, "[]", string(b))
			continue
		}
		require.Equal(t, s, back)
		require.Equal(t, s, tgs.ToStringSlice())
	}
}

func TestEmpty(t *testing.T) {
	require.Equal(t, "[]", New().String())
	var nilTags *T
	require.Equal(t, "[]", string(nilTags.Marshal(nil)))
	require.Equal(t, 0, nilTags.Len())
	require.Nil(t, nilTags.N(0))
	require.True(t, nilTags.Equal(New()))
}

func TestOrderMatters(t *testing.T) {
	a := New(tag.New("t", "a"), tag.New("t", "b"))
	b := New(tag.New("t", "b"), tag.New("t", "a"))
	require.False(t, a.Equal(b))
	require.True(t, a.Equal(a.Clone()))
	require.Equal(t, `[["t","a"],["t","b"]]`, a.String())
}

func TestCloneIsDeep(t *testing.T) {
	a := New(tag.New("t", "a"))
	c := a.Clone()
	c.AppendTags(tag.New("p", "x"))
	require.Equal(t, 1, a.Len())
	require.Equal(t, 2, c.Len())
}

func TestGetFirstAndAll(t *testing.T) {
	a := New(tag.New("e", "1"), tag.New("p", "2"), tag.New("e", "3", "wss://r"))
	require.Equal(t, "1", a.GetFirst(tag.New("e")).Value())
	require.Nil(t, a.GetFirst(tag.New("d")))
	require.Equal(t, 2, a.GetAll(tag.New("e")).Len())
	require.Equal(t, "3", a.GetAll(tag.New("e", "3")).N(0).Value())
	// names match whole
	b := New(tag.New("emoji", "x", "https://x"))
	require.Nil(t, b.GetFirst(tag.New("e")))
	require.Equal(t, 0, b.GetAll(tag.New("e")).Len())
}

func TestFromStringSliceRejectsEmptyTag(t *testing.T) {
	tgs, err := FromStringSlice([][]string{{"t", "a"}, {}})
	require.ErrorIs(t, err, tag.ErrValidation)
	require.Nil(t, tgs)
	tgs, err = FromStringSlice([][]string{{""}, {"t", ""}})
	require.NoError(t, err)
	require.Equal(t, `[[""],["t",""]]`, tgs.String())
	tgs, err = FromStringSlice(nil)
	require.NoError(t, err)
	require.Equal(t, "[]", tgs.String())
}
