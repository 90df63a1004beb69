package event

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"realy.lol/nostrcore/chk"
	"realy.lol/nostrcore/event/examples"
	"realy.lol/nostrcore/hex"
	"realy.lol/nostrcore/keys"
	"realy.lol/nostrcore/kind"
	"realy.lol/nostrcore/p256k"
	"realy.lol/nostrcore/tag"
	"realy.lol/nostrcore/tags"
	"realy.lol/nostrcore/timestamp"
)

func TestTMarshal_Unmarshal(t *testing.T) {
	scanner := bufio.NewScanner(bytes.NewBuffer(examples.Vectors))
	var out []byte
	var err error
	for scanner.Scan() {
		b := scanner.Bytes()
		c := make([]byte, 0, len(b))
		c = append(c, b...)
		ea := New()
		if err = ea.Unmarshal(b); chk.E(err) {
			t.Fatal(err)
		}
		out = ea.Marshal(out)
		if !bytes.Equal(out, c) {
			t.Fatalf("mismatched output\n%s\n\n%s\n", c, out)
		}
		out = out[:0]
		// whitespace between tokens decodes to the same event
		var indented bytes.Buffer
		if err = json.Indent(&indented, c, "", "\t"); chk.E(err) {
			t.Fatal(err)
		}
		eb := New()
		if err = eb.Unmarshal(indented.Bytes()); chk.E(err) {
			t.Fatal(err)
		}
		if !bytes.Equal(eb.Serialize(), c) {
			t.Fatalf("indented round trip mismatch\n%s\n%s", c, eb.Serialize())
		}
	}
}

func TestUnsignedMarshal(t *testing.T) {
	scanner := bufio.NewScanner(bytes.NewBuffer(examples.Vectors))
	for scanner.Scan() {
		ev := New()
		require.NoError(t, ev.Unmarshal(scanner.Bytes()))
		b := ev.Unsigned.Marshal(nil)
		var m map[string]any
		require.NoError(t, json.Unmarshal(b, &m))
		require.NotContains(t, m, "id")
		require.NotContains(t, m, "sig")
		u := &Unsigned{}
		require.NoError(t, u.Unmarshal(b))
		require.Equal(t, ev.ComputeID(), u.ComputeID())
		// an unsigned decode of the signed form drops id and sig
		u2 := &Unsigned{}
		require.NoError(t, u2.Unmarshal(scanner.Bytes()))
		require.Equal(t, b, u2.Marshal(nil))
	}
}

const (
	goodID  = `"id":"a9d53fee641fe563de947fa330a3b4902e52e249894660aaa521cd039e896128"`
	goodPub = `"pubkey":"f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9"`
)

func TestUnmarshalRejects(t *testing.T) {
	const good = `{` + goodID + `,` + goodPub +
		`,"created_at":1700000000,"kind":1,"tags":[],"content":"hello","sig":""}`
	ev := New()
	require.NoError(t, ev.Unmarshal([]byte(good)))
	require.True(t, ev.VerifyID())
	for name, in := range map[string]string{
		"not json":          `{"id":`,
		"not an object":     `[]`,
		"null":              `null`,
		"bad pubkey":        `{"id":"","pubkey":"f9308a","created_at":1,"kind":1,"tags":[],"content":"","sig":""}`,
		"no pubkey":         `{"id":"","created_at":1,"kind":1,"tags":[],"content":"","sig":""}`,
		"no id":             `{` + goodPub + `,"created_at":1,"kind":1,"tags":[],"content":"","sig":""}`,
		"no sig":            `{` + goodID + `,` + goodPub + `,"created_at":1,"kind":1,"tags":[],"content":""}`,
		"upper id":          `{"id":"AB",` + goodPub + `,"created_at":1,"kind":1,"tags":[],"content":"","sig":""}`,
		"odd sig":           `{` + goodID + `,` + goodPub + `,"created_at":1,"kind":1,"tags":[],"content":"","sig":"abc"}`,
		"kind too large":    `{` + goodID + `,` + goodPub + `,"created_at":1,"kind":65536,"tags":[],"content":"","sig":""}`,
		"kind string":       `{` + goodID + `,` + goodPub + `,"created_at":1,"kind":"1","tags":[],"content":"","sig":""}`,
		"negative time":     `{` + goodID + `,` + goodPub + `,"created_at":-1,"kind":1,"tags":[],"content":"","sig":""}`,
		"fractional time":   `{` + goodID + `,` + goodPub + `,"created_at":1.5,"kind":1,"tags":[],"content":"","sig":""}`,
		"exponent time":     `{` + goodID + `,` + goodPub + `,"created_at":1e9,"kind":1,"tags":[],"content":"","sig":""}`,
		"tags not array":    `{` + goodID + `,` + goodPub + `,"created_at":1,"kind":1,"tags":{},"content":"","sig":""}`,
		"tags null":         `{` + goodID + `,` + goodPub + `,"created_at":1,"kind":1,"tags":null,"content":"","sig":""}`,
		"no tags":           `{` + goodID + `,` + goodPub + `,"created_at":1,"kind":1,"content":"","sig":""}`,
		"empty tag":         `{` + goodID + `,` + goodPub + `,"created_at":1,"kind":1,"tags":[[]],"content":"","sig":""}`,
		"null tag":          `{` + goodID + `,` + goodPub + `,"created_at":1,"kind":1,"tags":[null],"content":"","sig":""}`,
		"null tag element":  `{` + goodID + `,` + goodPub + `,"created_at":1,"kind":1,"tags":[["e",null]],"content":"","sig":""}`,
		"number in tag":     `{` + goodID + `,` + goodPub + `,"created_at":1,"kind":1,"tags":[["e",1]],"content":"","sig":""}`,
		"content null":      `{` + goodID + `,` + goodPub + `,"created_at":1,"kind":1,"tags":[],"content":null,"sig":""}`,
		"content number":    `{` + goodID + `,` + goodPub + `,"created_at":1,"kind":1,"tags":[],"content":1,"sig":""}`,
		"upper case keys":   `{"ID":"","PUBKEY":"f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9","Created_At":1,"kind":1,"tags":[],"content":"","sig":""}`,
		"unknown key":       `{` + goodID + `,` + goodPub + `,"created_at":1,"kind":1,"tags":[],"content":"","sig":"","extra":1}`,
		"mixed case pubkey": `{` + goodID + `,"Pubkey":"f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9","created_at":1,"kind":1,"tags":[],"content":"","sig":""}`,
	} {
		require.Error(t, New().Unmarshal([]byte(in)), name)
	}
}

func TestUnsignedUnmarshalRequiresFields(t *testing.T) {
	u := &Unsigned{}
	require.NoError(t, u.Unmarshal([]byte(`{`+goodPub+
		`,"created_at":1700000000,"kind":1,"tags":[],"content":"hello"}`)))
	id := u.ComputeID()
	require.Equal(t, "a9d53fee641fe563de947fa330a3b4902e52e249894660aaa521cd039e896128",
		hex.Enc(id[:]))
	for name, in := range map[string]string{
		"tags null":  `{` + goodPub + `,"created_at":1,"kind":1,"tags":null,"content":""}`,
		"no content": `{` + goodPub + `,"created_at":1,"kind":1,"tags":[]}`,
		"empty tag":  `{` + goodPub + `,"created_at":1,"kind":1,"tags":[["t"],[]],"content":""}`,
		"upper kind": `{` + goodPub + `,"created_at":1,"KIND":1,"tags":[],"content":""}`,
	} {
		require.Error(t, (&Unsigned{}).Unmarshal([]byte(in)), name)
	}
}

// a correctly signed event whose tags break the one element minimum is still
// refused by the decoder
func TestSignedEmptyTagRejected(t *testing.T) {
	s := p256k.New()
	require.NoError(t, s.Generate())
	pk, err := keys.FromBytes(s.Pub())
	require.NoError(t, err)
	u := &Unsigned{
		Pubkey:    pk,
		CreatedAt: timestamp.FromUnix(1700000000),
		Kind:      kind.TextNote,
		Tags:      tags.New(tag.New[string]()),
	}
	ev, err := u.Sign(s)
	require.NoError(t, err)
	b := ev.Serialize()
	require.Contains(t, string(b), `"tags":[[]]`)
	require.ErrorIs(t, New().Unmarshal(b), tag.ErrValidation)
}

func TestEncodingJSONInterop(t *testing.T) {
	var list bytes.Buffer
	list.WriteByte('[')
	scanner := bufio.NewScanner(bytes.NewBuffer(examples.Vectors))
	var n int
	for scanner.Scan() {
		if n > 0 {
			list.WriteByte(',')
		}
		list.Write(scanner.Bytes())
		n++
	}
	list.WriteByte(']')
	var evs []*T
	require.NoError(t, json.Unmarshal(list.Bytes(), &evs))
	require.Len(t, evs, n)
	for _, ev := range evs {
		require.True(t, ev.VerifyID())
	}
	b, err := json.Marshal(evs)
	require.NoError(t, err)
	var again []*T
	require.NoError(t, json.Unmarshal(b, &again))
	for i := range evs {
		require.Equal(t, evs[i].Serialize(), again[i].Serialize())
	}
}

