package event

import (
	"encoding/json"

	"realy.lol/nostrcore/chk"
	"realy.lol/nostrcore/errorf"
	"realy.lol/nostrcore/hex"
	"realy.lol/nostrcore/keys"
	"realy.lol/nostrcore/kind"
	"realy.lol/nostrcore/tags"
	"realy.lol/nostrcore/text"
	"realy.lol/nostrcore/timestamp"
)

var (
	jId        = []byte("id")
	jPubkey    = []byte("pubkey")
	jCreatedAt = []byte("created_at")
	jKind      = []byte("kind")
	jTags      = []byte("tags")
	jContent   = []byte("content")
	jSig       = []byte("sig")
)

// Marshal appends an event.T to a provided destination slice.
func (ev *T) Marshal(dst []byte) (b []byte) {
	b = append(dst, '{')
	b = text.JSONKey(b, jId)
	b = text.AppendQuote(b, ev.ID, hex.EncAppend)
	b = append(b, ',')
	b = ev.Unsigned.marshalFields(b)
	b = append(b, ',')
	b = text.JSONKey(b, jSig)
	b = text.AppendQuote(b, ev.Sig, hex.EncAppend)
	b = append(b, '}')
	return
}

// Marshal appends the unsigned event as a JSON object, which is the same as
// the signed form without id and sig.
func (ev *Unsigned) Marshal(dst []byte) (b []byte) {
	b = append(dst, '{')
	b = ev.marshalFields(b)
	b = append(b, '}')
	return
}

func (ev *Unsigned) marshalFields(dst []byte) []byte {
	dst = text.JSONKey(dst, jPubkey)
	dst = text.AppendQuote(dst, ev.Pubkey[:], hex.EncAppend)
	dst = append(dst, ',')
	dst = text.JSONKey(dst, jCreatedAt)
	dst = ev.CreatedAt.Marshal(dst)
	dst = append(dst, ',')
	dst = text.JSONKey(dst, jKind)
	dst = ev.Kind.Marshal(dst)
	dst = append(dst, ',')
	dst = text.JSONKey(dst, jTags)
	dst = ev.Tags.Marshal(dst)
	dst = append(dst, ',')
	dst = text.JSONKey(dst, jContent)
	dst = append(dst, '"')
	dst = text.NostrEscapeString(dst, ev.Content)
	dst = append(dst, '"')
	return dst
}

// fields are the raw values of an event object by key.
type fields map[string]json.RawMessage

func decodeFields(b []byte) (f fields, err error) {
	if err = json.Unmarshal(b, &f); chk.D(err) {
		return
	}
	if f == nil {
		err = errorf.D("event is not a JSON object")
	}
	return
}

// check rejects keys that are not exactly one of the event fields, and
// requires the given ones to be present and not null.
func (f fields) check(required ...[]byte) (err error) {
	for k := range f {
		switch k {
		case string(jId), string(jPubkey), string(jCreatedAt), string(jKind),
			string(jTags), string(jContent), string(jSig):
		default:
			err = errorf.D("invalid key %q in event", k)
			return
		}
	}
	for _, k := range required {
		if v, ok := f[string(k)]; !ok || string(v) == "null" {
			err = errorf.D("event has no %s", k)
			return
		}
	}
	return
}

func (f fields) str(key []byte) (s string, err error) {
	if err = json.Unmarshal(f[string(key)], &s); chk.D(err) {
		err = errorf.D("%s is not a string: %w", key, err)
	}
	return
}

// number decodes a JSON integer with the given Unmarshal method, which must
// consume the whole value.
func (f fields) number(key []byte,
	unmarshal func(b []byte) (r []byte, err error)) (err error) {

	var r []byte
	if r, err = unmarshal(f[string(key)]); chk.D(err) {
		err = errorf.D("%s: %w", key, err)
		return
	}
	if len(r) > 0 {
		err = errorf.D("%s is not an unsigned integer: %s", key, f[string(key)])
	}
	return
}

func (f fields) lowerHex(key []byte) (b []byte, err error) {
	var s string
	if s, err = f.str(key); err != nil {
		return
	}
	if !hex.IsLower(s) {
		err = errorf.D("%s is not lowercase hex", key)
		return
	}
	if b, err = hex.DecAppend(nil, []byte(s)); chk.D(err) {
		return
	}
	return
}

// tags decodes the tags as lists of strings, a null tag element is an error
// rather than an empty string.
func (f fields) tags() (t [][]string, err error) {
	var raw [][]*string
	if err = json.Unmarshal(f[string(jTags)], &raw); chk.D(err) {
		err = errorf.D("tags are not a list of string lists: %w", err)
		return
	}
	t = make([][]string, len(raw))
	for i, tt := range raw {
		t[i] = make([]string, len(tt))
		for j, v := range tt {
			if v == nil {
				err = errorf.D("tag %d element %d is null", i, j)
				return
			}
			t[i][j] = *v
		}
	}
	return
}

var unsignedFields = [][]byte{jPubkey, jCreatedAt, jKind, jTags, jContent}

func (f fields) toUnsigned() (u *Unsigned, err error) {
	u = &Unsigned{CreatedAt: timestamp.New(), Kind: kind.New(0)}
	var pk string
	if pk, err = f.str(jPubkey); err != nil {
		return nil, err
	}
	if u.Pubkey, err = keys.ParsePublicKey(pk); chk.D(err) {
		return nil, err
	}
	if err = f.number(jCreatedAt, u.CreatedAt.Unmarshal); err != nil {
		return nil, err
	}
	if err = f.number(jKind, u.Kind.Unmarshal); err != nil {
		return nil, err
	}
	var t [][]string
	if t, err = f.tags(); err != nil {
		return nil, err
	}
	if u.Tags, err = tags.FromStringSlice(t); chk.D(err) {
		return nil, err
	}
	if u.Content, err = f.str(jContent); err != nil {
		return nil, err
	}
	return
}

// Unmarshal an event from JSON into an event.T. Any whitespace and key order
// is accepted, but every field must be present under its exact name and no
// others may appear. The id and sig only need to be hex, their length is
// checked by verification.
func (ev *T) Unmarshal(b []byte) (err error) {
	var f fields
	if f, err = decodeFields(b); err != nil {
		return
	}
	if err = f.check(append(unsignedFields, jId, jSig)...); err != nil {
		return
	}
	e := &T{}
	var u *Unsigned
	if u, err = f.toUnsigned(); err != nil {
		return
	}
	e.Unsigned = *u
	if e.ID, err = f.lowerHex(jId); err != nil {
		return
	}
	if e.Sig, err = f.lowerHex(jSig); err != nil {
		return
	}
	*ev = *e
	return
}

// Unmarshal an unsigned event from JSON. An id or sig present in the input is
// ignored.
func (ev *Unsigned) Unmarshal(b []byte) (err error) {
	var f fields
	if f, err = decodeFields(b); err != nil {
		return
	}
	if err = f.check(unsignedFields...); err != nil {
		return
	}
	var u *Unsigned
	if u, err = f.toUnsigned(); err != nil {
		return
	}
	*ev = *u
	return
}

// MarshalJSON implements json.Marshaler with the canonical string escaping.
func (ev *T) MarshalJSON() ([]byte, error) { return ev.Marshal(nil), nil }

// UnmarshalJSON implements json.Unmarshaler.
func (ev *T) UnmarshalJSON(b []byte) error { return ev.Unmarshal(b) }
