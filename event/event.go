// Package event is the nostr event: the unsigned content an author assembles,
// its canonical serialization and id, and the signed form with id and
// signature that travels between clients and relays.
package event

import (
	"lukechampine.com/frand"

	"realy.lol/nostrcore/chk"
	"realy.lol/nostrcore/hex"
	"realy.lol/nostrcore/keys"
	"realy.lol/nostrcore/kind"
	"realy.lol/nostrcore/sha256"
	"realy.lol/nostrcore/signer"
	"realy.lol/nostrcore/tags"
	"realy.lol/nostrcore/timestamp"
)

// Unsigned is an event before it has an id and signature. Everything in it is
// covered by the id.
type Unsigned struct {
	// Pubkey is the author.
	Pubkey keys.PublicKey
	// CreatedAt is the UNIX timestamp of the event according to the event
	// creator (never trust a timestamp!)
	CreatedAt *timestamp.T
	// Kind is the nostr protocol code for the type of event. See kind.T
	Kind *kind.T
	// Tags are a list of tags, which are a list of strings usually structured
	// as a 3 layer scheme indicating specific features of an event.
	Tags *tags.T
	// Content is an arbitrary string that can contain anything, but usually
	// conforming to a specification relating to the Kind and the Tags.
	Content string
}

// T is the primary datatype of nostr, a signed event.
type T struct {
	Unsigned
	// ID is the SHA256 hash of the canonical encoding of the event. 32 bytes
	// when well formed.
	ID []byte
	// Sig is the signature on the ID hash that validates as coming from the
	// Pubkey. 64 bytes when well formed.
	Sig []byte
}

func New() (ev *T) { return &T{} }

func (ev *T) Serialize() (b []byte) { return ev.Marshal(nil) }

// stringy/numbery functions for other libraries

func (ev *T) IDString() (s string)        { return hex.Enc(ev.ID) }
func (ev *Unsigned) CreatedAtInt64() int64 { return ev.CreatedAt.I64() }
func (ev *Unsigned) KindUint16() uint16    { return ev.Kind.ToU16() }
func (ev *Unsigned) PubKeyString() string  { return ev.Pubkey.Hex() }
func (ev *T) SigString() (s string)        { return hex.Enc(ev.Sig) }
func (ev *Unsigned) TagStrings() [][]string {
	if ev.Tags == nil {
		return [][]string{}
	}
	return ev.Tags.ToStringSlice()
}

// Hash is the SHA256 of in as a slice.
func Hash(in []byte) (out []byte) {
	h := sha256.Sum256(in)
	return h[:]
}

// GenerateRandomTextNoteEvent makes a signed text note of random printable
// content up to maxSize bytes.
func GenerateRandomTextNoteEvent(sign signer.I, maxSize int) (ev *T, err error) {
	var pk keys.PublicKey
	if pk, err = keys.FromBytes(sign.Pub()); chk.E(err) {
		return
	}
	content := make([]byte, frand.Intn(maxSize+1))
	for i := range content {
		content[i] = byte(' ' + frand.Intn('~'-' '+1))
	}
	u := &Unsigned{
		Pubkey:    pk,
		Kind:      kind.TextNote,
		CreatedAt: timestamp.Now(),
		Content:   string(content),
		Tags:      tags.New(),
	}
	return u.Sign(sign)
}
