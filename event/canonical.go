package event

import (
	"realy.lol/nostrcore/hex"
	"realy.lol/nostrcore/sha256"
	"realy.lol/nostrcore/text"
)

// ToCanonical appends the canonical encoding used to derive the event id:
//
//	[0,"<pubkey hex>",<created_at>,<kind>,<tags>,"<content>"]
//
// with no whitespace anywhere.
func (ev *Unsigned) ToCanonical(dst []byte) (b []byte) {
	b = dst
	b = append(b, "[0,\""...)
	b = hex.EncAppend(b, ev.Pubkey[:])
	b = append(b, "\","...)
	b = ev.CreatedAt.Marshal(b)
	b = append(b, ',')
	b = ev.Kind.Marshal(b)
	b = append(b, ',')
	b = ev.Tags.Marshal(b)
	b = append(b, ',', '"')
	b = text.NostrEscapeString(b, ev.Content)
	b = append(b, '"', ']')
	return
}

// ComputeID returns the SHA256 hash of the canonical form.
func (ev *Unsigned) ComputeID() [sha256.Size]byte { return sha256.Sum256(ev.ToCanonical(nil)) }

// GetIDBytes returns the raw SHA256 hash of the canonical form of an event as a
// slice.
func (ev *Unsigned) GetIDBytes() []byte { return Hash(ev.ToCanonical(nil)) }
