package bech32encoding

import (
	"github.com/btcsuite/btcd/btcutil/bech32"

	"realy.lol/nostrcore/chk"
	"realy.lol/nostrcore/errorf"
)

const (
	// MinKeyStringLen is 56 because Bech32 needs 52 characters plus 4 for the HRP,
	// any string shorter than this cannot be a nostr key.
	MinKeyStringLen = 56
	HexKeyLen       = 64
	Bech32HRPLen    = 4
	// EntityLen is the size of the payload of an npub, nsec or note.
	EntityLen = 32
)

const (
	NpubHRP = "npub"
	NsecHRP = "nsec"
	NoteHRP = "note"
)

// ConvertForBech32 performs the bit expansion required for encoding into Bech32.
func ConvertForBech32(b8 []byte) (b5 []byte, err error) {
	return bech32.ConvertBits(b8, 8, 5, true)
}

// ConvertFromBech32 collapses together the bit expanded 5 bit numbers encoded in bech32.
//
// The padding bits left over at the end must be zero and fewer than 5, so a
// payload with trailing garbage is rejected rather than truncated.
func ConvertFromBech32(b5 []byte) (b8 []byte, err error) {
	return bech32.ConvertBits(b5, 5, 8, false)
}

// Encode a 32 byte payload with the given human readable prefix.
func Encode(hrp string, b []byte) (encoded string, err error) {
	if len(b) != EntityLen {
		err = errorf.E("%s payload must be %d bytes, got %d", hrp, EntityLen, len(b))
		return
	}
	var b5 []byte
	if b5, err = ConvertForBech32(b); chk.E(err) {
		return
	}
	return bech32.Encode(hrp, b5)
}

// Decode a bech32 string that must carry the expected human readable prefix and
// a payload of exactly 32 bytes.
func Decode(hrp, encoded string) (b []byte, err error) {
	var gotHRP string
	var b5 []byte
	if gotHRP, b5, err = bech32.Decode(encoded); chk.D(err) {
		return
	}
	if gotHRP != hrp {
		err = errorf.D("wrong human readable part, got '%s' want '%s'", gotHRP, hrp)
		return
	}
	if b, err = ConvertFromBech32(b5); chk.D(err) {
		return
	}
	if len(b) != EntityLen {
		err = errorf.D("%s decoded to %d bytes, must be %d", hrp, len(b), EntityLen)
		return
	}
	return
}

// PublicKeyToNpub encodes the x-only public key bytes as a bech32 string (npub).
func PublicKeyToNpub(pub []byte) (npub string, err error) { return Encode(NpubHRP, pub) }

// NpubToPublicKey decodes an npub to the 32 x-only public key bytes. The bytes
// are not checked to be a point on the curve, the keys package does that.
func NpubToPublicKey(npub string) (pub []byte, err error) { return Decode(NpubHRP, npub) }

// SecretKeyToNsec encodes secret key bytes as a bech32 string (nsec).
func SecretKeyToNsec(sec []byte) (nsec string, err error) { return Encode(NsecHRP, sec) }

// NsecToSecretKey decodes an nsec to the 32 secret key bytes.
func NsecToSecretKey(nsec string) (sec []byte, err error) { return Decode(NsecHRP, nsec) }

// EventIDToNote encodes an event id as a bech32 string (note).
func EventIDToNote(id []byte) (note string, err error) { return Encode(NoteHRP, id) }

// NoteToEventID decodes a note to the 32 byte event id.
func NoteToEventID(note string) (id []byte, err error) { return Decode(NoteHRP, note) }
