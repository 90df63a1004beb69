// Package keys holds the BIP-340 key material used by nostr events: the x-only
// public key that identifies an author and the secret scalar that signs for it.
//
// Every constructor validates its input completely, a PublicKey that exists is
// always the x coordinate of a point on secp256k1 and a SecretKey is always in
// the range [1, n-1].
package keys

import (
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"
	"lukechampine.com/frand"

	"realy.lol/nostrcore/bech32encoding"
	"realy.lol/nostrcore/chk"
	"realy.lol/nostrcore/hex"
	"realy.lol/nostrcore/log"
)

const (
	PubKeyLen = schnorr.PubKeyBytesLen
	SecKeyLen = btcec.PrivKeyBytesLen
)

var (
	// ErrInvalidKeyEncoding is wrapped by every failure to decode or validate a key.
	ErrInvalidKeyEncoding = errors.New("invalid key encoding")
	// ErrRandomness is wrapped when the entropy source fails during generation.
	// There is no retry, callers should treat this as fatal.
	ErrRandomness = errors.New("randomness unavailable")
)

// Rand is the entropy source for Generate.
var Rand io.Reader = frand.Reader

type (
	// PublicKey is a 32 byte x-only BIP-340 public key.
	PublicKey [PubKeyLen]byte
	// SecretKey is a 32 byte secp256k1 secret scalar.
	SecretKey [SecKeyLen]byte
)

// Generate a new key pair from Rand.
func Generate() (pk PublicKey, sk SecretKey, err error) { return GenerateFrom(Rand) }

// GenerateFrom generates a key pair drawing entropy from r.
func GenerateFrom(r io.Reader) (pk PublicKey, sk SecretKey, err error) {
	var priv *secp256k1.PrivateKey
	if priv, err = secp256k1.GeneratePrivateKeyFromRand(r); err != nil {
		err = errors.Wrap(ErrRandomness, err.Error())
		log.E.Ln(err)
		return
	}
	priv.Key.PutBytes((*[SecKeyLen]byte)(&sk))
	copy(pk[:], schnorr.SerializePubKey(priv.PubKey()))
	priv.Zero()
	return
}

// FromBytes copies 32 bytes into a PublicKey after checking they are the x
// coordinate of a curve point.
func FromBytes(b []byte) (pk PublicKey, err error) {
	if len(b) != PubKeyLen {
		err = errors.Wrapf(ErrInvalidKeyEncoding,
			"public key must be %d bytes, got %d", PubKeyLen, len(b))
		return
	}
	if _, err = schnorr.ParsePubKey(b); err != nil {
		err = errors.Wrap(ErrInvalidKeyEncoding, err.Error())
		return
	}
	copy(pk[:], b)
	return
}

// ParsePublicKey accepts either 64 lowercase hex characters or an npub.
func ParsePublicKey(s string) (pk PublicKey, err error) {
	if len(s) == 2*PubKeyLen {
		if !hex.IsLower(s) {
			err = errors.Wrap(ErrInvalidKeyEncoding,
				"public key hex must be lowercase")
			return
		}
		var b []byte
		if b, err = hex.DecFixed(s, PubKeyLen); err != nil {
			err = errors.Wrap(ErrInvalidKeyEncoding, err.Error())
			return
		}
		return FromBytes(b)
	}
	return FromBech32(s)
}

// FromBech32 decodes an npub.
func FromBech32(npub string) (pk PublicKey, err error) {
	var b []byte
	if b, err = bech32encoding.NpubToPublicKey(npub); err != nil {
		err = errors.Wrap(ErrInvalidKeyEncoding, err.Error())
		return
	}
	return FromBytes(b)
}

// Bytes returns the key as a slice.
func (pk PublicKey) Bytes() []byte { return pk[:] }

// Hex returns the lowercase hex form used in the canonical serialization.
func (pk PublicKey) Hex() string { return hex.Enc(pk[:]) }

// Bech32 returns the npub form.
func (pk PublicKey) Bech32() (npub string, err error) {
	return bech32encoding.PublicKeyToNpub(pk[:])
}

func (pk PublicKey) String() string { return pk.Hex() }

// Equal reports whether two public keys are the same.
func (pk PublicKey) Equal(o PublicKey) bool { return pk == o }

// IsZero is true for the zero value, which is never a valid key.
func (pk PublicKey) IsZero() bool { return pk == PublicKey{} }

// SecretFromBytes copies 32 bytes into a SecretKey after checking the scalar is
// in range.
func SecretFromBytes(b []byte) (sk SecretKey, err error) {
	if len(b) != SecKeyLen {
		err = errors.Wrapf(ErrInvalidKeyEncoding,
			"secret key must be %d bytes, got %d", SecKeyLen, len(b))
		return
	}
	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(b); overflow || s.IsZero() {
		err = errors.Wrap(ErrInvalidKeyEncoding, "secret key out of range")
		return
	}
	s.Zero()
	copy(sk[:], b)
	return
}

// ParseSecretKey accepts 64 hex characters or an nsec.
func ParseSecretKey(s string) (sk SecretKey, err error) {
	var b []byte
	if len(s) == 2*SecKeyLen {
		if b, err = hex.DecFixed(s, SecKeyLen); err != nil {
			err = errors.Wrap(ErrInvalidKeyEncoding, err.Error())
			return
		}
	} else if b, err = bech32encoding.NsecToSecretKey(s); err != nil {
		err = errors.Wrap(ErrInvalidKeyEncoding, err.Error())
		return
	}
	sk, err = SecretFromBytes(b)
	clear(b)
	return
}

// PublicKey derives the x-only public key by scalar multiplication.
func (sk *SecretKey) PublicKey() (pk PublicKey) {
	priv, pub := btcec.PrivKeyFromBytes(sk[:])
	copy(pk[:], schnorr.SerializePubKey(pub))
	priv.Zero()
	return
}

// Hex returns the secret in hex. Handle with care.
func (sk *SecretKey) Hex() string { return hex.Enc(sk[:]) }

// Bech32 returns the nsec form.
func (sk *SecretKey) Bech32() (nsec string, err error) {
	if nsec, err = bech32encoding.SecretKeyToNsec(sk[:]); chk.E(err) {
		return
	}
	return
}

// Zero wipes the key.
func (sk *SecretKey) Zero() { clear(sk[:]) }

// String is redacted so a SecretKey can not end up in a log by accident.
func (sk SecretKey) String() string { return "SecretKey(redacted)" }

// GoString is redacted for the same reason as String, it covers %#v.
func (sk SecretKey) GoString() string { return sk.String() }
