// Package sign builds a signer.I from the textual key forms a user types in.
package sign

import (
	"realy.lol/nostrcore/chk"
	"realy.lol/nostrcore/keys"
	"realy.lol/nostrcore/p256k"
	"realy.lol/nostrcore/signer"
)

// FromSecret returns a signing signer.I from an nsec or a hex secret key.
func FromSecret(sec string) (s signer.I, err error) {
	var sk keys.SecretKey
	if sk, err = keys.ParseSecretKey(sec); chk.E(err) {
		return
	}
	sign := p256k.New()
	if err = sign.InitSec(sk[:]); chk.E(err) {
		return
	}
	sk.Zero()
	s = sign
	return
}

// FromPublic returns a verify-only signer.I from an npub or a hex public key.
func FromPublic(pub string) (v signer.I, err error) {
	var pk keys.PublicKey
	if pk, err = keys.ParsePublicKey(pub); chk.E(err) {
		return
	}
	sign := p256k.New()
	if err = sign.InitPub(pk[:]); chk.E(err) {
		return
	}
	v = sign
	return
}
