package event

import (
	"bytes"

	"realy.lol/nostrcore/chk"
	"realy.lol/nostrcore/errorf"
	"realy.lol/nostrcore/p256k"
	"realy.lol/nostrcore/sha256"
	"realy.lol/nostrcore/signer"
)

// SigLen is the length of a BIP-340 signature.
const SigLen = 64

// Sign computes the id of the event and has the signer.I sign it. The signer
// must hold the secret for the event's Pubkey.
//
// The Unsigned is copied into the result, the tag sequence is shared.
func (ev *Unsigned) Sign(s signer.I) (signed *T, err error) {
	if !bytes.Equal(s.Pub(), ev.Pubkey[:]) {
		err = errorf.E("signer pubkey %0x does not match event pubkey %s",
			s.Pub(), ev.Pubkey.Hex())
		return
	}
	signed = &T{Unsigned: *ev, ID: ev.GetIDBytes()}
	if signed.Sig, err = s.Sign(signed.ID); chk.E(err) {
		signed = nil
		return
	}
	return
}

// VerifyID recomputes the id from the content and compares it to ID.
func (ev *T) VerifyID() bool {
	if len(ev.ID) != sha256.Size {
		return false
	}
	id := ev.ComputeID()
	return bytes.Equal(id[:], ev.ID)
}

// VerifySignature checks Sig is a valid BIP-340 signature by Pubkey over ID as
// it is stored. It does not check that ID matches the content, see VerifyID.
func (ev *T) VerifySignature() (valid bool) {
	if len(ev.ID) != sha256.Size || len(ev.Sig) != SigLen {
		return
	}
	keys := p256k.New()
	if err := keys.InitPub(ev.Pubkey[:]); chk.D(err) {
		return
	}
	var err error
	if valid, err = keys.Verify(ev.ID, ev.Sig); chk.T(err) {
		return false
	}
	return
}
