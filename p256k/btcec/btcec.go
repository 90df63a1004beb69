// Package btcec implements the signer.I interface for BIP-340 signatures.
package btcec

import (
	ec "github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"

	"realy.lol/nostrcore/chk"
	"realy.lol/nostrcore/errorf"
	"realy.lol/nostrcore/keys"
	"realy.lol/nostrcore/signer"
)

// Signer is an implementation of signer.I that uses the btcec library.
type Signer struct {
	SecretKey *ec.PrivateKey
	PublicKey *ec.PublicKey
	pkb, skb  []byte
}

var _ signer.I = &Signer{}

// Generate creates a new key pair in the Signer.
func (s *Signer) Generate() (err error) {
	var sk keys.SecretKey
	if _, sk, err = keys.Generate(); chk.E(err) {
		return
	}
	err = s.InitSec(sk[:])
	sk.Zero()
	return
}

// InitSec initialises a Signer using raw secret key bytes.
func (s *Signer) InitSec(sec []byte) (err error) {
	var sk keys.SecretKey
	if sk, err = keys.SecretFromBytes(sec); chk.E(err) {
		return
	}
	s.SecretKey, s.PublicKey = ec.PrivKeyFromBytes(sk[:])
	s.skb = append(s.skb[:0], sk[:]...)
	s.pkb = schnorr.SerializePubKey(s.PublicKey)
	sk.Zero()
	return
}

// InitPub initializes a signature verifier Signer from raw public key bytes.
func (s *Signer) InitPub(pub []byte) (err error) {
	if s.PublicKey, err = schnorr.ParsePubKey(pub); chk.D(err) {
		return
	}
	s.pkb = append(s.pkb[:0], pub...)
	return
}

// Sec returns the raw secret key bytes.
func (s *Signer) Sec() (b []byte) { return s.skb }

// Pub returns the raw BIP-340 schnorr public key bytes.
func (s *Signer) Pub() (b []byte) { return s.pkb }

// Sign a message with the Signer. Requires an initialised secret key.
func (s *Signer) Sign(msg []byte) (sig []byte, err error) {
	if s.SecretKey == nil {
		err = errorf.E("btcec: Signer not initialized")
		return
	}
	var si *schnorr.Signature
	if si, err = schnorr.Sign(s.SecretKey, msg); chk.E(err) {
		return
	}
	sig = si.Serialize()
	return
}

// Verify a message signature, only requires the public key is initialised.
//
// A signature that does not parse is reported as an error, one that parses
// but does not match is valid == false with no error.
func (s *Signer) Verify(msg, sig []byte) (valid bool, err error) {
	if s.PublicKey == nil {
		err = errorf.E("btcec: Pubkey not initialized")
		return
	}
	var si *schnorr.Signature
	if si, err = schnorr.ParseSignature(sig); chk.D(err) {
		err = errorf.D("failed to parse signature: %d bytes: %v", len(sig), err)
		return
	}
	valid = si.Verify(msg, s.PublicKey)
	return
}

// Zero wipes the bytes of the secret key.
func (s *Signer) Zero() {
	if s.SecretKey != nil {
		s.SecretKey.Zero()
	}
	clear(s.skb)
}
