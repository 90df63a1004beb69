// Package signer is the contract for the collaborator that holds a secret key
// and produces BIP-340 signatures over event ids. The event core never sees
// the secret, it only asks a signer.I for its public key and a signature.
package signer

type I interface {
	// Generate creates a fresh new key pair from system entropy.
	Generate() (err error)
	// InitSec initialises the secret (signing) key from the raw bytes, and also
	// derives the public key because it can.
	InitSec(sec []byte) (err error)
	// InitPub initializes the public (verification) key from raw bytes.
	InitPub(pub []byte) (err error)
	// Sec returns the secret key bytes.
	Sec() []byte
	// Pub returns the public key bytes (x-only schnorr pubkey).
	Pub() []byte
	// Sign creates a signature over a 32 byte message using the stored secret
	// key.
	Sign(msg []byte) (sig []byte, err error)
	// Verify checks a message hash and signature match the stored public key.
	Verify(msg, sig []byte) (valid bool, err error)
	// Zero wipes the secret key to prevent memory leaks.
	Zero()
}
