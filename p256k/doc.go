// Package p256k is the default signer.I for nostr BIP-340 x-only signatures
// and public keys, backed by the pure Go btcec library.
package p256k
