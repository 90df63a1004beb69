// Package bech32encoding implements the NIP-19 bare key and id entities, npub,
// nsec and note, which are bech32 encoded 32 byte values with a human readable
// prefix naming what they are.
package bech32encoding
