package p256k

import (
	"realy.lol/nostrcore/p256k/btcec"
)

// Signer is the btcec implementation, there is no cgo variant in this build.
type Signer = btcec.Signer

// New returns an empty Signer, call Generate, InitSec or InitPub before use.
func New() *Signer { return new(Signer) }
