// Package examples is an embedded jsonl collection of signed events with ids
// and signatures made by an independent BIP-340 implementation, and the
// canonical form of each, line for line, for testing the event codec.
package examples

import (
	_ "embed"
)

// Vectors is one signed event per line in minified wire form.
//
//go:embed vectors.jsonl
var Vectors []byte

// Canonical is the canonical serialization of each event in Vectors.
//
//go:embed canonical.txt
var Canonical []byte
