package bech32encoding

import (
	"github.com/btcsuite/btcd/btcutil/bech32"
)

// encodeRaw encodes already regrouped data without the length check of Encode.
func encodeRaw(hrp string, b5 []byte) (string, error) { return bech32.Encode(hrp, b5) }
