// Package hex is lowercase hexadecimal encoding for keys, event ids and
// signatures, using the SIMD accelerated codec from templexxx/xhex where the
// destination can be sized up front.
package hex

import (
	"encoding/hex"

	"github.com/templexxx/xhex"

	"realy.lol/nostrcore/chk"
	"realy.lol/nostrcore/errorf"
)

// Enc returns the lowercase hex encoding of src.
func Enc(src []byte) (s string) {
	b := make([]byte, len(src)*2)
	xhex.Encode(b, src)
	return string(b)
}

// Dec decodes a hex string. Both cases of the digits a-f are accepted, use
// IsLower first where only the canonical lowercase form is allowed.
func Dec(s string) (b []byte, err error) { return hex.DecodeString(s) }

var DecLen = hex.DecodedLen

type InvalidByteError = hex.InvalidByteError

// EncAppend appends the lowercase hex encoding of src to dst.
func EncAppend(dst, src []byte) (b []byte) {
	l := len(dst)
	dst = append(dst, make([]byte, len(src)*2)...)
	xhex.Encode(dst[l:], src)
	return dst
}

// DecAppend decodes src and appends the bytes to dst.
func DecAppend(dst, src []byte) (b []byte, err error) {
	if len(src)%2 != 0 {
		err = errorf.D("odd length hex string: %d", len(src))
		return
	}
	l := len(dst)
	b = append(dst, make([]byte, len(src)/2)...)
	if err = xhex.Decode(b[l:], src); chk.D(err) {
		return
	}
	return
}

// DecFixed decodes s into exactly size bytes, failing on any other length.
func DecFixed(s string, size int) (b []byte, err error) {
	if len(s) != size*2 {
		err = errorf.D("hex string is %d characters, require %d", len(s), size*2)
		return
	}
	return DecAppend(make([]byte, 0, size), []byte(s))
}

// IsLower reports whether s consists only of the digits 0-9 and a-f.
func IsLower(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			return false
		}
	}
	return true
}
