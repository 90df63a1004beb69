// Package atag is the address of a replaceable or addressable event as it
// appears in the value of an "a" tag, kind:pubkey:d-identifier.
package atag

import (
	"strconv"
	"strings"

	"realy.lol/nostrcore/errorf"
	"realy.lol/nostrcore/keys"
	"realy.lol/nostrcore/kind"
)

type T struct {
	Kind   *kind.T
	PubKey keys.PublicKey
	DTag   string
}

// Marshal appends the kind:pubkey:d form.
func (t *T) Marshal(dst []byte) (b []byte) {
	b = t.Kind.Marshal(dst)
	b = append(b, ':')
	b = append(b, t.PubKey.Hex()...)
	b = append(b, ':')
	b = append(b, t.DTag...)
	return
}

func (t *T) String() string { return string(t.Marshal(nil)) }

// Parse decodes kind:pubkey:d. The d identifier may itself contain colons, it
// is everything after the second one.
func Parse(s string) (t *T, err error) {
	split := strings.SplitN(s, ":", 3)
	if len(split) != 3 {
		err = errorf.D("address %q must have the form kind:pubkey:d", s)
		return
	}
	var k uint64
	if k, err = strconv.ParseUint(split[0], 10, 16); err != nil {
		err = errorf.D("address %q has an invalid kind: %w", s, err)
		return
	}
	t = &T{Kind: kind.New(k), DTag: split[2]}
	if t.PubKey, err = keys.ParsePublicKey(split[1]); err != nil {
		t = nil
		err = errorf.D("address %q has an invalid pubkey: %w", s, err)
		return
	}
	return
}
