// Package kind is the 16 bit event type of the nostr protocol. Every value
// 0-65535 is structurally valid; the names and classes here are the registry
// of well known kinds and have no effect on encoding or id derivation.
package kind

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"realy.lol/nostrcore/chk"
	"realy.lol/nostrcore/errorf"
	"realy.lol/nostrcore/ints"
)

// T - which will be externally referenced as kind.T is the event type in the
// nostr protocol, the use of the capital T signifying type, consistent with Go
// idiom, the Go standard library, and much, conformant, existing code.
type T struct {
	K uint16
}

// New creates a kind.T from any integer, truncating to 16 bits.
func New[V constraints.Integer](k V) (ki *T) { return &T{uint16(k)} }

func (k *T) ToInt() int {
	if k == nil {
		return 0
	}
	return int(k.K)
}

func (k *T) ToU16() uint16 {
	if k == nil {
		return 0
	}
	return k.K
}

func (k *T) ToU64() uint64 {
	if k == nil {
		return 0
	}
	return uint64(k.K)
}

// Name returns the registered name of the kind, or an empty string.
func (k *T) Name() string { return GetString(k) }

func (k *T) Equal(k2 *T) bool {
	if k == nil || k2 == nil {
		return k == k2
	}
	return k.K == k2.K
}

func (k *T) String() string {
	if n := k.Name(); n != "" {
		return fmt.Sprintf("%d (%s)", k.ToU16(), n)
	}
	return fmt.Sprint(k.ToU16())
}

// Marshal appends the kind as a JSON integer.
func (k *T) Marshal(dst []byte) (b []byte) { return ints.New(k.ToU64()).Marshal(dst) }

// Unmarshal decodes a JSON integer, which must fit in 16 bits.
func (k *T) Unmarshal(b []byte) (r []byte, err error) {
	n := ints.New(0)
	if r, err = n.Unmarshal(b); chk.T(err) {
		return
	}
	if n.N > 1<<16-1 {
		err = errorf.D("kind %d out of range", n.N)
		return
	}
	k.K = n.Uint16()
	return
}

// GetString returns a human readable identifier for a kind.T.
func GetString(t *T) string {
	if t == nil {
		return ""
	}
	return Map[t.K]
}

// IsRegular is true for kinds whose events are all expected to be kept.
func (k *T) IsRegular() bool {
	return k.K == 1 || k.K == 2 || (k.K >= 4 && k.K < 45) ||
		(k.K >= 1000 && k.K < ReplaceableStart.K)
}

// IsReplaceable returns true if the event kind is a replaceable kind - that is,
// if the newest version is the one that is in force (eg follow lists, relay
// lists, etc.
func (k *T) IsReplaceable() bool {
	return k.K == ProfileMetadata.K || k.K == FollowList.K ||
		(k.K >= ReplaceableStart.K && k.K < ReplaceableEnd.K)
}

// IsEphemeral returns true if the event kind is an ephemeral event. (not to be
// stored)
func (k *T) IsEphemeral() bool {
	return k.K >= EphemeralStart.K && k.K < EphemeralEnd.K
}

// IsParameterizedReplaceable is a kind of event that is one of a group of
// events that replaces based on matching criteria, the "d" tag.
func (k *T) IsParameterizedReplaceable() bool {
	return k.K >= ParameterizedReplaceableStart.K &&
		k.K < ParameterizedReplaceableEnd.K
}
