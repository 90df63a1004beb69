// Package timestamp is the created_at field of an event: an unsigned count of
// seconds since the unix epoch, plus the Clock used to stamp new events so that
// code consuming the time can be driven deterministically in tests.
package timestamp

import (
	"time"

	"realy.lol/nostrcore/chk"
	"realy.lol/nostrcore/ints"
)

// T is a convenience type for UNIX 64 bit timestamps of 1 second
// precision.
type T uint64

func New() (t *T) {
	tt := T(0)
	return &tt
}

// Now returns the current UNIX timestamp of the current second.
func Now() *T {
	tt := T(time.Now().Unix())
	return &tt
}

// U64 returns the timestamp as uint64. A nil T is zero.
func (t *T) U64() uint64 {
	if t == nil {
		return 0
	}
	return uint64(*t)
}

// I64 returns the timestamp as int64.
func (t *T) I64() int64 { return int64(t.U64()) }

// Time converts the timestamp to a time.Time.
func (t *T) Time() time.Time { return time.Unix(t.I64(), 0) }

// FromTime returns a T from a time.Time. Times before the epoch become zero.
func FromTime(t time.Time) *T {
	u := t.Unix()
	if u < 0 {
		u = 0
	}
	tt := T(u)
	return &tt
}

// FromUnix converts from a standard uint64 unix timestamp.
func FromUnix(t uint64) *T {
	tt := T(t)
	return &tt
}

func (t *T) String() (s string) { return string(t.Marshal(nil)) }

// Marshal appends the timestamp as a JSON integer.
func (t *T) Marshal(dst []byte) (b []byte) { return ints.New(t.U64()).Marshal(dst) }

// Unmarshal decodes a JSON integer and returns the remainder of the input.
func (t *T) Unmarshal(b []byte) (r []byte, err error) {
	n := ints.New(0)
	if r, err = n.Unmarshal(b); chk.T(err) {
		return
	}
	*t = T(n.Uint64())
	return
}
