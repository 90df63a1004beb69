// Package tag provides an implementation of a nostr tag, an ordered list of
// strings whose first element is the tag name and whose remainder are its
// positional values, including methods to compare, marshal and access elements
// with their proper semantics.
package tag

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"realy.lol/nostrcore/text"
)

// The tag position meanings, so they are clear when reading.
const (
	Key = iota
	Value
	Relay
)

// ErrValidation is the cause of a failed Parse.
var ErrValidation = errors.New("validation error")

// T is a list of strings with a literal ordering.
//
// Not a set, there can be repeating elements.
type T struct {
	field []string
}

// Parse creates a tag from its elements. A tag must at least have a name, so an
// empty list fails with an error wrapping ErrValidation.
func Parse(fields ...string) (t *T, err error) {
	if len(fields) == 0 {
		err = errors.Wrap(ErrValidation, "tag has no elements")
		return
	}
	t = &T{field: make([]string, len(fields))}
	copy(t.field, fields)
	return
}

// New creates a new tag.T from a variadic parameter that can be either string or byte slice.
// Unlike Parse it accepts an empty list, giving a zero length tag.
func New[V string | []byte](fields ...V) (t *T) {
	t = &T{field: make([]string, len(fields))}
	for i, field := range fields {
		t.field[i] = string(field)
	}
	return
}

// NewWithCap creates a new empty tag.T with a pre-allocated capacity for some number of fields.
func NewWithCap[V constraints.Integer](c V) *T { return &T{make([]string, 0, c)} }

// S returns a field of a tag.T as a string.
func (t *T) S(i int) (s string) {
	if t == nil || t.Len() <= i {
		return
	}
	return t.field[i]
}

// B returns a field of a tag.T as a byte slice.
func (t *T) B(i int) (b []byte) {
	if t == nil || t.Len() <= i {
		return
	}
	return []byte(t.field[i])
}

// Len returns the number of elements in a tag.T.
func (t *T) Len() int {
	if t == nil {
		return 0
	}
	return len(t.field)
}

// Key returns the first element of the tag, the name.
func (t *T) Key() string { return t.S(Key) }

// Value returns the second element of the tag.
func (t *T) Value() string { return t.S(Value) }

// Clone makes a new tag.T with the same members.
func (t *T) Clone() (c *T) {
	if t == nil {
		return nil
	}
	c = &T{field: make([]string, len(t.field))}
	copy(c.field, t.field)
	return
}

// ToStringSlice converts a tag.T to a slice of strings.
func (t *T) ToStringSlice() (b []string) {
	b = make([]string, t.Len())
	if t != nil {
		copy(b, t.field)
	}
	return
}

// StartsWith checks a tag has the same initial set of elements. Elements are
// compared whole, so a prefix of "e" does not match an "emoji" tag.
func (t *T) StartsWith(prefix *T) bool {
	prefixLen := prefix.Len()
	if prefixLen > t.Len() {
		return false
	}
	for i := 0; i < prefixLen; i++ {
		if prefix.field[i] != t.field[i] {
			return false
		}
	}
	return true
}

// Equal checks that the provided tag has the same elements in the same order.
func (t *T) Equal(ta *T) bool { return t.Compare(ta) == 0 }

// Compare orders tags lexicographically by element, a shorter tag that is a
// prefix of a longer one sorting first. A nil tag is the same as an empty one.
func (t *T) Compare(ta *T) int {
	n := min(t.Len(), ta.Len())
	for i := 0; i < n; i++ {
		if c := strings.Compare(t.field[i], ta.field[i]); c != 0 {
			return c
		}
	}
	switch {
	case t.Len() < ta.Len():
		return -1
	case t.Len() > ta.Len():
		return 1
	}
	return 0
}

// Marshal encodes a tag.T as standard minified JSON array of strings, with the
// escaping used by the canonical event form.
func (t *T) Marshal(dst []byte) (b []byte) {
	dst = append(dst, '[')
	for i := 0; i < t.Len(); i++ {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = append(dst, '"')
		dst = text.NostrEscapeString(dst, t.field[i])
		dst = append(dst, '"')
	}
	dst = append(dst, ']')
	return dst
}

func (t *T) String() string { return string(t.Marshal(nil)) }
