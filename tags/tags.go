// Package tags is the ordered sequence of tags attached to an event.
package tags

import (
	"github.com/pkg/errors"

	"realy.lol/nostrcore/tag"
)

// T is a list of tag.T - which are lists of string elements with ordering and no
// uniqueness constraint (not a set).
type T struct {
	t []*tag.T
}

func New(fields ...*tag.T) (t *T) {
	t = &T{t: make([]*tag.T, 0, len(fields))}
	t.t = append(t.t, fields...)
	return
}

func NewWithCap(c int) (t *T) { return &T{t: make([]*tag.T, 0, c)} }

// FromStringSlice builds the tags from their [][]string form. Elements are used
// as given, including empty strings, as decoded events must hash exactly as
// sent, but every tag must have at least one element.
func FromStringSlice(s [][]string) (t *T, err error) {
	t = NewWithCap(len(s))
	for i, v := range s {
		var tt *tag.T
		if tt, err = tag.Parse(v...); err != nil {
			return nil, errors.Wrapf(err, "tag %d", i)
		}
		t.t = append(t.t, tt)
	}
	return
}

// Len returns the number of tags.
func (t *T) Len() (l int) {
	if t == nil {
		return
	}
	return len(t.t)
}

// N returns the tag at index i, or nil if there is none.
func (t *T) N(i int) (tt *tag.T) {
	if t == nil || i < 0 || i >= len(t.t) {
		return nil
	}
	return t.t[i]
}

// Value returns the underlying slice of tags.
func (t *T) Value() (tt []*tag.T) {
	if t == nil {
		return []*tag.T{}
	}
	return t.t
}

// AppendTags adds tags to the end of the list. A nil receiver creates a new T.
func (t *T) AppendTags(ttt ...*tag.T) (tt *T) {
	if t == nil {
		t = NewWithCap(len(ttt))
	}
	t.t = append(t.t, ttt...)
	return t
}

func (t *T) ToStringSlice() (b [][]string) {
	b = make([][]string, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		b = append(b, t.t[i].ToStringSlice())
	}
	return
}

// Clone makes a deep copy, so the copy shares no storage with t.
func (t *T) Clone() (c *T) {
	c = &T{t: make([]*tag.T, t.Len())}
	for i := 0; i < t.Len(); i++ {
		c.t[i] = t.t[i].Clone()
	}
	return
}

// Equal is true when both have the same tags in the same order. Order is
// significant as it changes the event id.
func (t *T) Equal(ta *T) bool {
	if t.Len() != ta.Len() {
		return false
	}
	for i := 0; i < t.Len(); i++ {
		if !t.t[i].Equal(ta.t[i]) {
			return false
		}
	}
	return true
}

// GetFirst gets the first tag in tags that matches the prefix, see [tag.T.StartsWith]
func (t *T) GetFirst(tagPrefix *tag.T) *tag.T {
	for _, v := range t.Value() {
		if v.StartsWith(tagPrefix) {
			return v
		}
	}
	return nil
}

// GetAll gets all the tags that match the prefix, see [tag.T.StartsWith]
func (t *T) GetAll(tagPrefix *tag.T) *T {
	result := &T{t: make([]*tag.T, 0, t.Len())}
	for _, v := range t.Value() {
		if v.StartsWith(tagPrefix) {
			result.t = append(result.t, v)
		}
	}
	return result
}

// Marshal appends the JSON encoded form of T as [][]string to dst. An empty or
// nil T is `[]`.
func (t *T) Marshal(dst []byte) (b []byte) {
	b = append(dst, '[')
	for i := 0; i < t.Len(); i++ {
		if i > 0 {
			b = append(b, ',')
		}
		b = t.t[i].Marshal(b)
	}
	b = append(b, ']')
	return
}

func (t *T) String() string { return string(t.Marshal(nil)) }
