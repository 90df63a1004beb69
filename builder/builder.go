// Package builder assembles unsigned events: a kind and content given up front,
// tags added one at a time, and the author and timestamp bound at Finalize.
//
// A builder has a single owner and is not safe for concurrent use.
package builder

import (
	"realy.lol/nostrcore/chk"
	"realy.lol/nostrcore/event"
	"realy.lol/nostrcore/keys"
	"realy.lol/nostrcore/kind"
	"realy.lol/nostrcore/log"
	"realy.lol/nostrcore/tag"
	"realy.lol/nostrcore/tags"
	"realy.lol/nostrcore/timestamp"
)

// T accumulates the parts of an event.Unsigned.
type T struct {
	kind    *kind.T
	content string
	tags    *tags.T
	clock   timestamp.Clock
}

// New starts an event of the given kind with no tags, stamped by the system
// clock. A nil kind is kind 0.
func New(k *kind.T, content string) *T {
	if k == nil {
		k = kind.New(0)
	}
	return &T{
		kind:    kind.New(k.K),
		content: content,
		tags:    tags.New(),
		clock:   timestamp.System,
	}
}

// WithClock replaces the time source used by Finalize. A nil clock leaves the
// current one in place.
func (b *T) WithClock(c timestamp.Clock) *T {
	if c != nil {
		b.clock = c
	}
	return b
}

// AddTag appends the tag [name, values...]. It can not fail since name is
// always present, it goes through the same validation as AddTagFields.
func (b *T) AddTag(name string, values ...string) *T {
	fields := make([]string, 0, 1+len(values))
	fields = append(fields, name)
	fields = append(fields, values...)
	return b.AddTagFields(fields...)
}

// AddTagFields appends a tag made of the raw fields. A tag that fails
// validation is dropped and the builder carries on without it, use TryAddTag
// to find out.
func (b *T) AddTagFields(fields ...string) *T {
	if err := b.TryAddTag(fields...); err != nil {
		log.D.F("dropped tag %v: %v", fields, err)
	}
	return b
}

// TryAddTag is AddTagFields that returns the validation error instead of
// dropping the tag silently.
func (b *T) TryAddTag(fields ...string) (err error) {
	var t *tag.T
	if t, err = tag.Parse(fields...); chk.T(err) {
		return
	}
	b.tags.AppendTags(t)
	return
}

// Len is the number of tags added so far.
func (b *T) Len() int { return b.tags.Len() }

// Finalize binds the author and the current time and returns the event. The
// clock is read exactly once. The tags are copied so the builder can go on
// being used without changing the returned event.
func (b *T) Finalize(pk keys.PublicKey) *event.Unsigned {
	return &event.Unsigned{
		Pubkey:    pk,
		CreatedAt: b.clock.Now(),
		Kind:      kind.New(b.kind.K),
		Tags:      b.tags.Clone(),
		Content:   b.content,
	}
}
