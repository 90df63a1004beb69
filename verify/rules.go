package verify

import (
	"github.com/pkg/errors"
	"github.com/puzpuzpuz/xsync/v3"

	"realy.lol/nostrcore/event"
	"realy.lol/nostrcore/kind"
	"realy.lol/nostrcore/tag"
	"realy.lol/nostrcore/tag/atag"
)

// ErrRule is wrapped by every failure returned from a Rule made in this package.
var ErrRule = errors.New("kind rule failed")

// Rule checks the kind specific structure of an event, it is only called for
// events that have already been checked as trusted.
type Rule func(ev *event.T) error

// Rules maps kinds to their Rule. It is safe for concurrent use, rules can be
// registered while other goroutines validate.
type Rules struct {
	m *xsync.MapOf[uint16, Rule]
}

func NewRules() *Rules { return &Rules{m: xsync.NewMapOf[uint16, Rule]()} }

// Register sets the rule for a kind, replacing any previous one. A nil rule
// removes it.
func (r *Rules) Register(k *kind.T, rule Rule) *Rules {
	if rule == nil {
		r.m.Delete(k.ToU16())
		return r
	}
	r.m.Store(k.ToU16(), rule)
	return r
}

// Lookup returns the rule for a kind if there is one.
func (r *Rules) Lookup(k *kind.T) (rule Rule, ok bool) {
	if r == nil {
		return
	}
	return r.m.Load(k.ToU16())
}

// Len is the number of kinds with a rule.
func (r *Rules) Len() int {
	if r == nil {
		return 0
	}
	return r.m.Size()
}

// Validate runs the rule registered for the event's kind. Kinds without a rule
// pass.
func (r *Rules) Validate(ev *event.T) (err error) {
	rule, ok := r.Lookup(ev.Kind)
	if !ok {
		return
	}
	return rule(ev)
}

func hasTag(ev *event.T, name string) bool {
	return ev.Tags.GetFirst(tag.New(name)) != nil
}

// RequireTag is a Rule that wants at least one tag with exactly the given name.
func RequireTag(name string) Rule {
	return func(ev *event.T) (err error) {
		if !hasTag(ev, name) {
			err = errors.Wrapf(ErrRule, "kind %d requires a %q tag",
				ev.KindUint16(), name)
		}
		return
	}
}

// RequireAnyTag is a Rule that wants a tag with one of the given names.
func RequireAnyTag(names ...string) Rule {
	return func(ev *event.T) (err error) {
		for _, n := range names {
			if hasTag(ev, n) {
				return
			}
		}
		return errors.Wrapf(ErrRule, "kind %d requires one of the tags %q",
			ev.KindUint16(), names)
	}
}

// ValidAddresses is a Rule that wants every "a" tag to hold the address of a
// replaceable or addressable event.
func ValidAddresses(ev *event.T) (err error) {
	for _, t := range ev.Tags.GetAll(tag.New("a")).Value() {
		if t.Len() < 2 {
			continue
		}
		var a *atag.T
		if a, err = atag.Parse(t.Value()); err != nil {
			return errors.Wrap(ErrRule, err.Error())
		}
		if !a.Kind.IsReplaceable() && !a.Kind.IsParameterizedReplaceable() {
			return errors.Wrapf(ErrRule, "address %s is not of a replaceable kind", a)
		}
	}
	return
}

// All combines rules, the first failure is returned.
func All(rules ...Rule) Rule {
	return func(ev *event.T) (err error) {
		for _, r := range rules {
			if err = r(ev); err != nil {
				return
			}
		}
		return
	}
}

// Standard returns the rules for the structural requirements of the common
// kinds: reactions and reposts point at an event, deletions at an event or
// valid address, and the known addressable kinds carry their "d" identifier.
func Standard() (r *Rules) {
	r = NewRules().
		Register(kind.Reaction, RequireTag("e")).
		Register(kind.Repost, RequireTag("e")).
		Register(kind.GenericRepost, RequireTag("e")).
		Register(kind.EventDeletion, All(RequireAnyTag("e", "a"), ValidAddresses))
	for k := range kind.Map {
		if kk := kind.New(k); kk.IsParameterizedReplaceable() {
			r.Register(kk, RequireTag("d"))
		}
	}
	return
}
