// Package verify decides whether an event can be trusted: its id must match its
// content and its signature must be by its author over that id. On top of that
// a Rules registry holds kind specific checks an application plugs in.
package verify

import (
	"github.com/pkg/errors"

	"realy.lol/nostrcore/event"
	"realy.lol/nostrcore/log"
)

// ErrUntrusted is wrapped by Accept when the id or signature does not check out.
var ErrUntrusted = errors.New("untrusted event")

// Status is the outcome of checking an event. The zero value is untrusted.
type Status struct {
	IDValid  bool
	SigValid bool
}

// Check runs both the id and signature checks. Both always run, so the Status
// says exactly what is wrong with a rejected event.
func Check(ev *event.T) (s Status) {
	if ev == nil {
		return
	}
	s.IDValid = ev.VerifyID()
	s.SigValid = ev.VerifySignature()
	return
}

// Trusted is true only when both the id and the signature are valid.
func (s Status) Trusted() bool { return s.IDValid && s.SigValid }

func (s Status) String() string {
	switch {
	case s.Trusted():
		return "trusted"
	case s.IDValid:
		return "rejected: invalid signature"
	case s.SigValid:
		return "rejected: invalid id"
	default:
		return "rejected: invalid id and signature"
	}
}

// Accept checks an event is trusted and then that it passes the rules for its
// kind. A nil rules accepts every trusted event, a nil event is untrusted.
func Accept(ev *event.T, rules *Rules) (s Status, err error) {
	if ev == nil {
		err = errors.Wrap(ErrUntrusted, "no event")
		return
	}
	s = Check(ev)
	if !s.Trusted() {
		err = errors.Wrap(ErrUntrusted, s.String())
		log.D.F("%s %s", s, ev.IDString())
		return
	}
	if err = rules.Validate(ev); err != nil {
		log.D.F("event %s kind %d: %v", ev.IDString(), ev.KindUint16(), err)
	}
	return
}
