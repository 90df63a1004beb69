package timestamp

// Clock supplies the current time when an event is finalized.
type Clock interface {
	Now() *T
}

type system struct{}

func (system) Now() *T { return Now() }

// System reads the wall clock.
var System Clock = system{}

// Fixed is a Clock that always returns the same time.
type Fixed T

func (f Fixed) Now() *T {
	tt := T(f)
	return &tt
}
