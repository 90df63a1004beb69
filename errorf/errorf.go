// Package errorf exposes the error constructors of the main lol.Logger, each of
// which logs the formatted message at its level and returns it as an error.
package errorf

import (
	"realy.lol/nostrcore/lol"
)

var (
	F = lol.Main.Errorf.F
	E = lol.Main.Errorf.E
	W = lol.Main.Errorf.W
	I = lol.Main.Errorf.I
	D = lol.Main.Errorf.D
	T = lol.Main.Errorf.T
)
