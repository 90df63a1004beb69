// Package chk exposes the error check printers of the main lol.Logger so that a
// call site reads `if err = do(); chk.E(err) { return }`, logging the error at
// the chosen level with its source location and reporting whether it was set.
package chk

import (
	"realy.lol/nostrcore/lol"
)

var (
	F = lol.Main.Check.F
	E = lol.Main.Check.E
	W = lol.Main.Check.W
	I = lol.Main.Check.I
	D = lol.Main.Check.D
	T = lol.Main.Check.T
)
