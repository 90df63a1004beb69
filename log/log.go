// Package log exposes the level printers of the main lol.Logger as log.I.F,
// log.D.Ln, log.E.S and so on.
package log

import (
	"realy.lol/nostrcore/lol"
)

var (
	F = lol.Main.Log.F
	E = lol.Main.Log.E
	W = lol.Main.Log.W
	I = lol.Main.Log.I
	D = lol.Main.Log.D
	T = lol.Main.Log.T
)
