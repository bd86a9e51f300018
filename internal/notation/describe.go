package notation

import (
	"fmt"

	"github.com/SeamusWaldron/gocube_lattice/pkg/types"
)

// symbolNames gives the spoken name of every move letter.
var symbolNames = map[types.Symbol]string{
	types.SymbolU: "up", types.SymbolL: "left", types.SymbolF: "front",
	types.SymbolR: "right", types.SymbolB: "back", types.SymbolD: "down",
	types.SymbolM: "middle slice", types.SymbolS: "standing slice", types.SymbolE: "equator slice",
	types.SymbolX: "cube rotation x", types.SymbolY: "cube rotation y", types.SymbolZ: "cube rotation z",
}

// Describe returns a plain-language description of a move.
// Reference frame: looking at the face being turned.
//
// Examples:
//
//	R   -> "right clockwise"
//	r'  -> "right 2 layers counter-clockwise"
//	M2  -> "middle slice half turn"
func Describe(m types.Move) string {
	if m.IsIdentity() {
		return "no turn"
	}

	name := symbolNames[m.Symbol().Upper()]
	if m.Level() > 1 {
		name = fmt.Sprintf("%s %d layers", name, m.Level())
	}

	switch m.Sign() {
	case types.HalfTurn:
		return name + " half turn"
	case types.CounterClockwise:
		return name + " counter-clockwise"
	default:
		return name + " clockwise"
	}
}
