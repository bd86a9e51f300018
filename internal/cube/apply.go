package cube

import (
	"fmt"

	"github.com/SeamusWaldron/gocube_lattice/internal/notation"
	"github.com/SeamusWaldron/gocube_lattice/pkg/types"
)

// twist is a resolved Twist call.
type twist struct {
	axis  Axis
	layer Layer
	k     int
}

// outer returns the layers counted level deep from the negative or positive
// end of an axis.
func outer(level int, positive bool) Layer {
	if positive {
		return Layers(Size-level, Size-1)
	}
	return Layers(0, level-1)
}

// resolve maps a move onto the lattice.
//
// R, U and F turn with the axis; L, D and B against it. Slices follow a
// face: M follows L, E follows D, S follows F. Rotations x, y, z follow
// R, U, F across the whole cube.
func resolve(m types.Move) (twist, error) {
	if m.Level() > Size {
		return twist{}, fmt.Errorf("%w: %s turns %d layers", ErrLevelOutOfRange, m, m.Level())
	}
	k := int(m.Sign())
	level := m.Level()

	switch m.Symbol().Upper() {
	case types.SymbolR:
		return twist{X, outer(level, true), k}, nil
	case types.SymbolL:
		return twist{X, outer(level, false), -k}, nil
	case types.SymbolU:
		return twist{Y, outer(level, true), k}, nil
	case types.SymbolD:
		return twist{Y, outer(level, false), -k}, nil
	case types.SymbolF:
		return twist{Z, outer(level, true), k}, nil
	case types.SymbolB:
		return twist{Z, outer(level, false), -k}, nil
	case types.SymbolM:
		return twist{X, SingleLayer(1), -k}, nil
	case types.SymbolE:
		return twist{Y, SingleLayer(1), -k}, nil
	case types.SymbolS:
		return twist{Z, SingleLayer(1), k}, nil
	case types.SymbolX:
		return twist{X, AllLayers, k}, nil
	case types.SymbolY:
		return twist{Y, AllLayers, k}, nil
	case types.SymbolZ:
		return twist{Z, AllLayers, k}, nil
	}
	return twist{}, fmt.Errorf("%w: %#v", types.ErrInvalidMoveConstruction, m)
}

// ApplyMove applies a types.Move to the cube. Identity is a no-op.
func (c *Cube) ApplyMove(m types.Move) error {
	if m.IsIdentity() {
		return nil
	}
	t, err := resolve(m)
	if err != nil {
		return err
	}
	return c.Twist(t.axis, t.layer, t.k)
}

// ApplyMoves applies a sequence of moves to the cube.
// Every move is checked first, so a bad move leaves the cube untouched.
func (c *Cube) ApplyMoves(moves []types.Move) error {
	twists := make([]twist, 0, len(moves))
	for i, m := range moves {
		if m.IsIdentity() {
			continue
		}
		t, err := resolve(m)
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		twists = append(twists, t)
	}
	for _, t := range twists {
		if err := c.Twist(t.axis, t.layer, t.k); err != nil {
			return err
		}
	}
	return nil
}

// ApplyNotation parses a space-separated sequence and applies it.
// Example: "R U R' U'"
func (c *Cube) ApplyNotation(s string) error {
	moves, err := notation.ParseSequence(s)
	if err != nil {
		return err
	}
	return c.ApplyMoves(moves)
}
