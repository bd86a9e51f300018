package gocube

import (
	"github.com/SeamusWaldron/gocube_lattice/internal/cube"
	"github.com/SeamusWaldron/gocube_lattice/pkg/types"
)

// Sentinel errors for the gocube package.
var (
	// Notation errors
	ErrInvalidMoveSyntax       = types.ErrInvalidMoveSyntax
	ErrInvalidMoveConstruction = types.ErrInvalidMoveConstruction

	// Algebra errors
	ErrIncompatibleMoves      = types.ErrIncompatibleMoves
	ErrUnsupportedOperandType = types.ErrUnsupportedOperandType

	// Cube errors
	ErrInvalidTwist    = cube.ErrInvalidTwist
	ErrLevelOutOfRange = cube.ErrLevelOutOfRange
)
