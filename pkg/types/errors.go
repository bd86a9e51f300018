package types

import "errors"

// Sentinel errors for move notation and move algebra.
var (
	// ErrInvalidMoveSyntax is returned when move text does not match the notation grammar.
	ErrInvalidMoveSyntax = errors.New("gocube: invalid move syntax")

	// ErrInvalidMoveConstruction is returned when a (level, symbol, sign) triple is out of domain.
	ErrInvalidMoveConstruction = errors.New("gocube: invalid move construction")

	// ErrIncompatibleMoves is returned when adding moves with different symbols or levels.
	ErrIncompatibleMoves = errors.New("gocube: incompatible moves")

	// ErrUnsupportedOperandType is returned when a move is scaled by something other than an integer.
	ErrUnsupportedOperandType = errors.New("gocube: unsupported operand type")
)
