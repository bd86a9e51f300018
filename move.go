package gocube

import (
	"github.com/SeamusWaldron/gocube_lattice/internal/notation"
	"github.com/SeamusWaldron/gocube_lattice/pkg/types"
)

// Move is an immutable (level, symbol, sign) move value.
type Move = types.Move

// Symbol is the letter of a move.
type Symbol = types.Symbol

// Sign is the rotation amount of a move.
type Sign = types.Sign

const (
	CW     = types.Clockwise        // Clockwise (90 degrees)
	Double = types.HalfTurn         // Half turn (180 degrees)
	CCW    = types.CounterClockwise // Counter-clockwise (90 degrees)
)

// Identity is returned by Add and Scale when moves cancel out.
var Identity = types.Identity

// NewMove validates and normalizes a raw (level, symbol, sign) triple.
func NewMove(level int, symbol Symbol, sign Sign) (Move, error) {
	return types.NewMove(level, symbol, sign)
}

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, Ri, Rw, r, 3Rw2, M', x2
func ParseMove(s string) (Move, error) {
	return notation.ParseNotation(s)
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
func ParseMoves(s string) ([]Move, error) {
	return notation.ParseSequence(s)
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	return notation.FormatSequence(moves)
}

// SimplifyMoves merges adjacent moves on the same layer and drops cancellations.
func SimplifyMoves(moves []Move) []Move {
	return notation.Simplify(moves)
}

// InvertMoves returns the sequence that undoes moves.
func InvertMoves(moves []Move) []Move {
	return notation.Invert(moves)
}

// DescribeMove returns a plain-language description such as "right clockwise".
func DescribeMove(m Move) string {
	return notation.Describe(m)
}
