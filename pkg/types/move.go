// Package types contains the move value type shared by the gocube_lattice packages.
package types

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Symbol is the letter of a move in standard notation.
type Symbol byte

const (
	SymbolU Symbol = 'U' // Up
	SymbolL Symbol = 'L' // Left
	SymbolF Symbol = 'F' // Front
	SymbolR Symbol = 'R' // Right
	SymbolB Symbol = 'B' // Back
	SymbolD Symbol = 'D' // Down

	// Wide moves
	SymbolUw Symbol = 'u'
	SymbolLw Symbol = 'l'
	SymbolFw Symbol = 'f'
	SymbolRw Symbol = 'r'
	SymbolBw Symbol = 'b'
	SymbolDw Symbol = 'd'

	// Slice moves
	SymbolM Symbol = 'M' // Middle, follows L
	SymbolS Symbol = 'S' // Standing, follows F
	SymbolE Symbol = 'E' // Equator, follows D

	// Whole cube rotations
	SymbolX Symbol = 'x'
	SymbolY Symbol = 'y'
	SymbolZ Symbol = 'z'
)

func (s Symbol) String() string {
	return string(rune(s))
}

// IsFace reports whether s is one of U, L, F, R, B, D.
func (s Symbol) IsFace() bool {
	switch s {
	case SymbolU, SymbolL, SymbolF, SymbolR, SymbolB, SymbolD:
		return true
	}
	return false
}

// IsWide reports whether s is one of u, l, f, r, b, d.
func (s Symbol) IsWide() bool {
	switch s {
	case SymbolUw, SymbolLw, SymbolFw, SymbolRw, SymbolBw, SymbolDw:
		return true
	}
	return false
}

// IsSlice reports whether s is one of M, S, E.
func (s Symbol) IsSlice() bool {
	return s == SymbolM || s == SymbolS || s == SymbolE
}

// IsRotation reports whether s is one of x, y, z.
func (s Symbol) IsRotation() bool {
	return s == SymbolX || s == SymbolY || s == SymbolZ
}

// Valid reports whether s belongs to the move alphabet.
func (s Symbol) Valid() bool {
	return s.IsFace() || s.IsWide() || s.IsSlice() || s.IsRotation()
}

// Upper returns the face symbol for a wide symbol, and s otherwise.
func (s Symbol) Upper() Symbol {
	if s.IsWide() {
		return s - 'a' + 'A'
	}
	return s
}

// Lower returns the wide symbol for a face symbol, and s otherwise.
func (s Symbol) Lower() Symbol {
	if s.IsFace() {
		return s - 'A' + 'a'
	}
	return s
}

// Sign is the rotation amount of a move as an element of Z/4.
type Sign int

const (
	NoTurn           Sign = 0 // Identity, never carried by a valid Move
	Clockwise        Sign = 1 // Clockwise quarter turn
	HalfTurn         Sign = 2 // 180 degree turn
	CounterClockwise Sign = 3 // Counter-clockwise quarter turn
)

// Suffix returns the canonical notation suffix for the sign.
func (s Sign) Suffix() string {
	switch s {
	case HalfTurn:
		return "2"
	case CounterClockwise:
		return "'"
	default:
		return ""
	}
}

// mod4 reduces n to its non-negative residue modulo 4.
func mod4(n int) Sign {
	return Sign(((n % 4) + 4) % 4)
}

// Move is an immutable (level, symbol, sign) triple.
//
// Level is the number of layers turned from the named face inward. Values built
// with NewMove are normalized, so two moves describing the same turn compare
// equal with == and can be used as map keys.
//
// The zero value is Identity, the marker for "no turn" returned when
// composition or multiplication cancels out.
type Move struct {
	level  int
	symbol Symbol
	sign   Sign
}

// Identity is the no-op marker. It is not a valid move.
var Identity = Move{}

// NewMove validates and normalizes a (level, symbol, sign) triple.
func NewMove(level int, symbol Symbol, sign Sign) (Move, error) {
	if level <= 0 {
		return Identity, fmt.Errorf("%w: level %d must be positive", ErrInvalidMoveConstruction, level)
	}
	if !symbol.Valid() {
		return Identity, fmt.Errorf("%w: unknown symbol %q", ErrInvalidMoveConstruction, rune(symbol))
	}
	if sign < Clockwise || sign > CounterClockwise {
		return Identity, fmt.Errorf("%w: sign %d not in 1..3", ErrInvalidMoveConstruction, sign)
	}
	return normalize(level, symbol, sign), nil
}

// MustMove is like NewMove but panics on invalid input.
// Intended for package-level move tables.
func MustMove(level int, symbol Symbol, sign Sign) Move {
	m, err := NewMove(level, symbol, sign)
	if err != nil {
		panic(err)
	}
	return m
}

func normalize(level int, symbol Symbol, sign Sign) Move {
	if symbol.IsWide() && level == 1 {
		symbol = symbol.Upper()
	}
	if symbol.IsSlice() || symbol.IsRotation() {
		level = 1
	}
	return Move{level: level, symbol: symbol, sign: sign}
}

// Level returns the number of layers affected.
func (m Move) Level() int { return m.level }

// Symbol returns the move letter.
func (m Move) Symbol() Symbol { return m.symbol }

// Sign returns the rotation amount.
func (m Move) Sign() Sign { return m.sign }

// IsIdentity reports whether m is the no-op marker.
func (m Move) IsIdentity() bool {
	return m.sign == NoTurn
}

// Notation returns the canonical notation string for this move.
// Examples: R, R', R2, r, 3r2, M', x
func (m Move) Notation() string {
	if m.IsIdentity() {
		return ""
	}
	prefix := ""
	if m.level != 1 && !(m.symbol.IsWide() && m.level == 2) {
		prefix = strconv.Itoa(m.level)
	}
	return prefix + m.symbol.String() + m.sign.Suffix()
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// GoString shows the raw triple.
func (m Move) GoString() string {
	return fmt.Sprintf("types.Move{%d, %q, %d}", m.level, rune(m.symbol), m.sign)
}

// Equal reports whether two moves describe the same turn.
func (m Move) Equal(other Move) bool {
	return m == other
}

// Hash returns a hash of the canonical notation. Equal moves hash equally.
func (m Move) Hash() uint64 {
	return xxhash.Sum64String(m.Notation())
}

// SameLayer reports whether m and other turn the same layers about the same axis
// in the same notation, so they can be added.
func (m Move) SameLayer(other Move) bool {
	return m.symbol == other.symbol && m.level == other.level
}

// Add composes two moves on the same layer. The result sign is the sum of the
// signs modulo 4; when it is zero the moves cancel and Identity is returned.
// Identity is neutral on either side.
func (m Move) Add(other Move) (Move, error) {
	if m.IsIdentity() {
		return other, nil
	}
	if other.IsIdentity() {
		return m, nil
	}
	if !m.SameLayer(other) {
		return Identity, fmt.Errorf("%w: %s + %s", ErrIncompatibleMoves, m, other)
	}
	return m.withSign(mod4(int(m.sign) + int(other.sign))), nil
}

// Scale multiplies the sign by n modulo 4. A zero result returns Identity.
func (m Move) Scale(n int) Move {
	if m.IsIdentity() {
		return Identity
	}
	return m.withSign(mod4(int(m.sign) * n))
}

// Inverse returns the move that undoes m.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	if m.IsIdentity() {
		return Identity
	}
	return m.withSign(4 - m.sign)
}

func (m Move) withSign(s Sign) Move {
	if s == NoTurn {
		return Identity
	}
	return Move{level: m.level, symbol: m.symbol, sign: s}
}
