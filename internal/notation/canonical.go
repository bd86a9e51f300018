// Package notation parses and formats standard cube move notation.
package notation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/SeamusWaldron/gocube_lattice/pkg/types"
)

// moveRE matches a single move: optional level, symbol with optional wide
// marker, optional suffix.
var moveRE = regexp.MustCompile(`^([1-9][0-9]*)?([ULFRBD]w?|[MSEulfrbdxyz])('|i|2'|2)?$`)

// ParseNotation parses a move such as R, R', R2, Rw, r, 3Rw2, M, x'.
//
// Normalization:
//   - a wide marker folds the symbol to lowercase
//   - lowercase symbols default to level 2, everything else to level 1
//   - suffix i means counter-clockwise and 2' means a half turn
//
// A level prefix too large for an int is grammatical, so it is reported as
// ErrInvalidMoveConstruction rather than ErrInvalidMoveSyntax.
func ParseNotation(s string) (types.Move, error) {
	s = strings.TrimSpace(s)
	groups := moveRE.FindStringSubmatch(s)
	if groups == nil {
		return types.Identity, fmt.Errorf("%w: %q", types.ErrInvalidMoveSyntax, s)
	}
	prefix, letters, suffix := groups[1], groups[2], groups[3]

	symbol := types.Symbol(letters[0])
	if strings.HasSuffix(letters, "w") {
		symbol = symbol.Lower()
	}

	level := 1
	if prefix != "" {
		n, err := strconv.Atoi(prefix)
		if err != nil {
			return types.Identity, fmt.Errorf("%w: level %q out of range", types.ErrInvalidMoveConstruction, prefix)
		}
		level = n
	} else if symbol.IsWide() {
		level = 2
	}

	sign := types.Clockwise
	switch suffix {
	case "'", "i":
		sign = types.CounterClockwise
	case "2", "2'":
		sign = types.HalfTurn
	}

	return types.NewMove(level, symbol, sign)
}

// MustParse is like ParseNotation but panics on invalid input.
func MustParse(s string) types.Move {
	m, err := ParseNotation(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Equivalent reports whether two notation strings describe the same move.
func Equivalent(a, b string) (bool, error) {
	ma, err := ParseNotation(a)
	if err != nil {
		return false, err
	}
	mb, err := ParseNotation(b)
	if err != nil {
		return false, err
	}
	return ma.Equal(mb), nil
}

// ParseSequence parses a whitespace-separated sequence of moves.
// Unlike a lenient reader it stops at the first invalid token.
func ParseSequence(s string) ([]types.Move, error) {
	parts := strings.Fields(s)
	moves := make([]types.Move, 0, len(parts))

	for i, part := range parts {
		move, err := ParseNotation(part)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatSequence formats a slice of moves as a space-separated string.
// Identity markers are skipped.
func FormatSequence(moves []types.Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, 0, len(moves))
	for _, m := range moves {
		if m.IsIdentity() {
			continue
		}
		parts = append(parts, m.Notation())
	}

	return strings.Join(parts, " ")
}

// Simplify merges adjacent moves on the same layer and drops cancellations.
// Cancellations cascade: R U U' R' simplifies to nothing.
func Simplify(moves []types.Move) []types.Move {
	out := make([]types.Move, 0, len(moves))
	for _, m := range moves {
		if m.IsIdentity() {
			continue
		}
		if n := len(out); n > 0 && out[n-1].SameLayer(m) {
			// Same layer, so Add cannot fail.
			merged, _ := out[n-1].Add(m)
			if merged.IsIdentity() {
				out = out[:n-1]
			} else {
				out[n-1] = merged
			}
			continue
		}
		out = append(out, m)
	}
	return out
}

// Invert returns the sequence that undoes moves.
func Invert(moves []types.Move) []types.Move {
	out := make([]types.Move, 0, len(moves))
	for i := len(moves) - 1; i >= 0; i-- {
		if moves[i].IsIdentity() {
			continue
		}
		out = append(out, moves[i].Inverse())
	}
	return out
}

// ParseScalar parses a move multiplier. Only integers are accepted.
func ParseScalar(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", types.ErrUnsupportedOperandType, s)
	}
	return n, nil
}
