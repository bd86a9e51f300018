// Package analysis computes statistics over recorded move sequences.
package analysis

import (
	"sort"

	"github.com/SeamusWaldron/gocube_lattice/internal/notation"
	"github.com/SeamusWaldron/gocube_lattice/pkg/types"
)

// Summary contains statistics for a move sequence.
type Summary struct {
	TotalMoves      int     `json:"total_moves"`
	SimplifiedMoves int     `json:"simplified_moves"`
	Efficiency      float64 `json:"efficiency"`

	// Rotations counts whole-cube rotations, which no metric charges for.
	Rotations int `json:"rotations"`
	// STM charges one per layer turn of any angle, slices included.
	STM int `json:"stm"`
	// QTM charges one per quarter turn; half turns cost two.
	QTM int `json:"qtm"`

	Profile *MovementProfile `json:"profile"`
}

// Summarize builds a Summary for moves. Identity markers are ignored.
func Summarize(moves []types.Move) *Summary {
	s := &Summary{Profile: AnalyzeMovementProfile(moves)}

	for _, m := range moves {
		if m.IsIdentity() {
			continue
		}
		s.TotalMoves++
		if m.Symbol().IsRotation() {
			s.Rotations++
			continue
		}
		s.STM++
		if m.Sign() == types.HalfTurn {
			s.QTM += 2
		} else {
			s.QTM++
		}
	}

	s.SimplifiedMoves = len(notation.Simplify(moves))
	if s.TotalMoves > 0 {
		s.Efficiency = float64(s.SimplifiedMoves) / float64(s.TotalMoves)
	}
	return s
}

// MovementProfile shows which move letters and directions are used most.
type MovementProfile struct {
	SymbolCounts   map[types.Symbol]int `json:"symbol_counts"`
	SignCounts     map[types.Sign]int   `json:"sign_counts"`
	MostUsedSymbol types.Symbol         `json:"most_used_symbol"`
	MostUsedSign   types.Sign           `json:"most_used_sign"`
	// Pairs counts consecutive symbol pairs, e.g. "RU".
	Pairs map[string]int `json:"pairs"`
}

// AnalyzeMovementProfile counts symbols, signs and consecutive symbol pairs.
func AnalyzeMovementProfile(moves []types.Move) *MovementProfile {
	profile := &MovementProfile{
		SymbolCounts: make(map[types.Symbol]int),
		SignCounts:   make(map[types.Sign]int),
		Pairs:        make(map[string]int),
	}

	var prev types.Move
	for _, m := range moves {
		if m.IsIdentity() {
			continue
		}
		profile.SymbolCounts[m.Symbol()]++
		profile.SignCounts[m.Sign()]++

		if !prev.IsIdentity() {
			profile.Pairs[prev.Symbol().String()+m.Symbol().String()]++
		}
		prev = m
	}

	// Ties go to the smallest key so the result is stable.
	profile.MostUsedSymbol = mostUsed(profile.SymbolCounts)
	profile.MostUsedSign = mostUsed(profile.SignCounts)

	return profile
}

func mostUsed[K types.Symbol | types.Sign](counts map[K]int) K {
	keys := make([]K, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var best K
	maxCount := 0
	for _, k := range keys {
		if counts[k] > maxCount {
			maxCount = counts[k]
			best = k
		}
	}
	return best
}
