package analysis

import (
	"slices"
	"sort"

	"github.com/SeamusWaldron/gocube_lattice/internal/notation"
	"github.com/SeamusWaldron/gocube_lattice/pkg/types"
)

// maxOccurrences caps the start positions kept per n-gram.
const maxOccurrences = 10

// NGram represents a repeated move sequence.
type NGram struct {
	N        int          `json:"n"`
	Sequence []types.Move `json:"-"`
	Notation string       `json:"notation"`
	Count    int          `json:"count"`
	// Starts holds the first few start indexes.
	Starts []int `json:"starts,omitempty"`
}

// NGramReport contains the results of n-gram mining.
type NGramReport struct {
	TopNGrams map[int][]NGram `json:"top_ngrams"` // Keyed by n
}

// RollingHash implements a Rabin-Karp rolling hash over move hashes.
// Arithmetic wraps modulo 2^64.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1) for removal
	window []uint64
	n      int
}

// NewRollingHash creates a new rolling hash for window size n.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{
		base:   1099511628211, // FNV prime
		n:      n,
		window: make([]uint64, 0, n),
	}

	// Precompute base^(n-1)
	rh.pow = 1
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}

	return rh
}

// Roll adds a token, dropping the oldest once the window is full.
func (rh *RollingHash) Roll(token uint64) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, token)
		rh.hash = rh.hash*rh.base + token
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-old*rh.pow)*rh.base + token

	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = token
}

// Hash returns the current hash value.
func (rh *RollingHash) Hash() uint64 {
	return rh.hash
}

// Ready returns true if the window is full.
func (rh *RollingHash) Ready() bool {
	return len(rh.window) == rh.n
}

// ngramEntry tracks n-gram occurrences during mining.
type ngramEntry struct {
	moves  []types.Move
	count  int
	first  int
	starts []int
}

// MineNGrams finds the top-K most frequent repeated n-grams for each n in
// [minN, maxN]. Identity markers are dropped first. A topK of zero or less
// yields an empty report.
func MineNGrams(moves []types.Move, minN, maxN, topK int) *NGramReport {
	report := &NGramReport{
		TopNGrams: make(map[int][]NGram),
	}
	if topK <= 0 {
		return report
	}

	seq := make([]types.Move, 0, len(moves))
	for _, m := range moves {
		if !m.IsIdentity() {
			seq = append(seq, m)
		}
	}
	if minN < 1 {
		minN = 1
	}

	for n := minN; n <= maxN && n <= len(seq); n++ {
		if ngrams := mineNGramsForN(seq, n, topK); len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}

	return report
}

// mineNGramsForN mines n-grams of a specific length.
func mineNGramsForN(moves []types.Move, n, topK int) []NGram {
	// Buckets hold every distinct window sharing a hash.
	buckets := make(map[uint64][]*ngramEntry)
	rh := NewRollingHash(n)

	for i, m := range moves {
		rh.Roll(m.Hash())
		if !rh.Ready() {
			continue
		}

		start := i - n + 1
		window := moves[start : i+1]
		hash := rh.Hash()

		var entry *ngramEntry
		for _, e := range buckets[hash] {
			if slices.Equal(e.moves, window) {
				entry = e
				break
			}
		}
		if entry == nil {
			entry = &ngramEntry{moves: window, first: start}
			buckets[hash] = append(buckets[hash], entry)
		}
		entry.count++
		if len(entry.starts) < maxOccurrences {
			entry.starts = append(entry.starts, start)
		}
	}

	entries := make([]*ngramEntry, 0, len(buckets))
	for _, bucket := range buckets {
		for _, entry := range bucket {
			// Only include n-grams that appear more than once
			if entry.count >= 2 {
				entries = append(entries, entry)
			}
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].first < entries[j].first
	})

	if len(entries) > topK {
		entries = entries[:topK]
	}

	result := make([]NGram, len(entries))
	for i, entry := range entries {
		result[i] = NGram{
			N:        n,
			Sequence: entry.moves,
			Notation: notation.FormatSequence(entry.moves),
			Count:    entry.count,
			Starts:   entry.starts,
		}
	}

	return result
}
