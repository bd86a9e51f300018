package gocube

import (
	"sync"

	"go.uber.org/zap"

	"github.com/SeamusWaldron/gocube_lattice/internal/cube"
	"github.com/SeamusWaldron/gocube_lattice/internal/notation"
)

// Tracker wraps a Cube and records the moves applied to it.
//
//	t := gocube.NewTracker(gocube.WithMerge(true))
//	t.OnSolved(func() { fmt.Println("solved") })
//	if err := t.ApplyNotation("R U R' U'"); err != nil {
//	    log.Fatal(err)
//	}
type Tracker struct {
	mu      sync.RWMutex
	cube    *Cube
	history []Move
	config  *config

	// Callbacks
	onMove   func(Move)
	onSolved func()
}

// NewTracker creates a new cube tracker starting from a solved state.
func NewTracker(opts ...Option) *Tracker {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Tracker{
		cube:   cube.New(),
		config: cfg,
	}
}

// OnMove sets a callback that fires for each applied move.
func (t *Tracker) OnMove(cb func(Move)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onMove = cb
}

// OnSolved sets a callback that fires when a move leaves the cube solved.
func (t *Tracker) OnSolved(cb func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onSolved = cb
}

// Apply applies moves in order. The whole sequence is validated first, so
// an error leaves the cube and history untouched.
func (t *Tracker) Apply(moves ...Move) error {
	t.mu.Lock()

	if err := t.cube.Clone().ApplyMoves(moves); err != nil {
		t.mu.Unlock()
		return err
	}

	applied := make([]Move, 0, len(moves))
	for _, m := range moves {
		if m.IsIdentity() {
			continue
		}
		// Already validated above.
		_ = t.cube.ApplyMove(m)
		t.record(m)
		applied = append(applied, m)
		t.config.logger.Debug("move applied", zap.String("move", m.Notation()))
	}
	solved := len(applied) > 0 && t.cube.IsSolved()
	onMove, onSolved := t.onMove, t.onSolved
	t.mu.Unlock()

	if onMove != nil {
		for _, m := range applied {
			onMove(m)
		}
	}
	if solved {
		t.config.logger.Info("cube solved")
		if onSolved != nil {
			onSolved()
		}
	}
	return nil
}

// ApplyNotation parses a space-separated sequence and applies it.
func (t *Tracker) ApplyNotation(s string) error {
	moves, err := notation.ParseSequence(s)
	if err != nil {
		return err
	}
	return t.Apply(moves...)
}

// record appends m to the history, merging it when configured.
func (t *Tracker) record(m Move) {
	if !t.config.moveHistory {
		return
	}
	n := len(t.history)
	if t.config.merge && n > 0 && t.history[n-1].SameLayer(m) {
		merged, _ := t.history[n-1].Add(m)
		if merged.IsIdentity() {
			t.config.logger.Debug("moves cancelled",
				zap.String("previous", t.history[n-1].Notation()),
				zap.String("move", m.Notation()))
			t.history = t.history[:n-1]
		} else {
			t.history[n-1] = merged
		}
		return
	}
	t.history = append(t.history, m)
}

// Undo reverts the last recorded move and returns it.
// It returns false when there is nothing to undo.
func (t *Tracker) Undo() (Move, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := len(t.history)
	if n == 0 {
		return Identity, false
	}
	last := t.history[n-1]
	// last was applied successfully before, so its inverse is valid.
	_ = t.cube.ApplyMove(last.Inverse())
	t.history = t.history[:n-1]
	t.config.logger.Debug("move undone", zap.String("move", last.Notation()))
	return last, true
}

// Reset resets the tracker to a solved cube and clears the history.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cube = cube.New()
	t.history = nil
}

// History returns the recorded moves since creation or the last reset.
func (t *Tracker) History() []Move {
	t.mu.RLock()
	defer t.mu.RUnlock()
	result := make([]Move, len(t.history))
	copy(result, t.history)
	return result
}

// Notation returns the history as a notation string.
func (t *Tracker) Notation() string {
	return notation.FormatSequence(t.History())
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cube.IsSolved()
}

// Cube returns a copy of the current cube state.
// Modifications to it won't affect the tracker.
func (t *Tracker) Cube() *Cube {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cube.Clone()
}

// CubeString returns a string representation of the cube.
func (t *Tracker) CubeString() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cube.String()
}
