// Package gocube models a 3x3x3 Rubik's cube as a facelet lattice and
// provides standard move notation with a small move algebra.
//
// # Features
//
//   - Cube state as a 3x3x3x6 facelet tensor with per-face views
//   - Layer twists about any axis, including slices and wide turns
//   - Move parsing and canonical formatting (R, R', R2, r, 3Rw2, M, x')
//   - Move algebra: add, scale, inverse with mod-4 signs
//   - A tracker with move history, merging and undo
//
// # Quick Start
//
//	cube := gocube.NewCube()
//
//	// Apply moves from notation
//	if err := cube.ApplyNotation("R U R' U'"); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Solved:", cube.IsSolved())
//	fmt.Println(cube)
//
// # Move Algebra
//
// Moves are immutable values. Equal moves compare with == and can be map keys:
//
//	m, _ := gocube.ParseMove("R")
//	m.Scale(3) == m.Inverse()      // true, both R'
//	sum, _ := m.Add(gocube.RPrime) // gocube.Identity: the moves cancel
//	sum, _ = m.Add(m)              // R2
//
// # Tracking
//
//	t := gocube.NewTracker(gocube.WithMerge(true))
//	t.OnSolved(func() { fmt.Println("solved!") })
//	t.Apply(gocube.SexyMove...)
//	t.Undo()
package gocube
