package gocube

import "github.com/SeamusWaldron/gocube_lattice/internal/notation"

// Predefined moves for convenience.
//
// Example:
//
//	cube.ApplyMoves([]gocube.Move{gocube.R, gocube.U, gocube.RPrime, gocube.UPrime})
var (
	// Right face moves
	R      = notation.MustParse("R")  // Right clockwise
	RPrime = notation.MustParse("R'") // Right counter-clockwise
	R2     = notation.MustParse("R2") // Right 180

	// Left face moves
	L      = notation.MustParse("L")
	LPrime = notation.MustParse("L'")
	L2     = notation.MustParse("L2")

	// Up face moves
	U      = notation.MustParse("U")
	UPrime = notation.MustParse("U'")
	U2     = notation.MustParse("U2")

	// Down face moves
	D      = notation.MustParse("D")
	DPrime = notation.MustParse("D'")
	D2     = notation.MustParse("D2")

	// Front face moves
	F      = notation.MustParse("F")
	FPrime = notation.MustParse("F'")
	F2     = notation.MustParse("F2")

	// Back face moves
	B      = notation.MustParse("B")
	BPrime = notation.MustParse("B'")
	B2     = notation.MustParse("B2")

	// Slice moves
	M = notation.MustParse("M")
	E = notation.MustParse("E")
	S = notation.MustParse("S")

	// Whole cube rotations
	X = notation.MustParse("x")
	Y = notation.MustParse("y")
	Z = notation.MustParse("z")
)

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = []Move{R, U, RPrime, UPrime}

// Inverse sexy move: U R U' R'
var InverseSexyMove = []Move{U, R, UPrime, RPrime}

// T-perm algorithm
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}
