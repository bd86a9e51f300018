package gocube

import "github.com/SeamusWaldron/gocube_lattice/internal/cube"

// Cube is the facelet lattice of a 3x3x3 cube. See NewCube.
type Cube = cube.Cube

// Grid is the 3x3 view of one face.
type Grid = cube.Grid

// Color is a facelet colour; it equals the id of the face it belongs to when solved.
type Color = cube.Color

// CubeFace identifies a face of the cube model.
// This is distinct from Symbol which is used for move notation.
type CubeFace = cube.Face

const (
	CubeFaceU = cube.U // Up (White)
	CubeFaceL = cube.L // Left (Orange)
	CubeFaceF = cube.F // Front (Green)
	CubeFaceR = cube.R // Right (Red)
	CubeFaceB = cube.B // Back (Blue)
	CubeFaceD = cube.D // Down (Yellow)
)

// Axis is a lattice axis for Twist.
type Axis = cube.Axis

const (
	AxisX = cube.X
	AxisY = cube.Y
	AxisZ = cube.Z
)

// Layer selects the lattice layers a twist turns.
type Layer = cube.Layer

// SingleLayer selects one layer along an axis.
func SingleLayer(i int) Layer { return cube.SingleLayer(i) }

// Layers selects the layers lo through hi.
func Layers(lo, hi int) Layer { return cube.Layers(lo, hi) }

// AllLayers selects the whole cube.
var AllLayers = cube.AllLayers

// NewCube creates a solved cube with standard orientation:
// White on top, Green in front.
func NewCube() *Cube {
	return cube.New()
}
