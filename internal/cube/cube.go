// Package cube provides a 3x3x3 cube model stored as a facelet lattice.
//
// The state is a 3x3x3x6 tensor: the first three coordinates are a lattice
// position (0 = negative layer, 1 = slice, 2 = positive layer along X, Y, Z)
// and the fourth is a face slot. A slot only carries a colour when that face
// of the cubie points outward; every other slot holds Blank.
package cube

import (
	"fmt"
	"strings"
)

// Face identifies one of the six faces. The order is fixed and is also the
// order of FaceColours.
type Face int

const (
	U Face = 0 // Up
	L Face = 1 // Left
	F Face = 2 // Front
	R Face = 3 // Right
	B Face = 4 // Back
	D Face = 5 // Down
)

// NumFaces is the number of face slots per cubie.
const NumFaces = 6

// Faces lists every face in canonical order.
var Faces = [NumFaces]Face{U, L, F, R, B, D}

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case L:
		return "L"
	case F:
		return "F"
	case R:
		return "R"
	case B:
		return "B"
	case D:
		return "D"
	default:
		return "?"
	}
}

// Color is a facelet colour. In the solved state the colour of a facelet is
// the identifier of the face it sits on.
type Color int8

// Blank marks a face slot that is not visible.
const Blank Color = -1

// ColorOf returns the solved colour of a face.
func ColorOf(f Face) Color {
	return Color(f)
}

// Face returns the face this colour belongs to when solved.
func (c Color) Face() Face {
	return Face(c)
}

// String returns the letter of the default colour scheme:
// white up, orange left, green front, red right, blue back, yellow down.
func (c Color) String() string {
	switch c {
	case Color(U):
		return "W"
	case Color(L):
		return "O"
	case Color(F):
		return "G"
	case Color(R):
		return "R"
	case Color(B):
		return "B"
	case Color(D):
		return "Y"
	case Blank:
		return "."
	default:
		return "?"
	}
}

// Size is the edge length of the lattice.
const Size = 3

// cells is the number of entries in the tensor.
const cells = Size * Size * Size * NumFaces

// index maps lattice coordinates and a face slot to a position in the arena.
func index(x, y, z int, f Face) int {
	return ((x*Size+y)*Size+z)*NumFaces + int(f)
}

// Cube is the facelet lattice of a 3x3x3 cube.
// The zero value is not usable; create cubes with New.
type Cube struct {
	cells [cells]Color
}

// outward returns the faces a lattice coordinate exposes along one axis.
// neg and pos are the faces at coordinate 0 and 2.
func outward(coord int, neg, pos Face) (Face, bool) {
	switch coord {
	case 0:
		return neg, true
	case Size - 1:
		return pos, true
	}
	return 0, false
}

// New creates a solved cube: white on top, green in front.
// Corners carry three facelets, edges two, centres one and the core none.
func New() *Cube {
	c := &Cube{}
	for i := range c.cells {
		c.cells[i] = Blank
	}
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			for z := 0; z < Size; z++ {
				if f, ok := outward(x, L, R); ok {
					c.cells[index(x, y, z, f)] = ColorOf(f)
				}
				if f, ok := outward(y, D, U); ok {
					c.cells[index(x, y, z, f)] = ColorOf(f)
				}
				if f, ok := outward(z, B, F); ok {
					c.cells[index(x, y, z, f)] = ColorOf(f)
				}
			}
		}
	}
	return c
}

// At returns the colour in face slot f of the cubie at (x, y, z).
func (c *Cube) At(x, y, z int, f Face) Color {
	return c.cells[index(x, y, z, f)]
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// Equal reports whether two cubes hold identical tensors.
func (c *Cube) Equal(other *Cube) bool {
	return c.cells == other.cells
}

// centres holds the lattice position of each face centre, in face order.
var centres = [NumFaces][3]int{
	U: {1, 2, 1},
	L: {0, 1, 1},
	F: {1, 1, 2},
	R: {2, 1, 1},
	B: {1, 1, 0},
	D: {1, 0, 1},
}

// FaceColours returns the centre colour of every face in order U, L, F, R, B, D.
// Face turns never move centres, so this fingerprints the cube orientation.
func (c *Cube) FaceColours() [NumFaces]Color {
	var out [NumFaces]Color
	for _, f := range Faces {
		p := centres[f]
		out[f] = c.At(p[0], p[1], p[2], f)
	}
	return out
}

// IsSolved returns true if every face shows a single colour.
// It does not care how the cube is oriented.
func (c *Cube) IsSolved() bool {
	for _, f := range Faces {
		grid := c.Face(f)
		want := grid[1][1]
		for _, row := range grid {
			for _, col := range row {
				if col != want {
					return false
				}
			}
		}
	}
	return true
}

// ColourCounts counts visible facelets per colour.
// Every reachable state shows nine of each.
func (c *Cube) ColourCounts() map[Color]int {
	counts := make(map[Color]int, NumFaces)
	for _, f := range Faces {
		for _, row := range c.Face(f) {
			for _, col := range row {
				counts[col]++
			}
		}
	}
	return counts
}

// String returns a text representation of the cube as an unfolded net.
func (c *Cube) String() string {
	var sb strings.Builder

	writeRow := func(f Face, row int) {
		grid := c.Face(f)
		for col := 0; col < Size; col++ {
			sb.WriteString(grid[row][col].String())
			sb.WriteByte(' ')
		}
	}

	// U face (indented)
	for row := 0; row < Size; row++ {
		sb.WriteString("      ")
		writeRow(U, row)
		sb.WriteByte('\n')
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < Size; row++ {
		for _, f := range []Face{L, F, R, B} {
			writeRow(f, row)
		}
		sb.WriteByte('\n')
	}

	// D face (indented)
	for row := 0; row < Size; row++ {
		sb.WriteString("      ")
		writeRow(D, row)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Debug returns a simple debug string.
func (c *Cube) Debug() string {
	return fmt.Sprintf("Solved: %v Centres: %v", c.IsSolved(), c.FaceColours())
}
