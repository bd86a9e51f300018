package cube

import "fmt"

// Axis is one of the three lattice axes.
type Axis int

const (
	X Axis = 0 // L to R
	Y Axis = 1 // D to U
	Z Axis = 2 // B to F
)

func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return "?"
	}
}

// Layer is an inclusive range of lattice indices along an axis.
type Layer struct {
	Lo, Hi int
}

// SingleLayer selects one layer.
func SingleLayer(i int) Layer {
	return Layer{Lo: i, Hi: i}
}

// Layers selects the layers lo through hi.
func Layers(lo, hi int) Layer {
	return Layer{Lo: lo, Hi: hi}
}

// AllLayers selects the whole cube.
var AllLayers = Layer{Lo: 0, Hi: Size - 1}

func (l Layer) valid() bool {
	return l.Lo >= 0 && l.Lo <= l.Hi && l.Hi < Size
}

func (l Layer) String() string {
	if l.Lo == l.Hi {
		return fmt.Sprintf("%d", l.Lo)
	}
	return fmt.Sprintf("%d-%d", l.Lo, l.Hi)
}

// relabelCycles lists, per axis, the faces a sticker visits during one
// positive quarter turn: the sticker in slot cycle[j] moves to cycle[j+1].
var relabelCycles = [3][4]Face{
	X: {F, U, B, D},
	Y: {F, L, B, R},
	Z: {U, R, D, L},
}

// cubie is the six face slots of one lattice position.
type cubie [NumFaces]Color

// slab is one layer perpendicular to an axis, indexed by the two remaining
// axes in x, y, z order.
type slab [Size][Size]cubie

func mod4(k int) int {
	return ((k % 4) + 4) % 4
}

// planeCoords maps slab coordinates back to the lattice.
func planeCoords(axis Axis, layer, a, b int) (x, y, z int) {
	switch axis {
	case X:
		return layer, a, b
	case Y:
		return a, layer, b
	default:
		return a, b, layer
	}
}

func (c *Cube) readSlab(axis Axis, layer int) slab {
	var s slab
	for a := 0; a < Size; a++ {
		for b := 0; b < Size; b++ {
			x, y, z := planeCoords(axis, layer, a, b)
			base := index(x, y, z, 0)
			copy(s[a][b][:], c.cells[base:base+NumFaces])
		}
	}
	return s
}

func (c *Cube) writeSlab(axis Axis, layer int, s slab) {
	for a := 0; a < Size; a++ {
		for b := 0; b < Size; b++ {
			x, y, z := planeCoords(axis, layer, a, b)
			base := index(x, y, z, 0)
			copy(c.cells[base:base+NumFaces], s[a][b][:])
		}
	}
}

// relabel moves every sticker of the slab k steps along the axis cycle.
func (s slab) relabel(axis Axis, k int) slab {
	cycle := relabelCycles[axis]
	for ; k > 0; k-- {
		for a := 0; a < Size; a++ {
			for b := 0; b < Size; b++ {
				old := s[a][b]
				for j := range cycle {
					s[a][b][cycle[(j+1)%4]] = old[cycle[j]]
				}
			}
		}
	}
	return s
}

// rotate turns the slab positions k quarter turns with r[i][j] = m[j][2-i].
func (s slab) rotate(k int) slab {
	for ; k > 0; k-- {
		var r slab
		for i := 0; i < Size; i++ {
			for j := 0; j < Size; j++ {
				r[i][j] = s[j][Size-1-i]
			}
		}
		s = r
	}
	return s
}

// Twist turns the selected layers k quarter turns about axis, in place.
//
// With layer 2 and k = 1 this is a clockwise quarter turn of R, U or F for
// axis X, Y or Z. k is taken modulo 4, so negative values turn the other way.
//
// Each layer is changed in two steps: stickers are relabelled to the faces
// the turn carries them to, then cubie positions rotate within the plane.
// The positional rotation runs opposite to k for X and Z: with the slab
// indexed in x, y, z order, Y is the only axis whose plane orientation
// matches the relabelling cycle.
func (c *Cube) Twist(axis Axis, layer Layer, k int) error {
	if axis < X || axis > Z {
		return fmt.Errorf("%w: axis %d", ErrInvalidTwist, axis)
	}
	if !layer.valid() {
		return fmt.Errorf("%w: layer %d-%d outside 0-%d", ErrInvalidTwist, layer.Lo, layer.Hi, Size-1)
	}

	k = mod4(k)
	if k == 0 {
		return nil
	}
	spatial := k
	if axis != Y {
		spatial = mod4(-k)
	}

	for i := layer.Lo; i <= layer.Hi; i++ {
		s := c.readSlab(axis, i)
		s = s.relabel(axis, k).rotate(spatial)
		c.writeSlab(axis, i, s)
	}
	return nil
}
