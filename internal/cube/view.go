package cube

// Grid is a 3x3 block of facelets, rows top to bottom, columns left to right.
type Grid [Size][Size]Color

// viewOp is one step of a face orientation transform.
type viewOp func(Grid) Grid

// transpose swaps rows and columns.
func transpose(m Grid) Grid {
	var r Grid
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			r[i][j] = m[j][i]
		}
	}
	return r
}

// flipRows reverses the row order (upside down).
func flipRows(m Grid) Grid {
	var r Grid
	for i := 0; i < Size; i++ {
		r[i] = m[Size-1-i]
	}
	return r
}

// flipCols reverses the column order (mirror left to right).
func flipCols(m Grid) Grid {
	var r Grid
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			r[i][j] = m[i][Size-1-j]
		}
	}
	return r
}

// rotate returns a viewOp turning the grid k quarter turns counter-clockwise,
// where one quarter turn maps r[i][j] = m[j][2-i].
func rotate(k int) viewOp {
	return func(m Grid) Grid {
		for n := ((k % 4) + 4) % 4; n > 0; n-- {
			var r Grid
			for i := 0; i < Size; i++ {
				for j := 0; j < Size; j++ {
					r[i][j] = m[j][Size-1-i]
				}
			}
			m = r
		}
		return m
	}
}

// faceView describes how to read one face: which lattice slice holds it and
// how to reorient that slice so it reads as if looking straight at the face.
type faceView struct {
	// slice returns the colour at raw slice coordinates (a, b).
	slice func(c *Cube, a, b int) Color
	ops   []viewOp
}

// faceViews are fixed geometric constants. Each raw slice is indexed by the
// two lattice axes that span the face, in x, y, z order.
var faceViews = [NumFaces]faceView{
	U: {
		slice: func(c *Cube, x, z int) Color { return c.At(x, Size-1, z, U) },
		ops:   []viewOp{rotate(1), flipRows},
	},
	L: {
		slice: func(c *Cube, y, z int) Color { return c.At(0, y, z, L) },
		ops:   []viewOp{transpose, rotate(1)},
	},
	F: {
		slice: func(c *Cube, x, y int) Color { return c.At(x, y, Size-1, F) },
		ops:   []viewOp{rotate(1)},
	},
	R: {
		slice: func(c *Cube, y, z int) Color { return c.At(Size-1, y, z, R) },
		ops:   []viewOp{rotate(2)},
	},
	B: {
		slice: func(c *Cube, x, y int) Color { return c.At(x, y, 0, B) },
		ops:   []viewOp{rotate(1), flipCols},
	},
	D: {
		slice: func(c *Cube, x, z int) Color { return c.At(x, 0, z, D) },
		ops:   []viewOp{rotate(1)},
	},
}

// rawFace copies the lattice slice of a face before reorientation.
func (c *Cube) rawFace(f Face) Grid {
	var m Grid
	v := faceViews[f]
	for a := 0; a < Size; a++ {
		for b := 0; b < Size; b++ {
			m[a][b] = v.slice(c, a, b)
		}
	}
	return m
}

// Face returns the visible facelets of a face as seen when looking at it:
// U with B at the top, D with F at the top, side faces with U at the top.
func (c *Cube) Face(f Face) Grid {
	m := c.rawFace(f)
	for _, op := range faceViews[f].ops {
		m = op(m)
	}
	return m
}
