package cube

import (
	"errors"
	"testing"

	"github.com/SeamusWaldron/gocube_lattice/internal/notation"
	"github.com/SeamusWaldron/gocube_lattice/pkg/types"
)

func applied(t *testing.T, seq string) *Cube {
	t.Helper()
	c := New()
	if err := c.ApplyNotation(seq); err != nil {
		t.Fatalf("ApplyNotation(%q): %v", seq, err)
	}
	return c
}

func TestRR_ReturnsToSolved_AllFaces(t *testing.T) {
	for _, face := range []string{"U", "D", "F", "B", "R", "L", "M", "E", "S", "x", "y", "z", "r", "3l"} {
		c := applied(t, face+" "+face+" "+face+" "+face)
		if !c.IsSolved() || !c.Equal(New()) {
			t.Errorf("%v x 4 should return to solved", face)
			t.Log(c.String())
		}
	}
}

func TestR2R2_ReturnsToSolved(t *testing.T) {
	c := applied(t, "R2 R2")
	if !c.IsSolved() {
		t.Error("R2 R2 should return to solved")
		t.Log(c.String())
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	c := New()
	for i := 0; i < 6; i++ {
		if err := c.ApplyNotation("R U R' U'"); err != nil {
			t.Fatal(err)
		}
		if i < 5 && c.IsSolved() {
			t.Errorf("cube solved after %d sexy moves", i+1)
		}
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestTPermTwiceIsIdentity(t *testing.T) {
	const tperm = "R U R' U' R' F R2 U' R' U' R U R' F'"
	c := applied(t, tperm)
	if c.IsSolved() {
		t.Error("T-perm should not leave the cube solved")
	}
	if err := c.ApplyNotation(tperm); err != nil {
		t.Fatal(err)
	}
	if !c.IsSolved() {
		t.Error("T-perm twice should return to solved")
		t.Log(c.String())
	}
}

func TestScrambleThenInverseIsSolved(t *testing.T) {
	moves, err := notation.ParseSequence(scramble)
	if err != nil {
		t.Fatal(err)
	}
	c := New()
	if err := c.ApplyMoves(moves); err != nil {
		t.Fatal(err)
	}
	if err := c.ApplyMoves(notation.Invert(moves)); err != nil {
		t.Fatal(err)
	}
	if !c.Equal(New()) {
		t.Error("scramble followed by its inverse should restore the solved tensor")
		t.Log(c.String())
	}
}

func TestCompositeMovesMatchDefinitions(t *testing.T) {
	cases := [][2]string{
		{"r", "R M'"},
		{"l", "L M"},
		{"u", "U E'"},
		{"d", "D E"},
		{"f", "F S"},
		{"b", "B S'"},
		{"x", "R M' L'"},
		{"y", "U E' D'"},
		{"z", "F S B'"},
		{"3r", "x"},
		{"3u'", "y'"},
		{"2U", "u"},
		{"M2", "M' M'"},
		{"x2", "R2 M2 L2"},
	}
	for _, tc := range cases {
		a := applied(t, tc[0])
		b := applied(t, tc[1])
		if !a.Equal(b) {
			t.Errorf("%q and %q give different cubes", tc[0], tc[1])
			t.Log("\n" + a.String() + "\n" + b.String())
		}
	}
}

func TestRotationsMoveCentres(t *testing.T) {
	cases := []struct {
		move string
		face Face
		want Face
	}{
		{"x", U, F},
		{"x", F, D},
		{"y", F, R},
		{"y", L, F},
		{"z", R, U},
		{"z", U, L},
		{"M", F, U},
		{"E", F, L},
		{"S", R, U},
	}
	for _, tc := range cases {
		c := applied(t, tc.move)
		if got := c.FaceColours()[tc.face]; got != ColorOf(tc.want) {
			t.Errorf("after %s centre of %v = %v, want %v", tc.move, tc.face, got, ColorOf(tc.want))
		}
		if !c.IsSolved() && (tc.move == "x" || tc.move == "y" || tc.move == "z") {
			t.Errorf("rotation %s should leave every face uniform", tc.move)
		}
	}
}

func TestApplyIdentityIsNoop(t *testing.T) {
	c := New()
	if err := c.ApplyMove(types.Identity); err != nil {
		t.Fatal(err)
	}
	if !c.Equal(New()) {
		t.Error("Identity should not change the cube")
	}
}

func TestApplyRejectsDeepMoves(t *testing.T) {
	c := New()
	err := c.ApplyMove(notation.MustParse("4r"))
	if !errors.Is(err, ErrLevelOutOfRange) {
		t.Errorf("ApplyMove(4r) error = %v; want %v", err, ErrLevelOutOfRange)
	}
}

func TestApplyValidatesBeforeMutating(t *testing.T) {
	cases := []struct {
		seq  string
		want error
	}{
		{"R U 4r", ErrLevelOutOfRange},
		{"R U Q", types.ErrInvalidMoveSyntax},
	}
	for _, tc := range cases {
		c := New()
		err := c.ApplyNotation(tc.seq)
		if !errors.Is(err, tc.want) {
			t.Errorf("ApplyNotation(%q) error = %v; want %v", tc.seq, err, tc.want)
		}
		if !c.Equal(New()) {
			t.Errorf("failed ApplyNotation(%q) mutated the cube", tc.seq)
		}
	}
}
