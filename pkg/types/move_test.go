package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoveNormalizes(t *testing.T) {
	cases := []struct {
		name   string
		level  int
		symbol Symbol
		sign   Sign
		want   string
		level2 int
		sym2   Symbol
	}{
		{"Face", 1, SymbolR, Clockwise, "R", 1, SymbolR},
		{"WideDefault", 2, SymbolRw, Clockwise, "r", 2, SymbolRw},
		{"WideLevelOnePromoted", 1, SymbolLw, CounterClockwise, "L'", 1, SymbolL},
		{"WideLevelThree", 3, SymbolRw, HalfTurn, "3r2", 3, SymbolRw},
		{"SliceForcedLevel", 5, SymbolM, CounterClockwise, "M'", 1, SymbolM},
		{"RotationForcedLevel", 2, SymbolX, HalfTurn, "x2", 1, SymbolX},
		{"MultiLayerFace", 2, SymbolU, Clockwise, "2U", 2, SymbolU},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := NewMove(tc.level, tc.symbol, tc.sign)
			require.NoError(t, err)
			assert.Equal(t, tc.want, m.Notation())
			assert.Equal(t, tc.level2, m.Level())
			assert.Equal(t, tc.sym2, m.Symbol())
			assert.Equal(t, tc.sign, m.Sign())
		})
	}
}

func TestNewMoveRejectsInvalidTriples(t *testing.T) {
	cases := []struct {
		name   string
		level  int
		symbol Symbol
		sign   Sign
	}{
		{"ZeroLevel", 0, SymbolR, Clockwise},
		{"NegativeLevel", -2, SymbolR, Clockwise},
		{"UnknownSymbol", 1, Symbol('Q'), Clockwise},
		{"ZeroSign", 1, SymbolR, NoTurn},
		{"SignFour", 1, SymbolR, Sign(4)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewMove(tc.level, tc.symbol, tc.sign)
			if !errors.Is(err, ErrInvalidMoveConstruction) {
				t.Errorf("NewMove(%d, %q, %d) error = %v; want %v", tc.level, rune(tc.symbol), tc.sign, err, ErrInvalidMoveConstruction)
			}
		})
	}
}

func TestMustMovePanics(t *testing.T) {
	assert.Panics(t, func() { MustMove(0, SymbolR, Clockwise) })
	assert.NotPanics(t, func() { MustMove(1, SymbolR, Clockwise) })
}

func TestEqualityAndHash(t *testing.T) {
	a := MustMove(2, SymbolLw, CounterClockwise)
	b := MustMove(2, SymbolLw, CounterClockwise)
	c := MustMove(1, SymbolLw, CounterClockwise)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equal(c))
	assert.NotEqual(t, a.Hash(), c.Hash())

	counts := map[Move]int{a: 4}
	assert.Equal(t, 4, counts[b])
}

func TestAlgebraLaws(t *testing.T) {
	r := MustMove(1, SymbolR, Clockwise)
	rPrime := MustMove(1, SymbolR, CounterClockwise)
	r2 := MustMove(1, SymbolR, HalfTurn)

	assert.Equal(t, rPrime, r.Scale(3))
	assert.Equal(t, rPrime, r.Inverse())
	assert.Equal(t, rPrime, r.Scale(-1))
	assert.Equal(t, r2, r2.Inverse())

	sum, err := r.Add(rPrime)
	require.NoError(t, err)
	assert.True(t, sum.IsIdentity())

	sum, err = r.Add(r)
	require.NoError(t, err)
	assert.Equal(t, r2, sum)

	sum, err = r2.Add(rPrime)
	require.NoError(t, err)
	assert.Equal(t, r, sum)

	assert.True(t, r.Scale(4).IsIdentity())
	assert.True(t, r2.Scale(2).IsIdentity())
	assert.Equal(t, r, r.Scale(5))
	assert.Equal(t, r2, rPrime.Scale(-2))
}

func TestAddIncompatible(t *testing.T) {
	r := MustMove(1, SymbolR, Clockwise)
	l := MustMove(1, SymbolL, Clockwise)
	wide := MustMove(2, SymbolRw, Clockwise)
	deep := MustMove(2, SymbolR, Clockwise)

	for _, other := range []Move{l, wide, deep} {
		_, err := r.Add(other)
		assert.ErrorIs(t, err, ErrIncompatibleMoves, "R + %s", other)
	}
}

func TestIdentityIsNeutral(t *testing.T) {
	r := MustMove(1, SymbolR, Clockwise)

	sum, err := Identity.Add(r)
	require.NoError(t, err)
	assert.Equal(t, r, sum)

	sum, err = r.Add(Identity)
	require.NoError(t, err)
	assert.Equal(t, r, sum)

	assert.True(t, Identity.Inverse().IsIdentity())
	assert.True(t, Identity.Scale(3).IsIdentity())
	assert.Equal(t, "", Identity.Notation())
}

func TestSymbolCase(t *testing.T) {
	assert.Equal(t, SymbolR, SymbolRw.Upper())
	assert.Equal(t, SymbolRw, SymbolR.Lower())
	assert.Equal(t, SymbolM, SymbolM.Upper())
	assert.Equal(t, SymbolX, SymbolX.Lower())
	assert.False(t, Symbol('w').Valid())
}
