package geom

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func assertVectorNear(t *testing.T, want, got Vector) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "x of %v", got)
	assert.InDelta(t, want.Y, got.Y, tol, "y of %v", got)
}

func TestVectorArithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(-1, 2)

	assert.Equal(t, V(2, 6), a.Add(b))
	assert.Equal(t, V(4, 2), a.Sub(b))
	assert.Equal(t, V(6, 8), a.Scale(2))
	assert.Equal(t, V(-3, -4), a.Neg())

	// operands are untouched
	assert.Equal(t, V(3, 4), a)
	assert.Equal(t, V(-1, 2), b)
}

func TestVectorDiv(t *testing.T) {
	got, err := V(3, 4).Div(2)
	require.NoError(t, err)
	assert.Equal(t, V(1.5, 2), got)

	_, err = V(3, 4).Div(0)
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestVectorLength(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		want float64
	}{
		{"3-4-5", V(3, 4), 5},
		{"zero", V(0, 0), 0},
		{"negative", V(-6, -8), 10},
		{"unit", V(0, 1), 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.v.Length())
			assert.Equal(t, tc.want, tc.v.Abs())
		})
	}
}

func TestVectorIsZero(t *testing.T) {
	assert.True(t, V(0, 0).IsZero())
	assert.True(t, Vector{}.IsZero())
	assert.False(t, V(0, 1e-300).IsZero())
	assert.False(t, V(-1, 0).IsZero())
}

func TestVectorNormalized(t *testing.T) {
	assert.Equal(t, V(0, 0), V(0, 0).Normalized())

	for _, v := range []Vector{V(3, 4), V(-2, 7), V(1e-6, 0), V(1e6, -1e6), V(0, -0.5)} {
		n := v.Normalized()
		assert.InDelta(t, 1.0, n.Length(), tol, "normalized %v", v)

		va, err := v.Angle()
		require.NoError(t, err)
		na, err := n.Angle()
		require.NoError(t, err)
		assert.InDelta(t, va, na, tol, "direction of %v", v)
	}
}

func TestVectorAngle(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		want float64
	}{
		{"east", V(1, 0), 0},
		{"north", V(0, 1), math.Pi / 2},
		{"west", V(-1, 0), math.Pi},
		{"south", V(0, -1), 3 * math.Pi / 2},
		{"south-east", V(1, -1), 7 * math.Pi / 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.v.Angle()
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, tol)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.Less(t, got, TwoPi)
		})
	}
}

func TestVectorAngleOfZero(t *testing.T) {
	_, err := V(0, 0).Angle()
	assert.ErrorIs(t, err, ErrNoAngle)

	_, err = V(1, 0).SmallerAngleBetween(V(0, 0))
	assert.ErrorIs(t, err, ErrNoAngle)

	_, err = V(0, 0).DirectedAngleBetween(V(1, 0))
	assert.ErrorIs(t, err, ErrNoAngle)
}

func TestFromAngle(t *testing.T) {
	assertVectorNear(t, V(1, 0), FromAngle(0))
	assertVectorNear(t, V(0, 1), FromAngle(math.Pi/2))
	assertVectorNear(t, V(0, -1), FromAngle(-math.Pi/2))
	assertVectorNear(t, V(-1, 0), FromAngle(5*math.Pi))
}

func TestFromAngleRoundTrip(t *testing.T) {
	for _, v := range []Vector{V(3, 4), V(-2, 7), V(-5, -5), V(0.25, -8), V(100, 0)} {
		a, err := v.Angle()
		require.NoError(t, err)
		assertVectorNear(t, v, FromAngle(a).Scale(v.Length()))
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{TwoPi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{-7 * math.Pi, math.Pi},
	}

	for _, tc := range tests {
		got := NormalizeAngle(tc.in)
		assert.InDelta(t, tc.want, got, tol, "NormalizeAngle(%v)", tc.in)
		assert.Less(t, got, TwoPi)
		assert.GreaterOrEqual(t, got, 0.0)
	}

	assert.Less(t, NormalizeAngle(-1e-18), TwoPi)
}

func TestVectorRotated(t *testing.T) {
	assertVectorNear(t, V(0, 1), V(1, 0).Rotated(math.Pi/2))
	assertVectorNear(t, V(-2, 0), V(0, 2).Rotated(math.Pi/2))
	assertVectorNear(t, V(3, 4), V(3, 4).Rotated(TwoPi))
	assert.Equal(t, V(0, 0), V(0, 0).Rotated(1.234))
}

func TestVectorRotatedRoundTrip(t *testing.T) {
	angles := []float64{0, 0.1, math.Pi / 3, math.Pi, -2.5, 17}
	for _, v := range []Vector{V(3, 4), V(-2, 7), V(0, -1), V(1e3, 1e-3)} {
		for _, a := range angles {
			assertVectorNear(t, v, v.Rotated(a).Rotated(-a))
		}
	}
}

func TestSmallerAngleBetween(t *testing.T) {
	// opposite directions fold to zero
	got, err := V(1, 0).SmallerAngleBetween(V(-1, 0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	got, err = V(1, 0).SmallerAngleBetween(V(0, 1))
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, got, tol)

	// 3π/2 apart folds to π/2
	got, err = V(1, 0).SmallerAngleBetween(V(0, -1))
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, got, tol)
}

func TestDirectedAngleBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector
		want float64
	}{
		{"quarter turn", V(1, 0), V(0, 1), math.Pi / 2},
		{"quarter turn reversed", V(0, 1), V(1, 0), math.Pi / 2},
		{"three quarters", V(1, 0), V(0, -1), -math.Pi / 2},
		{"three quarters reversed", V(0, -1), V(1, 0), -math.Pi / 2},
		{"half turn", V(1, 0), V(-1, 0), math.Pi},
		{"same direction", V(2, 2), V(5, 5), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.a.DirectedAngleBetween(tc.b)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, tol)
		})
	}
}

func TestDistanceTo(t *testing.T) {
	assert.Equal(t, 5.0, V(1, 1).DistanceTo(V(4, 5)))
	assert.Equal(t, 5.0, V(4, 5).DistanceTo(V(1, 1)))
	assert.Equal(t, 0.0, V(-3, 2).DistanceTo(V(-3, 2)))
}

func TestVectorAll(t *testing.T) {
	v := V(1.5, -2)
	assert.Equal(t, []float64{1.5, -2}, slices.Collect(v.All()))
	// restartable
	assert.Equal(t, []float64{1.5, -2}, slices.Collect(v.All()))

	for c := range v.All() {
		assert.Equal(t, 1.5, c)
		break
	}
}

func TestVectorEqualIsExact(t *testing.T) {
	assert.True(t, V(1, 2).Equal(V(1, 2)))
	assert.False(t, V(1, 2).Equal(V(1, 2+1e-15)))
	assert.False(t, V(0.1+0.2, 0).Equal(V(0.3, 0)))
}

func TestVectorString(t *testing.T) {
	tests := []struct {
		v    Vector
		want string
	}{
		{V(1, 2), "Vector(1, 2)"},
		{V(-3, 0), "Vector(-3, 0)"},
		{V(1.5, 2), "Vector(1.5000, 2.0000)"},
		{V(math.Pi, -math.E), "Vector(3.1416, -2.7183)"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.v.String())
	}
}

func TestVectorFromValues(t *testing.T) {
	v, err := VectorFromValues(1, 2)
	require.NoError(t, err)
	assert.Equal(t, V(1, 2), v)

	_, err = VectorFromValues(1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = VectorFromValues(1, 2, 3)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = VectorFromValues(math.NaN(), 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = VectorFromValues(0, math.Inf(-1))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
