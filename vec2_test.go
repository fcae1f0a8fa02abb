package geom_test

import (
	"math"
	"testing"

	"deedles.dev/geom"
	"github.com/stretchr/testify/require"
)

func TestVec2Arithmetic(t *testing.T) {
	u := geom.V2(1, 2)
	v := geom.V2(3, -4)

	require.Equal(t, geom.V2(4, -2), u.Add(v))
	require.Equal(t, geom.V2(-2, 6), u.Sub(v))
	require.Equal(t, geom.V2(2, -6), u.Span(v))
	require.Equal(t, geom.V2(2, 4), u.Scale(2))
	require.Equal(t, geom.V2(0.5, 1), u.Div(2))
	require.Equal(t, geom.V2(7, -6), u.AddScaled(v, 2))
	require.Equal(t, geom.V2(2, -1), u.Mid(v))
	require.Equal(t, geom.V2(1, -4), u.Min(v))
	require.Equal(t, geom.V2(3, 2), u.Max(v))
}

func TestVec2InPlace(t *testing.T) {
	v := geom.V2(1, 2)
	v.SetAdd(geom.V2(3, 4))
	require.Equal(t, geom.V2(4, 6), v)
	v.SetSub(geom.V2(1, 1))
	require.Equal(t, geom.V2(3, 5), v)
	v.SetScale(2)
	require.Equal(t, geom.V2(6, 10), v)
	v.SetDiv(2)
	require.Equal(t, geom.V2(3, 5), v)
	v.SetAddScaled(geom.V2(1, 0), 4)
	require.Equal(t, geom.V2(7, 5), v)
	v.SetMin(geom.V2(0, 10))
	require.Equal(t, geom.V2(0, 5), v)
	v.SetMax(geom.V2(2, 2))
	require.Equal(t, geom.V2(2, 5), v)

	// Passing the receiver as its own operand is legal.
	v = geom.V2(1, 2)
	v.SetAddScaled(v, 1)
	require.Equal(t, geom.V2(2, 4), v)
}

func TestVec2Lerp(t *testing.T) {
	u := geom.V2(-1, 3)
	v := geom.V2(5, 7)

	require.Equal(t, u, u.Lerp(v, 0))
	require.Equal(t, v, u.Lerp(v, 1))
	require.Equal(t, u.Mid(v), u.Lerp(v, 0.5))

	w := u
	w.SetLerp(v, 1)
	require.Equal(t, v, w)
}

func TestVec2DotCross(t *testing.T) {
	u := geom.V2(2, 3)
	v := geom.V2(4, -1)

	require.Equal(t, 5.0, u.Dot(v))
	require.Equal(t, -14.0, u.Cross(v))
	require.Equal(t, 14.0, v.Cross(u))
	require.Equal(t, 0.0, u.Cross(u))

	// Perp rotates a quarter turn; crossing with the source vector
	// gives its squared length.
	require.Equal(t, geom.V2(-3, 2), u.Perp())
	require.Equal(t, 0.0, u.Dot(u.Perp()))
	require.Equal(t, u.LengthSquared(), u.Cross(u.Perp()))
}

func TestVec2Length(t *testing.T) {
	require.Equal(t, 5.0, geom.V2(3, 4).Length())
	require.Equal(t, 25.0, geom.V2(3, 4).LengthSquared())
	require.Equal(t, 25.0, geom.V2(1, 1).DistSquared(geom.V2(4, 5)))

	// Hypot must not overflow on large components.
	require.InEpsilon(t, 5e300, geom.V2(3e300, 4e300).Length(), 1e-15)

	for _, s := range []float64{2, -2, 0.25} {
		u := geom.V2(3, 4)
		require.InEpsilon(t, math.Abs(s)*u.Length(), u.Scale(s).Length(), 1e-15)
	}
}

func TestVec2WithLength(t *testing.T) {
	require.Equal(t, geom.V2(6, 8), geom.V2(3, 4).WithLength(10))
	require.Equal(t, geom.V2(0, -1), geom.V2(0, -5).WithLength(1))

	// Zero input is unguarded and yields NaN.
	w := geom.V2(0, 0).WithLength(1)
	require.True(t, math.IsNaN(w.X()))
	require.True(t, math.IsNaN(w.Y()))
}

func TestVec2ClampLength(t *testing.T) {
	u := geom.V2(3, 4)
	require.Equal(t, u, u.ClampLength(5))
	require.Equal(t, u, u.ClampLength(6))
	require.Equal(t, geom.V2(1.5, 2), u.ClampLength(2.5))
}

func TestVec2Floor(t *testing.T) {
	p := geom.V2(1.7, -0.3).Floor()
	require.Equal(t, 1, p.X())
	require.Equal(t, -1, p.Y())
	require.Equal(t, geom.V2(1, -1), p.Vec2())
}

func TestVec2IsZero(t *testing.T) {
	require.True(t, geom.V2(0, 0).IsZero())
	require.False(t, geom.V2(0, 1e-300).IsZero())
}

func TestIV2(t *testing.T) {
	p, err := geom.IV2(3, -7)
	require.NoError(t, err)
	require.Equal(t, 3, p.X())
	require.Equal(t, -7, p.Y())

	_, err = geom.IV2(3, 0.5)
	require.ErrorIs(t, err, geom.ErrNotWhole)
	_, err = geom.IV2(math.NaN(), 0)
	require.ErrorIs(t, err, geom.ErrNotWhole)
	_, err = geom.IV2(0, math.Inf(1))
	require.ErrorIs(t, err, geom.ErrNotWhole)
}
