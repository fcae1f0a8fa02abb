package geom

// Mat2A is a compact 2D affine transform: two rows of an implicit 3×2
// matrix laid out as
//
//	[a00 a01 dx]
//	[a10 a11 dy]
//
// The translation-only third row (0, 0, 1) is never stored. Mat2A has
// no composition helpers of its own; composite 2D transforms are
// built on a host transform object and adapted in through the interop
// package.
type Mat2A [6]float64

// Ident2A returns the 2D affine identity.
func Ident2A() Mat2A {
	return Mat2A{
		1, 0, 0,
		0, 1, 0,
	}
}

// TransformPoint returns p mapped through m:
// (a00·x + a01·y + dx, a10·x + a11·y + dy).
func (m *Mat2A) TransformPoint(p Vec2) Vec2 {
	x, y := p[0], p[1]
	return Vec2{
		m[0]*x + m[1]*y + m[2],
		m[3]*x + m[4]*y + m[5],
	}
}
