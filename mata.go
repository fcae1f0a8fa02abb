package geom

import "math"

// MatA is a [Mat4] whose last row is invariantly (0, 0, 0, 1), that
// is an affine transform. The refinement is structural: no MatA
// mutator ever touches entries 12–15, so the invariant needs no
// runtime check, and (*MatA).Mat4 views the same storage as a general
// matrix.
//
// Mutators operate in place and return the receiver, so a composite
// transform is built by chaining:
//
//	a := geom.IdentA()
//	a.Translate(u).RotateZ(angle).ScaleX(s)
//
// Each chained operation is pre-applied: its effect happens to an
// incoming point before the effects already accumulated in the
// matrix.
type MatA Mat4

// IdentA returns the affine identity.
func IdentA() MatA {
	return MatA(Ident4())
}

// Mat4 returns a view of a as a general matrix. The result shares
// storage with a.
func (a *MatA) Mat4() *Mat4 {
	return (*Mat4)(a)
}

// TransformPoint returns p transformed by a. Because a is affine, w
// is always 1 and the homogeneous divide is skipped.
func (a *MatA) TransformPoint(p Vec3) Vec3 {
	x, y, z := p[0], p[1], p[2]
	return Vec3{
		a[0]*x + a[1]*y + a[2]*z + a[3],
		a[4]*x + a[5]*y + a[6]*z + a[7],
		a[8]*x + a[9]*y + a[10]*z + a[11],
	}
}

// Translate pre-translates by u, adding it to the translation column.
func (a *MatA) Translate(u Vec3) *MatA {
	a[3] += u[0]
	a[7] += u[1]
	a[11] += u[2]
	return a
}

// ScaleX scales along the current local X axis, multiplying the
// entire first row including its translation entry.
func (a *MatA) ScaleX(s float64) *MatA {
	a[0] *= s
	a[1] *= s
	a[2] *= s
	a[3] *= s
	return a
}

// ScaleY scales along the current local Y axis.
func (a *MatA) ScaleY(s float64) *MatA {
	a[4] *= s
	a[5] *= s
	a[6] *= s
	a[7] *= s
	return a
}

// ScaleZ scales along the current local Z axis.
func (a *MatA) ScaleZ(s float64) *MatA {
	a[8] *= s
	a[9] *= s
	a[10] *= s
	a[11] *= s
	return a
}

// Scale scales uniformly, multiplying all twelve affine entries.
func (a *MatA) Scale(s float64) *MatA {
	for i := range 12 {
		a[i] *= s
	}
	return a
}

// ScaleVec scales by three independent axis factors in one pass.
func (a *MatA) ScaleVec(u Vec3) *MatA {
	for i := range 4 {
		a[i] *= u[0]
		a[4+i] *= u[1]
		a[8+i] *= u[2]
	}
	return a
}

// rotate mixes the two rows starting at entries i and j with the 2×2
// rotation for angle. Both source entries of a column are read before
// either is written, so overlapping storage stays safe.
func (a *MatA) rotate(i, j int, angle float64) *MatA {
	s, c := math.Sincos(angle)
	for k := range 4 {
		p, q := a[i+k], a[j+k]
		a[i+k] = c*p - s*q
		a[j+k] = c*q + s*p
	}
	return a
}

// RotateX pre-rotates around the X axis by angle radians. The sign
// convention is right-handed and cyclic across all three axes:
// X→Y→Z.
func (a *MatA) RotateX(angle float64) *MatA {
	return a.rotate(4, 8, angle)
}

// RotateY pre-rotates around the Y axis by angle radians.
func (a *MatA) RotateY(angle float64) *MatA {
	return a.rotate(8, 0, angle)
}

// RotateZ pre-rotates around the Z axis by angle radians.
func (a *MatA) RotateZ(angle float64) *MatA {
	return a.rotate(0, 4, angle)
}
