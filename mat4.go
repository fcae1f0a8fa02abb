package geom

import "math"

// Mat4 is a general 4×4 matrix in row-major order: m[4*r+c] is the
// element in row r, column c. Unlike [MatA] it may hold projective
// transforms whose last row is not (0, 0, 0, 1).
type Mat4 [16]float64

// Ident4 returns the 4×4 identity.
func Ident4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Perspective returns a perspective projection matrix. fovy is the
// vertical field of view in degrees; this is the only operation in
// the package that takes degrees, since field-of-view values are
// typically human-authored. width and height give the viewport aspect
// ratio, and near and far the clip distances along the view axis.
//
// The caller must ensure far > near and width, height, near > 0;
// violated preconditions are not checked and produce IEEE infinities
// or sign flips rather than errors.
func Perspective(fovy, width, height, near, far float64) Mat4 {
	c0 := near / math.Tan(Radians(fovy)/2)
	c1 := c0 * height / width
	depth := far - near
	return Mat4{
		c1, 0, 0, 0,
		0, c0, 0, 0,
		0, 0, -(near + far) / depth, -2 * near * far / depth,
		0, 0, -1, 0,
	}
}

// TransformPoint returns p transformed by m, including the
// homogeneous divide by w = m[12]·x + m[13]·y + m[14]·z + m[15]. Use
// this whenever m is not known to be affine; a w of zero yields
// infinities per IEEE semantics. For affine matrices
// [MatA.TransformPoint] skips the divide.
func (m *Mat4) TransformPoint(p Vec3) Vec3 {
	x, y, z := p[0], p[1], p[2]
	w := m[12]*x + m[13]*y + m[14]*z + m[15]
	return Vec3{
		(m[0]*x + m[1]*y + m[2]*z + m[3]) / w,
		(m[4]*x + m[5]*y + m[6]*z + m[7]) / w,
		(m[8]*x + m[9]*y + m[10]*z + m[11]) / w,
	}
}
