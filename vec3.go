package geom

import "math"

// Vec3 is a 3D vector or point.
type Vec3 [3]float64

// V3 returns the vector (x, y, z).
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }

// Add returns v + u.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{v[0] + u[0], v[1] + u[1], v[2] + u[2]}
}

// SetAdd adds u to v in place.
func (v *Vec3) SetAdd(u Vec3) {
	v[0] += u[0]
	v[1] += u[1]
	v[2] += u[2]
}

// Sub returns v − u.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{v[0] - u[0], v[1] - u[1], v[2] - u[2]}
}

// SetSub subtracts u from v in place.
func (v *Vec3) SetSub(u Vec3) {
	v[0] -= u[0]
	v[1] -= u[1]
	v[2] -= u[2]
}

// Span returns the vector from point v to point q, that is q − v.
func (v Vec3) Span(q Vec3) Vec3 {
	return Vec3{q[0] - v[0], q[1] - v[1], q[2] - v[2]}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{s * v[0], s * v[1], s * v[2]}
}

// SetScale scales v by s in place.
func (v *Vec3) SetScale(s float64) {
	v[0] *= s
	v[1] *= s
	v[2] *= s
}

// Min returns the component-wise minimum of v and u.
func (v Vec3) Min(u Vec3) Vec3 {
	return Vec3{math.Min(v[0], u[0]), math.Min(v[1], u[1]), math.Min(v[2], u[2])}
}

// SetMin lowers each component of v to the corresponding component of
// u where u's is smaller.
func (v *Vec3) SetMin(u Vec3) {
	v[0] = math.Min(v[0], u[0])
	v[1] = math.Min(v[1], u[1])
	v[2] = math.Min(v[2], u[2])
}

// Max returns the component-wise maximum of v and u.
func (v Vec3) Max(u Vec3) Vec3 {
	return Vec3{math.Max(v[0], u[0]), math.Max(v[1], u[1]), math.Max(v[2], u[2])}
}

// SetMax raises each component of v to the corresponding component of
// u where u's is larger.
func (v *Vec3) SetMax(u Vec3) {
	v[0] = math.Max(v[0], u[0])
	v[1] = math.Max(v[1], u[1])
	v[2] = math.Max(v[2], u[2])
}

// Mid returns the midpoint of v and u.
func (v Vec3) Mid(u Vec3) Vec3 {
	return Vec3{(v[0] + u[0]) / 2, (v[1] + u[1]) / 2, (v[2] + u[2]) / 2}
}

// Dot returns the dot product of v and u.
func (v Vec3) Dot(u Vec3) float64 {
	return v[0]*u[0] + v[1]*u[1] + v[2]*u[2]
}

// Length returns the Euclidean length of v, robust to overflow on
// large components.
func (v Vec3) Length() float64 {
	return math.Hypot(math.Hypot(v[0], v[1]), v[2])
}

// LengthSquared returns the squared length of v.
func (v Vec3) LengthSquared() float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// IsZero reports whether all components of v are zero.
func (v Vec3) IsZero() bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}
