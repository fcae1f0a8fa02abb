package geom

import "math"

// Vec2 is a 2D vector or point. It is a named array type rather than
// a struct so that conversions to and from raw coordinate pairs stay
// explicit.
type Vec2 [2]float64

// V2 returns the vector (x, y).
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

func (v Vec2) X() float64 { return v[0] }
func (v Vec2) Y() float64 { return v[1] }

// Add returns v + u. It doubles as point translation.
func (v Vec2) Add(u Vec2) Vec2 {
	return Vec2{v[0] + u[0], v[1] + u[1]}
}

// SetAdd adds u to v in place.
func (v *Vec2) SetAdd(u Vec2) {
	v[0] += u[0]
	v[1] += u[1]
}

// Sub returns v − u.
func (v Vec2) Sub(u Vec2) Vec2 {
	return Vec2{v[0] - u[0], v[1] - u[1]}
}

// SetSub subtracts u from v in place.
func (v *Vec2) SetSub(u Vec2) {
	v[0] -= u[0]
	v[1] -= u[1]
}

// Span returns the vector from point v to point q, that is q − v.
func (v Vec2) Span(q Vec2) Vec2 {
	return Vec2{q[0] - v[0], q[1] - v[1]}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{s * v[0], s * v[1]}
}

// SetScale scales v by s in place.
func (v *Vec2) SetScale(s float64) {
	v[0] *= s
	v[1] *= s
}

// Div returns v divided by s. Division by zero yields infinities per
// IEEE semantics.
func (v Vec2) Div(s float64) Vec2 {
	return Vec2{v[0] / s, v[1] / s}
}

// SetDiv divides v by s in place.
func (v *Vec2) SetDiv(s float64) {
	v[0] /= s
	v[1] /= s
}

// AddScaled returns v + s·u in a single fused operation.
func (v Vec2) AddScaled(u Vec2, s float64) Vec2 {
	return Vec2{v[0] + s*u[0], v[1] + s*u[1]}
}

// SetAddScaled adds s·u to v in place.
func (v *Vec2) SetAddScaled(u Vec2, s float64) {
	v[0] += s * u[0]
	v[1] += s * u[1]
}

// Min returns the component-wise minimum of v and u.
func (v Vec2) Min(u Vec2) Vec2 {
	return Vec2{math.Min(v[0], u[0]), math.Min(v[1], u[1])}
}

// SetMin lowers each component of v to the corresponding component of
// u where u's is smaller.
func (v *Vec2) SetMin(u Vec2) {
	v[0] = math.Min(v[0], u[0])
	v[1] = math.Min(v[1], u[1])
}

// Max returns the component-wise maximum of v and u.
func (v Vec2) Max(u Vec2) Vec2 {
	return Vec2{math.Max(v[0], u[0]), math.Max(v[1], u[1])}
}

// SetMax raises each component of v to the corresponding component of
// u where u's is larger.
func (v *Vec2) SetMax(u Vec2) {
	v[0] = math.Max(v[0], u[0])
	v[1] = math.Max(v[1], u[1])
}

// Mid returns the midpoint of v and u.
func (v Vec2) Mid(u Vec2) Vec2 {
	return Vec2{(v[0] + u[0]) / 2, (v[1] + u[1]) / 2}
}

// Lerp returns the linear interpolation (1−t)·v + t·u. t is not
// clamped.
func (v Vec2) Lerp(u Vec2, t float64) Vec2 {
	return Vec2{(1-t)*v[0] + t*u[0], (1-t)*v[1] + t*u[1]}
}

// SetLerp interpolates v toward u by t in place.
func (v *Vec2) SetLerp(u Vec2, t float64) {
	v[0] = (1-t)*v[0] + t*u[0]
	v[1] = (1-t)*v[1] + t*u[1]
}

// Dot returns the dot product of v and u.
func (v Vec2) Dot(u Vec2) float64 {
	return v[0]*u[0] + v[1]*u[1]
}

// Cross returns the 2D perpendicular product v.x·u.y − v.y·u.x, the
// z component of the 3D cross product of v and u.
func (v Vec2) Cross(u Vec2) float64 {
	return v[0]*u[1] - v[1]*u[0]
}

// Perp returns v rotated 90° counterclockwise, (−y, x).
func (v Vec2) Perp() Vec2 {
	return Vec2{-v[1], v[0]}
}

// Length returns the Euclidean length of v, robust to overflow on
// large components.
func (v Vec2) Length() float64 {
	return math.Hypot(v[0], v[1])
}

// LengthSquared returns the squared length of v.
func (v Vec2) LengthSquared() float64 {
	return v[0]*v[0] + v[1]*v[1]
}

// DistSquared returns the squared distance between points v and u.
func (v Vec2) DistSquared(u Vec2) float64 {
	dx, dy := u[0]-v[0], u[1]-v[1]
	return dx*dx + dy*dy
}

// WithLength returns v rescaled to length l. The result for a
// zero-length v is NaN in both components.
func (v Vec2) WithLength(l float64) Vec2 {
	return v.Scale(l / v.Length())
}

// ClampLength returns v unchanged if its length is at most max, and v
// rescaled to length max otherwise.
func (v Vec2) ClampLength(max float64) Vec2 {
	if v.LengthSquared() <= max*max {
		return v
	}
	return v.WithLength(max)
}

// Floor returns v with both components floored.
func (v Vec2) Floor() IVec2 {
	return IVec2{math.Floor(v[0]), math.Floor(v[1])}
}

// IsZero reports whether both components of v are zero.
func (v Vec2) IsZero() bool {
	return v[0] == 0 && v[1] == 0
}

// IVec2 is a Vec2 whose components are guaranteed to be whole
// numbers. It is only produced by [Vec2.Floor] and [IV2]; there is no
// implicit derivation from a Vec2.
type IVec2 Vec2

// IV2 returns the integral vector (x, y), or an error wrapping
// [ErrNotWhole] if either component is not a whole number.
func IV2(x, y float64) (IVec2, error) {
	x, err := Whole(x)
	if err != nil {
		return IVec2{}, err
	}
	y, err = Whole(y)
	if err != nil {
		return IVec2{}, err
	}
	return IVec2{x, y}, nil
}

// Vec2 returns v as a plain Vec2. The refinement is one-way; going
// back requires flooring or validation again.
func (v IVec2) Vec2() Vec2 {
	return Vec2(v)
}

func (v IVec2) X() int { return int(v[0]) }
func (v IVec2) Y() int { return int(v[1]) }
