// Package geom provides a small fixed-size geometry kernel: 2D/3D
// vectors, affine and projective transform matrices, and axis-aligned
// bounding boxes.
//
// It supplies exactly the operations a 2D/3D scene graph needs to
// compose spatial transforms and track spatial extents. It is not a
// general linear-algebra library: there are no arbitrary-size
// matrices and no decomposition routines.
//
// Every type is a freestanding value over fixed-length numeric
// storage. Operations come in two forms: a functional form that
// returns a new value, and an in-place Set form that writes through a
// pointer receiver for reuse in hot loops. Apart from the integer
// refinement constructors, no operation validates its input; NaN and
// infinities propagate per IEEE semantics.
package geom

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the numeric types that geom's generic
// helpers can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Sq returns v squared.
func Sq[T Scalar](v T) T {
	return v * v
}

// Radians converts an angle in degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

// ErrNotWhole is returned by [Whole] and [IV2] when given a
// non-integral value.
var ErrNotWhole = errors.New("not a whole number")

// Whole returns x unchanged if it is a whole number, and an error
// wrapping [ErrNotWhole] otherwise. NaN and infinities are not whole.
func Whole(x float64) (float64, error) {
	if math.IsInf(x, 0) || x != math.Trunc(x) {
		return 0, fmt.Errorf("%w: %v", ErrNotWhole, x)
	}
	return x, nil
}
