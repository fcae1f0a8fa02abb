package geom

import (
	"iter"
	"math"
)

// Box2 is a 2D axis-aligned bounding box given by its minimum and
// maximum corners. The zero Box2 is a degenerate box at the origin;
// use [EmptyB2] for a box that is empty under expansion.
//
// A box is in one of two states: empty, with Min at +Inf and Max at
// −Inf, or populated, with Min ≤ Max component-wise. Expansion only
// ever grows a box; the only way to shrink is to start over from
// [EmptyB2].
type Box2 struct {
	Min, Max Vec2
}

// B2 returns the box with corners (x0, y0) and (x1, y1).
func B2(x0, y0, x1, y1 float64) Box2 {
	return Box2{Vec2{x0, y0}, Vec2{x1, y1}}
}

// EmptyB2 returns the empty box. Its infinite sentinel corners lose
// every min/max comparison, so expanding it by a single point yields
// the degenerate box at that point.
func EmptyB2() Box2 {
	return Box2{
		Vec2{math.Inf(1), math.Inf(1)},
		Vec2{math.Inf(-1), math.Inf(-1)},
	}
}

// B2Points returns the smallest box containing all of pts. With no
// points it returns the empty box.
func B2Points(pts ...Vec2) Box2 {
	b := EmptyB2()
	b.Expand(pts...)
	return b
}

// B2Seq returns the smallest box containing every point yielded by
// seq. An empty sequence yields the empty box.
func B2Seq(seq iter.Seq[Vec2]) Box2 {
	b := EmptyB2()
	for p := range seq {
		b.Expand(p)
	}
	return b
}

// Expand grows b to contain all of pts.
func (b *Box2) Expand(pts ...Vec2) {
	for _, p := range pts {
		b.Min.SetMin(p)
		b.Max.SetMax(p)
	}
}

// ExpandBoxes grows b to contain all of boxes. Expanding by an empty
// box is a no-op, and expanding b by itself leaves it unchanged.
func (b *Box2) ExpandBoxes(boxes ...Box2) {
	for _, o := range boxes {
		b.Min.SetMin(o.Min)
		b.Max.SetMax(o.Max)
	}
}

// IsEmpty reports whether b contains no points.
func (b Box2) IsEmpty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1]
}

// Center returns the midpoint of b's corners.
func (b Box2) Center() Vec2 {
	return b.Min.Mid(b.Max)
}

// Size returns the span of b, Max − Min.
func (b Box2) Size() Vec2 {
	return b.Min.Span(b.Max)
}

// Contains reports whether p lies in b under half-open semantics:
// Min.X ≤ p.X < Max.X and Min.Y ≤ p.Y < Max.Y. The exclusive upper
// bound is deliberately asymmetric from Expand's inclusive corners;
// it matches discretizing a continuous box into half-open grid cells.
func (b Box2) Contains(p Vec2) bool {
	return b.Min[0] <= p[0] && p[0] < b.Max[0] &&
		b.Min[1] <= p[1] && p[1] < b.Max[1]
}

// IntegerPoints returns an iterator over the integer lattice points
// covered by b, in column-major order: the outer loop walks X, the
// inner loop Y. On each axis the walk starts at the floor of the
// minimum corner plus one and runs while it does not exceed the
// maximum corner, which is compared unfloored. The sequence is finite
// and can be ranged over multiple times.
func (b Box2) IntegerPoints() iter.Seq[IVec2] {
	return func(yield func(IVec2) bool) {
		for x := math.Floor(b.Min[0]) + 1; x <= b.Max[0]; x++ {
			for y := math.Floor(b.Min[1]) + 1; y <= b.Max[1]; y++ {
				if !yield(IVec2{x, y}) {
					return
				}
			}
		}
	}
}
