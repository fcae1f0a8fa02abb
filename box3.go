package geom

import (
	"iter"
	"math"
)

// Box3 is a 3D axis-aligned bounding box given by its minimum and
// maximum corners. It has the same expansion semantics as [Box2] but
// no half-open containment test or lattice enumeration; those are 2D
// grid concerns.
type Box3 struct {
	Min, Max Vec3
}

// B3 returns the box with corners (x0, y0, z0) and (x1, y1, z1).
func B3(x0, y0, z0, x1, y1, z1 float64) Box3 {
	return Box3{Vec3{x0, y0, z0}, Vec3{x1, y1, z1}}
}

// EmptyB3 returns the empty box.
func EmptyB3() Box3 {
	return Box3{
		Vec3{math.Inf(1), math.Inf(1), math.Inf(1)},
		Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
	}
}

// B3Points returns the smallest box containing all of pts. With no
// points it returns the empty box.
func B3Points(pts ...Vec3) Box3 {
	b := EmptyB3()
	b.Expand(pts...)
	return b
}

// B3Seq returns the smallest box containing every point yielded by
// seq. An empty sequence yields the empty box.
func B3Seq(seq iter.Seq[Vec3]) Box3 {
	b := EmptyB3()
	for p := range seq {
		b.Expand(p)
	}
	return b
}

// Expand grows b to contain all of pts.
func (b *Box3) Expand(pts ...Vec3) {
	for _, p := range pts {
		b.Min.SetMin(p)
		b.Max.SetMax(p)
	}
}

// ExpandBoxes grows b to contain all of boxes.
func (b *Box3) ExpandBoxes(boxes ...Box3) {
	for _, o := range boxes {
		b.Min.SetMin(o.Min)
		b.Max.SetMax(o.Max)
	}
}

// IsEmpty reports whether b contains no points.
func (b Box3) IsEmpty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// Center returns the midpoint of b's corners.
func (b Box3) Center() Vec3 {
	return b.Min.Mid(b.Max)
}

// Size returns the span of b, Max − Min.
func (b Box3) Size() Vec3 {
	return b.Min.Span(b.Max)
}
