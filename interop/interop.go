// Package interop adapts host-platform transform objects into geom's
// row-major matrix types. Conversions are one-way: composite
// transforms are authored on the host object with its own helpers and
// read into the kernel for point mapping.
//
// The adapters are the kernel's only boundary with other libraries,
// which is why they live outside the geom package; consumers of the
// pure kernel do not link the host platforms.
package interop

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"deedles.dev/geom"
)

// Mat2AFromGeoM reinterprets an Ebitengine 2D transform as a
// [geom.Mat2A]. GeoM's six elements are already a 2×3 affine matrix;
// they are read row by row.
func Mat2AFromGeoM(g ebiten.GeoM) geom.Mat2A {
	return geom.Mat2A{
		g.Element(0, 0), g.Element(0, 1), g.Element(0, 2),
		g.Element(1, 0), g.Element(1, 1), g.Element(1, 2),
	}
}

// Mat4FromMGL reinterprets a mathgl 4×4 transform as a [geom.Mat4].
// mgl64 stores matrices column-major, so this is a transposing copy
// into row-major order.
func Mat4FromMGL(m mgl64.Mat4) geom.Mat4 {
	var out geom.Mat4
	for r := range 4 {
		for c := range 4 {
			out[4*r+c] = m.At(r, c)
		}
	}
	return out
}
