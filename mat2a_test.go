package geom_test

import (
	"testing"

	"deedles.dev/geom"
	"github.com/stretchr/testify/require"
)

func TestMat2AIdentity(t *testing.T) {
	m := geom.Ident2A()
	p := geom.V2(3.5, -7)
	require.Equal(t, p, m.TransformPoint(p))
}

func TestMat2ATransformPoint(t *testing.T) {
	// Rows [2 0 10] and [0 3 -1]: scale then offset per axis.
	m := geom.Mat2A{
		2, 0, 10,
		0, 3, -1,
	}
	require.Equal(t, geom.V2(10, -1), m.TransformPoint(geom.V2(0, 0)))
	require.Equal(t, geom.V2(12, 2), m.TransformPoint(geom.V2(1, 1)))

	// Off-diagonal entries mix components.
	m = geom.Mat2A{
		0, 1, 0,
		1, 0, 0,
	}
	require.Equal(t, geom.V2(2, 1), m.TransformPoint(geom.V2(1, 2)))
}
