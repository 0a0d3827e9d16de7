package unit

import (
	"math"
	"math/rand"
	"testing"

	"github.com/npillmayer/pimrtree/flat"
	"github.com/npillmayer/pimrtree/geom"
	"github.com/npillmayer/pimrtree/rtree"
	"github.com/stretchr/testify/require"
)

func gridPoints(rnd *rand.Rand, n int) []geom.Point {
	points := make([]geom.Point, n)
	for i := range points {
		points[i] = geom.Point{
			X: float64(rnd.Intn(100_000)),
			Y: float64(rnd.Intn(100_000)),
		}
	}
	geom.ZSort(points, geom.DefaultMortonConfig())
	return points
}

func shifted(points []geom.Point) []geom.Point {
	out := make([]geom.Point, len(points))
	for i, p := range points {
		out[i] = geom.Point{X: p.X + math.Sqrt2/10, Y: p.Y + math.Pi/10}
	}
	return out
}

func flatTree(t *testing.T, points []geom.Point, cfg rtree.Config) *flat.Tree {
	t.Helper()
	root, err := rtree.BuildAll(points, cfg)
	require.NoError(t, err)
	ft, err := flat.Flatten(root, flat.DefaultConfig())
	require.NoError(t, err)
	return ft
}

func encoded(t *testing.T, ft *flat.Tree) []byte {
	t.Helper()
	blob, err := ft.MarshalBinary()
	require.NoError(t, err)
	return blob
}
