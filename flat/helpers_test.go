package flat

import (
	"math"
	"math/rand"
	"testing"

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

func uniform(bundle, fanout int) rtree.Config {
	return rtree.Config{BundleCapacity: bundle, MinFanout: 2, MaxFanout: fanout, Policy: rtree.PolicyUniform}
}

func build(t *testing.T, points []geom.Point, cfg rtree.Config) rtree.Node {
	t.Helper()
	root, err := rtree.BuildAll(points, cfg)
	require.NoError(t, err)
	return root
}

// requireSameAnswers asserts that pointer and flat form agree for every
// query point.
func requireSameAnswers(t *testing.T, root rtree.Node, ft *Tree, queries []geom.Point, want bool) {
	t.Helper()
	for _, q := range queries {
		require.Equal(t, want, rtree.Contains(root, q), "pointer form, query %v", q)
		require.Equal(t, want, ft.Contains(0, q), "flat form, query %v", q)
	}
}
