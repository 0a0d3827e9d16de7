package rtree

import (
	"math"
	"math/rand"

	"github.com/npillmayer/pimrtree/geom"
)

var scenarioA = []geom.Point{{X: 30, Y: 31}, {X: 26, Y: 48}, {X: 31, Y: 50}, {X: 43, Y: 38}, {X: 38, Y: 44}}

// randomGridPoints creates n points with integer coordinates, Z-sorted.
func randomGridPoints(rnd *rand.Rand, n int) []geom.Point {
	points := make([]geom.Point, n)
	for i := range points {
		points[i] = geom.Point{
			X: float64(rnd.Intn(1_000_000)),
			Y: float64(rnd.Intn(1_000_000)),
		}
	}
	geom.ZSort(points, geom.DefaultMortonConfig())
	return points
}

// absentFrom shifts grid points by an irrational delta, so none of the
// results can coincide with a grid point.
func absentFrom(points []geom.Point) []geom.Point {
	out := make([]geom.Point, len(points))
	for i, p := range points {
		out[i] = geom.Point{X: p.X + math.Sqrt2/10, Y: p.Y + math.Pi/10}
	}
	return out
}

func uniformConfig(bundle, fanout int) Config {
	return Config{BundleCapacity: bundle, MaxFanout: fanout, MinFanout: 2, Policy: PolicyUniform}
}
