package flat

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/npillmayer/pimrtree/geom"
	"github.com/npillmayer/pimrtree/rtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestFlattenScenarioA(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pimrtree")
	defer teardown()
	//
	points := []geom.Point{{X: 30, Y: 31}, {X: 26, Y: 48}, {X: 31, Y: 50}, {X: 43, Y: 38}, {X: 38, Y: 44}}
	root := build(t, points, rtree.DefaultConfig())
	ft, err := Flatten(root, DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, 1, ft.Len())
	require.True(t, ft.At(0).Leaf)
	require.Equal(t, geom.Box{MinX: 26, MinY: 31, MaxX: 43, MaxY: 50}, ft.At(0).Box)
	require.True(t, ft.Contains(0, geom.Point{X: 38, Y: 44}))
	require.False(t, ft.Contains(0, geom.Point{X: 0, Y: 0}))
}

func TestFlattenPreOrderPositions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pimrtree")
	defer teardown()
	//
	rnd := rand.New(rand.NewSource(7))
	root := build(t, gridPoints(rnd, 500), uniform(4, 3))
	ft, err := Flatten(root, Config{Capacity: 4})
	require.NoError(t, err)
	require.Equal(t, rtree.Count(root), ft.Len())
	require.NoError(t, ft.Check())
	// record order must follow the pointer tree's pre-order numbering
	rtree.Walk(root, func(n rtree.Node, pos, _ int) bool {
		rec := ft.At(pos)
		require.Equal(t, n.IsLeaf(), rec.Leaf, "record #%d", pos)
		require.Equal(t, n.Box(), rec.Box, "record #%d", pos)
		require.Equal(t, n.Len(), rec.Count(), "record #%d", pos)
		for _, c := range rec.Children {
			require.Greater(t, c, pos)
		}
		return true
	})
}

func TestFormEquivalenceAtBundleBoundary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pimrtree")
	defer teardown()
	//
	const bundle = 30
	rnd := rand.New(rand.NewSource(11))
	for _, n := range []int{bundle - 1, bundle, bundle + 1} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			points := gridPoints(rnd, n)
			for _, cfg := range []rtree.Config{uniform(bundle, 32), rtree.DefaultConfig()} {
				root := build(t, points, cfg)
				ft, err := Flatten(root, DefaultConfig())
				require.NoError(t, err)
				requireSameAnswers(t, root, ft, points, true)
				requireSameAnswers(t, root, ft, shifted(points), false)
			}
		})
	}
}

func TestFormEquivalenceScenarioB(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pimrtree")
	defer teardown()
	//
	rnd := rand.New(rand.NewSource(1000))
	points := gridPoints(rnd, 1000)
	root := build(t, points, uniform(30, 32))
	ft, err := Flatten(root, DefaultConfig())
	require.NoError(t, err)
	requireSameAnswers(t, root, ft, points, true)
	requireSameAnswers(t, root, ft, shifted(points), false)
}

func TestFlattenCapacityExceeded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pimrtree")
	defer teardown()
	//
	points := make([]geom.Point, 17)
	for i := range points {
		points[i] = geom.Point{X: float64(i), Y: float64(2 * i)}
	}
	leaf := rtree.NewLeaf(points...)
	_, err := Flatten(leaf, Config{Capacity: 16})
	require.ErrorIs(t, err, ErrCapacityExceeded)
	//
	leaves := make([]rtree.Node, 17)
	for i := range leaves {
		leaves[i] = rtree.NewLeaf(points[i])
	}
	_, err = Flatten(rtree.NewInner(leaves...), Config{Capacity: 16})
	require.ErrorIs(t, err, ErrCapacityExceeded)
	// deeper in the tree
	inner := rtree.NewInner(rtree.NewLeaf(points[0]), rtree.NewLeaf(points...))
	_, err = Flatten(inner, Config{Capacity: 16})
	require.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestFlattenNodeBudget(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	root := build(t, gridPoints(rnd, 200), uniform(4, 4))
	n := rtree.Count(root)
	_, err := Flatten(root, Config{Capacity: 4, MaxNodes: n - 1})
	require.ErrorIs(t, err, ErrNodeBudget)
	ft, err := Flatten(root, Config{Capacity: 4, MaxNodes: n})
	require.NoError(t, err)
	require.Equal(t, n, ft.Len())
}

func TestFlattenInvalidInput(t *testing.T) {
	_, err := Flatten(nil, DefaultConfig())
	require.ErrorIs(t, err, ErrInvalidTree)
	leaf := rtree.NewLeaf(geom.Point{X: 1, Y: 1})
	_, err = Flatten(leaf, Config{Capacity: 0})
	require.ErrorIs(t, err, ErrInvalidConfig)
	_, err = Flatten(leaf, Config{Capacity: 4, MaxNodes: -1})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestFlatContainsOutOfRange(t *testing.T) {
	ft, err := Flatten(rtree.NewLeaf(geom.Point{X: 1, Y: 1}), DefaultConfig())
	require.NoError(t, err)
	require.False(t, ft.Contains(-1, geom.Point{X: 1, Y: 1}))
	require.False(t, ft.Contains(1, geom.Point{X: 1, Y: 1}))
}

func TestFlattenDoesNotShareMemory(t *testing.T) {
	points := []geom.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}
	leaf := rtree.NewLeaf(points...)
	ft, err := Flatten(leaf, DefaultConfig())
	require.NoError(t, err)
	leaf.Points()[0] = geom.Point{X: 9, Y: 9}
	require.Equal(t, geom.Point{X: 1, Y: 1}, ft.At(0).Points[0])
}

func TestCheckDetectsBrokenLinks(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	root := build(t, gridPoints(rnd, 50), uniform(4, 4))
	ft, err := Flatten(root, Config{Capacity: 4})
	require.NoError(t, err)
	require.NoError(t, ft.Check())
	ft.nodes[0].Children[1] = ft.nodes[0].Children[0]
	require.ErrorIs(t, ft.Check(), ErrInvalidTree)
}

func TestDump(t *testing.T) {
	inner := rtree.NewInner(
		rtree.NewLeaf(geom.Point{X: 1, Y: 2}),
		rtree.NewLeaf(geom.Point{X: 3, Y: 4}, geom.Point{X: 5, Y: 6}),
	)
	ft, err := Flatten(inner, DefaultConfig())
	require.NoError(t, err)
	var sb strings.Builder
	require.NoError(t, ft.Dump(&sb))
	out := sb.String()
	require.Contains(t, out, "Record #0 (leaf=false, count=2")
	require.Contains(t, out, "  Record #2 (leaf=true, count=2")
	require.Contains(t, out, "    Point (5.0, 6.0)")
}
