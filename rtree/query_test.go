package rtree

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/pimrtree/geom"
)

func TestContainsScenarioA(t *testing.T) {
	root, err := BuildAll(scenarioA, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !Contains(root, geom.Point{X: 38, Y: 44}) {
		t.Errorf("expected (38,44) to be found")
	}
	if Contains(root, geom.Point{X: 0, Y: 0}) {
		t.Errorf("expected (0,0) not to be found")
	}
	// inside the box but not a stored point
	if Contains(root, geom.Point{X: 30, Y: 40}) {
		t.Errorf("expected (30,40) not to be found")
	}
	if Contains(nil, geom.Point{X: 38, Y: 44}) {
		t.Errorf("expected nil tree to contain nothing")
	}
}

func TestContainsScenarioB(t *testing.T) {
	rnd := rand.New(rand.NewSource(1000))
	points := randomGridPoints(rnd, 1000)
	for _, cfg := range []Config{uniformConfig(30, 32), DefaultConfig()} {
		root, err := BuildAll(points, cfg)
		if err != nil {
			t.Fatal(err)
		}
		for _, p := range points {
			if !Contains(root, p) {
				t.Fatalf("%v: expected %v to be found", cfg.Policy, p)
			}
		}
		for _, q := range absentFrom(points) {
			if Contains(root, q) {
				t.Fatalf("%v: expected %v not to be found", cfg.Policy, q)
			}
		}
	}
}

func TestPruningNeverCausesFalseNegatives(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		n := 1 + rnd.Intn(500)
		points := randomGridPoints(rnd, n)
		cfg := Config{
			BundleCapacity: 1 + rnd.Intn(16),
			MaxFanout:      2 + rnd.Intn(15),
			Policy:         Policy(rnd.Intn(2)),
		}
		root, err := BuildAll(points, cfg)
		if err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		// whenever q lies outside a node's box, no point below that node equals q
		for i := 0; i < 50; i++ {
			q := points[rnd.Intn(n)]
			Walk(root, func(node Node, pos, _ int) bool {
				if node.Box().Contains(q) {
					return true
				}
				Walk(node, func(below Node, _, _ int) bool {
					if leaf, ok := below.(*Leaf); ok {
						for _, p := range leaf.Points() {
							if p.Equal(q) {
								t.Fatalf("round %d: %v pruned at node %d but stored below it", round, q, pos)
							}
						}
					}
					return true
				})
				return true
			})
			if !Contains(root, q) {
				t.Fatalf("round %d: false negative for %v", round, q)
			}
		}
	}
}
