package geom

import (
	"math"
	"testing"
)

func TestEmptyBoxIsNeutral(t *testing.T) {
	bb := Box{MinX: 1, MinY: 2, MaxX: 3, MaxY: 4}
	if got := EmptyBox().Union(bb); got != bb {
		t.Fatalf("empty ∪ bb = %v, want %v", got, bb)
	}
	if got := bb.Union(EmptyBox()); got != bb {
		t.Fatalf("bb ∪ empty = %v, want %v", got, bb)
	}
	if !EmptyBox().IsEmpty() {
		t.Fatalf("expected empty box to report IsEmpty")
	}
	if !math.IsInf(EmptyBox().MinX, +1) || !math.IsInf(EmptyBox().MaxY, -1) {
		t.Fatalf("unexpected empty box representation %v", EmptyBox())
	}
}

func TestBoxOfScenarioPoints(t *testing.T) {
	bb := BoxOf(Point{30, 31}, Point{26, 48}, Point{31, 50}, Point{43, 38}, Point{38, 44})
	want := Box{MinX: 26, MinY: 31, MaxX: 43, MaxY: 50}
	if bb != want {
		t.Fatalf("BoxOf = %v, want %v", bb, want)
	}
}

func TestSinglePointBoxIsDegenerate(t *testing.T) {
	p := Point{7.5, -2}
	bb := BoxOf(p)
	if bb.MinX != bb.MaxX || bb.MinY != bb.MaxY || bb.IsEmpty() {
		t.Fatalf("expected degenerate box, got %v", bb)
	}
	if !bb.Contains(p) {
		t.Fatalf("degenerate box must contain its point")
	}
}

func TestContainsIsInclusive(t *testing.T) {
	bb := Box{MinX: 0, MinY: 0, MaxX: 10, MaxY: 5}
	for _, p := range []Point{{0, 0}, {10, 5}, {0, 5}, {10, 0}, {3, 3}} {
		if !bb.Contains(p) {
			t.Errorf("expected %v inside %v", p, bb)
		}
	}
	for _, p := range []Point{{-0.001, 0}, {10.001, 5}, {5, 5.5}, {5, -1}} {
		if bb.Contains(p) {
			t.Errorf("expected %v outside %v", p, bb)
		}
	}
	if EmptyBox().Contains(Point{}) {
		t.Errorf("empty box must not contain anything")
	}
}

func TestUnionIsCoordinateWise(t *testing.T) {
	a := Box{MinX: 0, MinY: 5, MaxX: 2, MaxY: 6}
	b := Box{MinX: -1, MinY: 7, MaxX: 1, MaxY: 9}
	want := Box{MinX: -1, MinY: 5, MaxX: 2, MaxY: 9}
	if got := a.Union(b); got != want {
		t.Fatalf("union = %v, want %v", got, want)
	}
}
