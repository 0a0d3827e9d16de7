package geom

import (
	"fmt"
	"math"
)

// Box is an axis-aligned minimum bounding rectangle.
//
// A non-empty box satisfies MinX <= MaxX and MinY <= MaxY. The empty box has
// its minima at +Inf and its maxima at -Inf, so that the union of any box
// with the empty box yields that box.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// EmptyBox returns the neutral element of Union.
func EmptyBox() Box {
	return Box{
		MinX: math.Inf(+1),
		MinY: math.Inf(+1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
}

// BoxOf returns the exact bounding box of a set of points.
func BoxOf(points ...Point) Box {
	bb := EmptyBox()
	for _, p := range points {
		bb = bb.Extend(p)
	}
	return bb
}

// IsEmpty reports whether the box contains no point at all.
func (bb Box) IsEmpty() bool {
	return bb.MinX > bb.MaxX || bb.MinY > bb.MaxY
}

// Extend returns the smallest box containing bb and p.
func (bb Box) Extend(p Point) Box {
	if p.X < bb.MinX {
		bb.MinX = p.X
	}
	if p.Y < bb.MinY {
		bb.MinY = p.Y
	}
	if p.X > bb.MaxX {
		bb.MaxX = p.X
	}
	if p.Y > bb.MaxY {
		bb.MaxY = p.Y
	}
	return bb
}

// Union gives the smallest box containing both bb and other.
func (bb Box) Union(other Box) Box {
	return Box{
		MinX: math.Min(bb.MinX, other.MinX),
		MinY: math.Min(bb.MinY, other.MinY),
		MaxX: math.Max(bb.MaxX, other.MaxX),
		MaxY: math.Max(bb.MaxY, other.MaxY),
	}
}

// Contains is the inclusive point-in-box test used for pruning.
func (bb Box) Contains(p Point) bool {
	return p.X >= bb.MinX && p.X <= bb.MaxX &&
		p.Y >= bb.MinY && p.Y <= bb.MaxY
}

func (bb Box) String() string {
	return fmt.Sprintf("[%.2f, %.2f, %.2f, %.2f]", bb.MinX, bb.MinY, bb.MaxX, bb.MaxY)
}
