package geom

import "fmt"

// Point is a location in the plane. Points are immutable once read.
type Point struct {
	X, Y float64
}

// Equal reports exact float equality of both coordinates.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
}
