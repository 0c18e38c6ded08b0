// pkg/route/route.go
package route

import (
	"errors"
	"math"
)

// ErrTooShort is returned when a path is built from fewer than two waypoints.
var ErrTooShort = errors.New("route: a path needs at least two waypoints")

// Point is a 2D coordinate on the playing field.
type Point struct {
	X, Y float64
}

// Distance returns the euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Path is the fixed, ordered list of waypoints enemies walk along.
// It is never mutated after construction.
type Path struct {
	waypoints []Point
}

// New builds a path from the given waypoints. Coincident consecutive
// waypoints are allowed and behave as zero-length segments.
func New(points ...Point) (*Path, error) {
	if len(points) < 2 {
		return nil, ErrTooShort
	}
	wp := make([]Point, len(points))
	copy(wp, points)
	return &Path{waypoints: wp}, nil
}

// MustNew is like New but panics on error. Used for static routes.
func MustNew(points ...Point) *Path {
	p, err := New(points...)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of waypoints.
func (p *Path) Len() int {
	return len(p.waypoints)
}

// At returns the i-th waypoint.
func (p *Path) At(i int) Point {
	return p.waypoints[i]
}

// Start returns the first waypoint.
func (p *Path) Start() Point {
	return p.waypoints[0]
}

// LastIndex returns the index of the final waypoint.
func (p *Path) LastIndex() int {
	return len(p.waypoints) - 1
}

// Waypoints returns a copy of the waypoint sequence.
func (p *Path) Waypoints() []Point {
	wp := make([]Point, len(p.waypoints))
	copy(wp, p.waypoints)
	return wp
}

// Segments returns the number of segments (Len()-1).
func (p *Path) Segments() int {
	return len(p.waypoints) - 1
}

// Segment returns the endpoints of the i-th segment.
func (p *Path) Segment(i int) (Point, Point) {
	return p.waypoints[i], p.waypoints[i+1]
}

// Length returns the total walking distance from start to end.
func (p *Path) Length() float64 {
	total := 0.0
	for i := 0; i < p.Segments(); i++ {
		a, b := p.Segment(i)
		total += a.Distance(b)
	}
	return total
}

// DistanceTo returns the smallest distance from pt to any segment of the path.
func (p *Path) DistanceTo(pt Point) float64 {
	minDist := math.MaxFloat64
	for i := 0; i < p.Segments(); i++ {
		a, b := p.Segment(i)
		if d := DistanceFromSegment(pt, a, b); d < minDist {
			minDist = d
		}
	}
	return minDist
}

// DistanceFromSegment returns the distance from pt to the closest point of
// segment [a, b]. The projection parameter is clamped to [0, 1]; a
// zero-length segment degrades to the distance to a.
func DistanceFromSegment(pt, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lengthSquared := dx*dx + dy*dy
	if lengthSquared == 0 {
		return pt.Distance(a)
	}

	t := ((pt.X-a.X)*dx + (pt.Y-a.Y)*dy) / lengthSquared
	t = math.Max(0, math.Min(1, t))

	closest := Point{X: a.X + t*dx, Y: a.Y + t*dy}
	return pt.Distance(closest)
}
