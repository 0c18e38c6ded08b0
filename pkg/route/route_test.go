package route

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func TestNewRejectsShortPath(t *testing.T) {
	if _, err := New(Point{X: 1, Y: 1}); !errors.Is(err, ErrTooShort) {
		t.Errorf("expected ErrTooShort, got %v", err)
	}
	if _, err := New(); !errors.Is(err, ErrTooShort) {
		t.Errorf("expected ErrTooShort for empty path, got %v", err)
	}
}

func TestNewCopiesWaypoints(t *testing.T) {
	points := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
	p, err := New(points...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	points[1].X = 99
	if p.At(1).X != 10 {
		t.Errorf("path must not alias caller slice, got %v", p.At(1))
	}

	wp := p.Waypoints()
	wp[0].X = 42
	if p.Start().X != 0 {
		t.Errorf("Waypoints must return a copy, start is now %v", p.Start())
	}
}

func TestDistanceFromSegment(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 10, Y: 0}

	tests := []struct {
		name string
		pt   Point
		want float64
	}{
		{"perpendicular above middle", Point{X: 5, Y: 3}, 3},
		{"on the segment", Point{X: 7, Y: 0}, 0},
		{"before start clamps to a", Point{X: -3, Y: 4}, 5},
		{"past end clamps to b", Point{X: 13, Y: 4}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceFromSegment(tt.pt, a, b)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDistanceFromZeroLengthSegment(t *testing.T) {
	a := Point{X: 600, Y: 400}
	got := DistanceFromSegment(Point{X: 603, Y: 404}, a, a)
	if math.IsNaN(got) {
		t.Fatal("zero-length segment must not produce NaN")
	}
	if math.Abs(got-5) > epsilon {
		t.Errorf("expected 5, got %v", got)
	}
}

func TestPathDistanceToUsesClosestSegment(t *testing.T) {
	p := MustNew(Point{X: 0, Y: 0}, Point{X: 100, Y: 0}, Point{X: 100, Y: 100})
	got := p.DistanceTo(Point{X: 90, Y: 50})
	if math.Abs(got-10) > epsilon {
		t.Errorf("expected 10 to the vertical segment, got %v", got)
	}
}

func TestPathLength(t *testing.T) {
	p := MustNew(Point{X: 0, Y: 0}, Point{X: 30, Y: 40}, Point{X: 30, Y: 40}, Point{X: 30, Y: 50})
	if got := p.Length(); math.Abs(got-60) > epsilon {
		t.Errorf("expected 60, got %v", got)
	}
	if p.Segments() != 3 {
		t.Errorf("expected 3 segments, got %d", p.Segments())
	}
	if p.LastIndex() != 3 {
		t.Errorf("expected last index 3, got %d", p.LastIndex())
	}
}
