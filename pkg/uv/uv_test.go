package uv

import "testing"

func TestTransform_Identity(t *testing.T) {
	p := Point{0.25, 0.75}
	if got := Transform(p, false, false, false); got != p {
		t.Errorf("identity transform changed point: got %v, want %v", got, p)
	}
}

func TestTransform_Order(t *testing.T) {
	// Swap happens before the inversions, so with swap+invertU the
	// original V coordinate is what ends up inverted.
	p := Point{0.2, 0.7}
	got := Transform(p, true, true, false)
	want := Point{1 - 0.7, 0.2}
	if got != want {
		t.Errorf("swap+invertU: got %v, want %v", got, want)
	}
}

func TestTransform_RoundTrips(t *testing.T) {
	points := []Point{{0, 0}, {1, 1}, {0.25, 0.5}, {0.125, 0.875}}
	for _, p := range points {
		if got := Transform(Transform(p, false, true, false), false, true, false); got != p {
			t.Errorf("invertU twice: got %v, want %v", got, p)
		}
		if got := Transform(Transform(p, false, false, true), false, false, true); got != p {
			t.Errorf("invertV twice: got %v, want %v", got, p)
		}
		if got := Transform(Transform(p, true, false, false), true, false, false); got != p {
			t.Errorf("swap twice: got %v, want %v", got, p)
		}
	}
}

func TestBoundsOf(t *testing.T) {
	points := []Point{{0.5, 0}, {0, 0.5}, {0.5, 0.5}, {0, 0}}
	r := BoundsOf(points)
	want := Rect{U: 0, V: 0, W: 0.5, H: 0.5}
	if r != want {
		t.Errorf("bounds: got %v, want %v", r, want)
	}
}

func TestBoundsOf_Empty(t *testing.T) {
	if r := BoundsOf(nil); r != (Rect{}) {
		t.Errorf("empty bounds: got %v, want zero rect", r)
	}
}

func TestRect_Corners(t *testing.T) {
	r := Rect{U: 0.25, V: 0.5, W: 0.25, H: 0.125}
	tests := []struct {
		corner Corner
		want   Point
	}{
		{LowerLeft, Point{0.25, 0.5}},
		{UpperLeft, Point{0.25, 0.625}},
		{UpperRight, Point{0.5, 0.625}},
		{LowerRight, Point{0.5, 0.5}},
	}
	for _, tt := range tests {
		if got := r.Corner(tt.corner); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.corner, got, tt.want)
		}
	}
}

func TestRect_Inset(t *testing.T) {
	r := Rect{U: 0, V: 0, W: 0.5, H: 0.5}
	got := r.Inset(0.02)
	want := Rect{U: 0.01, V: 0.01, W: 0.48, H: 0.48}
	if got != want {
		t.Errorf("inset: got %v, want %v", got, want)
	}
}

func TestRect_InsetZeroIsNoop(t *testing.T) {
	r := Rect{U: 0.1, V: 0.2, W: 0.3, H: 0.4}
	if got := r.Inset(0); got != r {
		t.Errorf("inset(0): got %v, want %v", got, r)
	}
}

func TestRect_InsetMonotonic(t *testing.T) {
	// A larger inset must produce a rect contained in the smaller inset.
	r := Rect{U: 0, V: 0, W: 0.5, H: 0.5}
	small := r.Inset(0.01)
	large := r.Inset(0.04)
	if large.U < small.U || large.V < small.V {
		t.Errorf("larger inset min corner escaped: %v vs %v", large, small)
	}
	if large.U+large.W > small.U+small.W || large.V+large.H > small.V+small.H {
		t.Errorf("larger inset max corner escaped: %v vs %v", large, small)
	}
}
