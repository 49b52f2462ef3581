package atlas

import (
	"reflect"
	"testing"

	"github.com/Faultbox/uvplay/pkg/tileanim"
	"github.com/Faultbox/uvplay/pkg/uv"
)

// quadFrame builds a frame whose four points span (x0,y0)-(x1,y1).
func quadFrame(x0, y0, x1, y1 float32, duration int) tileanim.Frame {
	return tileanim.Frame{
		UV: []tileanim.Point{
			{X: x0, Y: y0}, {X: x0, Y: y1}, {X: x1, Y: y1}, {X: x1, Y: y0},
		},
		Duration: duration,
	}
}

func TestBuildTimeline_SingleFrame(t *testing.T) {
	anim := tileanim.Animation{Frames: []tileanim.Frame{quadFrame(0, 0, 0.5, 0.5, 1)}}
	timeline := BuildTimeline(anim, Options{})
	if len(timeline) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(timeline))
	}
	want := uv.Rect{U: 0, V: 0, W: 0.5, H: 0.5}
	if timeline[0] != want {
		t.Errorf("rect: got %v, want %v", timeline[0], want)
	}
}

func TestBuildTimeline_InvertV(t *testing.T) {
	// Inverting V moves the 0-0.5 quad into the 0.5-1 band; the size is
	// unchanged because bounds are recomputed after the transform.
	anim := tileanim.Animation{Frames: []tileanim.Frame{quadFrame(0, 0, 0.5, 0.5, 1)}}
	timeline := BuildTimeline(anim, Options{InvertV: true})
	want := uv.Rect{U: 0, V: 0.5, W: 0.5, H: 0.5}
	if timeline[0] != want {
		t.Errorf("rect: got %v, want %v", timeline[0], want)
	}
}

func TestBuildTimeline_LengthMatchesTickTotal(t *testing.T) {
	anim := tileanim.Animation{Frames: []tileanim.Frame{
		quadFrame(0, 0, 0.25, 0.25, 2),
		quadFrame(0.25, 0, 0.5, 0.25, 0), // duration 0 plays one tick
		quadFrame(0.5, 0, 0.75, 0.25, 5),
	}}
	timeline := BuildTimeline(anim, Options{})
	if len(timeline) != anim.TickTotal() {
		t.Errorf("timeline length %d != tick total %d", len(timeline), anim.TickTotal())
	}
	if len(timeline) != 8 {
		t.Errorf("expected 8 entries, got %d", len(timeline))
	}
	// Repeated frames contribute identical entries.
	if timeline[0] != timeline[1] {
		t.Errorf("repeat entries differ: %v vs %v", timeline[0], timeline[1])
	}
}

func TestBuildTimeline_ZeroDurationEqualsOne(t *testing.T) {
	zero := tileanim.Animation{Frames: []tileanim.Frame{quadFrame(0, 0, 0.5, 0.5, 0)}}
	one := tileanim.Animation{Frames: []tileanim.Frame{quadFrame(0, 0, 0.5, 0.5, 1)}}
	if !reflect.DeepEqual(BuildTimeline(zero, Options{}), BuildTimeline(one, Options{})) {
		t.Error("duration 0 and duration 1 produced different timelines")
	}
}

func TestBuildTimeline_Idempotent(t *testing.T) {
	anim := tileanim.Animation{Frames: []tileanim.Frame{
		quadFrame(0, 0, 0.5, 0.5, 2),
		quadFrame(0.5, 0.5, 1, 1, 3),
	}}
	opts := Options{InvertV: true, Shrink: 0.01}
	a := BuildTimeline(anim, opts)
	b := BuildTimeline(anim, opts)
	if !reflect.DeepEqual(a, b) {
		t.Error("rebuilding with identical options produced different timelines")
	}
}

func TestBuildTimeline_Shrink(t *testing.T) {
	anim := tileanim.Animation{Frames: []tileanim.Frame{quadFrame(0, 0, 0.5, 0.5, 1)}}
	timeline := BuildTimeline(anim, Options{Shrink: 0.02})
	want := uv.Rect{U: 0.01, V: 0.01, W: 0.48, H: 0.48}
	if timeline[0] != want {
		t.Errorf("shrunk rect: got %v, want %v", timeline[0], want)
	}
}

func TestBuildTimeline_Empty(t *testing.T) {
	if timeline := BuildTimeline(tileanim.Animation{}, Options{}); timeline != nil {
		t.Errorf("expected nil timeline for empty animation, got %v", timeline)
	}
}

func TestGridFor(t *testing.T) {
	tests := []struct {
		w    float32
		want int
	}{
		{0.0625, 16},
		{0.125, 8},
		{0.5, 2},
		{0, DefaultGrid},
		{-1, DefaultGrid},
		{2, DefaultGrid},
	}
	for _, tt := range tests {
		if got := GridFor(uv.Rect{W: tt.w}); got != tt.want {
			t.Errorf("GridFor(w=%v) = %d, want %d", tt.w, got, tt.want)
		}
	}
}

func TestTileIndex(t *testing.T) {
	// Tile (2, 5) from the bottom on a 16-grid.
	r := uv.Rect{U: 2.0 / 16, V: 5.0 / 16, W: 1.0 / 16, H: 1.0 / 16}
	col, rowBottom, rowTop := TileIndex(r, 16)
	if col != 2 || rowBottom != 5 || rowTop != 10 {
		t.Errorf("got (%d, %d, %d), want (2, 5, 10)", col, rowBottom, rowTop)
	}
}
