// Package atlas expands parsed tile animations into per-tick timelines of
// texture-space rectangles.
package atlas

import (
	"github.com/Faultbox/uvplay/pkg/tileanim"
	"github.com/Faultbox/uvplay/pkg/uv"
)

// Options controls how frame quads are turned into timeline rects.
type Options struct {
	SwapXY  bool
	InvertU bool
	InvertV bool
	Shrink  float32 // epsilon inset applied to each frame rect, 0 disables
}

// BuildTimeline flattens one animation into an ordered rect sequence with
// one entry per playback tick. Each frame's four points are axis-transformed,
// reduced to their bounding box (the transform may reorder which point lands
// where, so corners cannot be mapped directly), optionally inset by the
// shrink epsilon, and repeated for the frame's tick length.
func BuildTimeline(anim tileanim.Animation, opts Options) []uv.Rect {
	if len(anim.Frames) == 0 {
		return nil
	}

	timeline := make([]uv.Rect, 0, anim.TickTotal())
	points := make([]uv.Point, 0, 4)

	for _, frame := range anim.Frames {
		points = points[:0]
		for _, p := range frame.UV {
			points = append(points, uv.Transform(
				uv.Point{U: p.X, V: p.Y},
				opts.SwapXY, opts.InvertU, opts.InvertV,
			))
		}

		rect := uv.BoundsOf(points).Inset(opts.Shrink)
		for i := 0; i < frame.TickLength(); i++ {
			timeline = append(timeline, rect)
		}
	}

	return timeline
}
