// Package tileanim parses tile-animation description files as exported by
// tile-authoring tools. The export format is JSON-like but not directly
// decodable: the document is a bare array of animation records and the
// display name is stored under the key "Animation Name", which is rewritten
// before strict decoding.
package tileanim

// Point is a raw UV coordinate as it appears in the export.
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Frame is one animation frame: an unordered quad of four UV points plus a
// repeat duration in ticks. A duration of zero or less plays for one tick.
type Frame struct {
	UV       []Point `json:"uv"`
	Duration int     `json:"duration"`
}

// Animation is one named animation from the export.
type Animation struct {
	Name    string  `json:"name"` // rewritten from "Animation Name"
	ID      string  `json:"id"`
	Tileset int     `json:"tileset"` // authoring-tool tileset reference, unused by playback
	Frames  []Frame `json:"frames"`
	Tiles   []int   `json:"tiles"` // opaque authoring data, preserved as-is
}

// Document is the wrapped root the normalizer produces around the bare
// animation array.
type Document struct {
	Animations []Animation `json:"animations"`
}

// TickLength returns the number of timeline ticks the frame occupies.
func (f Frame) TickLength() int {
	if f.Duration <= 0 {
		return 1
	}
	return f.Duration
}

// TickTotal returns the total timeline length of the animation in ticks.
func (a Animation) TickTotal() int {
	total := 0
	for _, f := range a.Frames {
		total += f.TickLength()
	}
	return total
}

// ClampIndex clamps an animation selection index into [0, n-1].
// Out-of-range requests are corrected silently rather than erroring.
func ClampIndex(n, i int) int {
	if n <= 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
