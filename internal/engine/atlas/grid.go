package atlas

import "github.com/Faultbox/uvplay/pkg/uv"

// DefaultGrid is the assumed atlas resolution (tiles per axis) for tile
// index diagnostics when none can be derived from the rect itself.
const DefaultGrid = 16

// GridFor derives the atlas grid resolution from a rect's width, falling
// back to DefaultGrid when the width is unusable (zero, negative, or wider
// than a single tile at the smallest grid).
func GridFor(r uv.Rect) int {
	if r.W <= 0 || r.W > 1 {
		return DefaultGrid
	}
	n := int(1/r.W + 0.5)
	if n < 1 {
		return DefaultGrid
	}
	return n
}

// TileIndex reports the implied atlas tile of a rect's lower-left corner on
// an n-by-n grid. rowBottom counts rows from the bottom of the texture,
// rowTop from the top. Purely diagnostic; playback never depends on it.
func TileIndex(r uv.Rect, n int) (col, rowBottom, rowTop int) {
	if n < 1 {
		n = DefaultGrid
	}
	col = int(r.U * float32(n))
	rowBottom = int(r.V * float32(n))
	rowTop = n - 1 - rowBottom
	return col, rowBottom, rowTop
}
