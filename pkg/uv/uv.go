// Package uv provides texture-space value types and axis transforms for
// atlas animation playback.
package uv

// Point is a texture coordinate. Coordinates are nominally in [0,1] but
// the range is not enforced.
type Point struct {
	U, V float32
}

// Rect is an axis-aligned rectangle in texture space, stored as the
// minimum corner plus size.
type Rect struct {
	U, V float32 // minimum corner
	W, H float32 // size
}

// Corner identifies one of the four logical corners of a quad.
type Corner int

// Logical quad corners, counter-clockwise from the lower left.
const (
	LowerLeft Corner = iota
	UpperLeft
	UpperRight
	LowerRight
)

// String returns a short corner label.
func (c Corner) String() string {
	switch c {
	case LowerLeft:
		return "LL"
	case UpperLeft:
		return "UL"
	case UpperRight:
		return "UR"
	case LowerRight:
		return "LR"
	}
	return "??"
}

// Corners lists the four corners in LL, UL, UR, LR order.
var Corners = [4]Corner{LowerLeft, UpperLeft, UpperRight, LowerRight}

// Transform applies the configured axis fix to a point. The order is fixed:
// swap U/V first, then invert U (u' = 1-u), then invert V (v' = 1-v).
// Inverting after the swap flips the post-swap axis, which matters for
// non-square transforms, so the order must not change.
func Transform(p Point, swapXY, invertU, invertV bool) Point {
	if swapXY {
		p.U, p.V = p.V, p.U
	}
	if invertU {
		p.U = 1 - p.U
	}
	if invertV {
		p.V = 1 - p.V
	}
	return p
}

// BoundsOf returns the axis-aligned bounding rectangle of a point set.
// Returns the zero Rect for an empty set.
func BoundsOf(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minU, maxU := points[0].U, points[0].U
	minV, maxV := points[0].V, points[0].V
	for _, p := range points[1:] {
		if p.U < minU {
			minU = p.U
		}
		if p.U > maxU {
			maxU = p.U
		}
		if p.V < minV {
			minV = p.V
		}
		if p.V > maxV {
			maxV = p.V
		}
	}
	return Rect{U: minU, V: minV, W: maxU - minU, H: maxV - minV}
}

// Corner returns the texture coordinate of the given logical corner.
func (r Rect) Corner(c Corner) Point {
	switch c {
	case LowerLeft:
		return Point{r.U, r.V}
	case UpperLeft:
		return Point{r.U, r.V + r.H}
	case UpperRight:
		return Point{r.U + r.W, r.V + r.H}
	case LowerRight:
		return Point{r.U + r.W, r.V}
	}
	return Point{}
}

// Inset shrinks the rect by e/2 on each side: the minimum corner moves in
// by e/2 on both axes and the size shrinks by e. Used to pull frame rects
// away from neighboring atlas tiles when the sampler filters across edges.
// The size is not clamped; callers pick e small relative to the rect.
func (r Rect) Inset(e float32) Rect {
	if e <= 0 {
		return r
	}
	return Rect{
		U: r.U + e/2,
		V: r.V + e/2,
		W: r.W - e,
		H: r.H - e,
	}
}

// Min returns the minimum corner of the rect.
func (r Rect) Min() Point {
	return Point{r.U, r.V}
}

// Size returns the rect extent as a point (width, height).
func (r Rect) Size() Point {
	return Point{r.W, r.H}
}
