// Package quad classifies mesh vertices into the logical corners of their
// UV quads, so an atlas frame rect can be written back onto the right
// vertices at playback time.
package quad

import (
	"errors"

	"github.com/Faultbox/uvplay/pkg/uv"
)

// Binding errors. Both signal a capability downgrade, not a fatal state:
// the caller is expected to fall back to material-transform playback.
var (
	ErrNoUVs     = errors.New("mesh has no UV coordinates")
	ErrNoCorners = errors.New("no vertex matched any quad corner")
)

// Epsilon is the absolute tolerance used when comparing a vertex UV against
// the quad's extremes. Must stay small relative to tile size so the four
// corner conditions remain mutually exclusive.
const Epsilon = 1e-4

// Buckets partitions vertex indices by the logical quad corner their UV
// sits on. A vertex appears in at most one bucket; vertices whose UV is not
// within Epsilon of any extreme corner appear in none.
type Buckets struct {
	LL []int
	UL []int
	UR []int
	LR []int
}

// Total returns the number of bound vertices across all four corners.
func (b Buckets) Total() int {
	return len(b.LL) + len(b.UL) + len(b.UR) + len(b.LR)
}

// Bucket returns the index slice for a logical corner.
func (b Buckets) Bucket(c uv.Corner) []int {
	switch c {
	case uv.LowerLeft:
		return b.LL
	case uv.UpperLeft:
		return b.UL
	case uv.UpperRight:
		return b.UR
	case uv.LowerRight:
		return b.LR
	}
	return nil
}

// Bind scans a mesh's static UV layout once and partitions its vertex
// indices into corner buckets. The global UV bounding box supplies the four
// extremes; each vertex is matched against them within Epsilon. Returns
// ErrNoUVs for an empty layout and ErrNoCorners when nothing matched,
// which happens on meshes whose UVs do not form axis-aligned quads.
func Bind(uvs []uv.Point) (Buckets, error) {
	if len(uvs) == 0 {
		return Buckets{}, ErrNoUVs
	}

	bounds := uv.BoundsOf(uvs)
	uMin, vMin := bounds.U, bounds.V
	uMax, vMax := bounds.U+bounds.W, bounds.V+bounds.H

	var b Buckets
	for i, p := range uvs {
		lowU := near(p.U, uMin)
		highU := near(p.U, uMax)
		lowV := near(p.V, vMin)
		highV := near(p.V, vMax)

		// Degenerate box: a vertex near both extremes of an axis has no
		// unambiguous corner, so it stays unbound.
		if (lowU && highU) || (lowV && highV) {
			continue
		}

		switch {
		case lowU && lowV:
			b.LL = append(b.LL, i)
		case lowU && highV:
			b.UL = append(b.UL, i)
		case highU && highV:
			b.UR = append(b.UR, i)
		case highU && lowV:
			b.LR = append(b.LR, i)
		}
	}

	if b.Total() == 0 {
		return Buckets{}, ErrNoCorners
	}
	return b, nil
}

func near(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= Epsilon
}
