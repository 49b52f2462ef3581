package quad

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Faultbox/uvplay/pkg/uv"
)

func TestBind_SimpleQuad(t *testing.T) {
	uvs := []uv.Point{
		{U: 0, V: 0},     // LL
		{U: 0, V: 0.5},   // UL
		{U: 0.5, V: 0.5}, // UR
		{U: 0.5, V: 0},   // LR
	}
	b, err := Bind(uvs)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	if !reflect.DeepEqual(b.LL, []int{0}) || !reflect.DeepEqual(b.UL, []int{1}) ||
		!reflect.DeepEqual(b.UR, []int{2}) || !reflect.DeepEqual(b.LR, []int{3}) {
		t.Errorf("unexpected buckets: %+v", b)
	}
}

func TestBind_SharedCorners(t *testing.T) {
	// Two triangles forming a quad share corner vertices; every duplicate
	// must land in the same bucket.
	uvs := []uv.Point{
		{U: 0, V: 0}, {U: 1, V: 0}, {U: 1, V: 1},
		{U: 0, V: 0}, {U: 1, V: 1}, {U: 0, V: 1},
	}
	b, err := Bind(uvs)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	if !reflect.DeepEqual(b.LL, []int{0, 3}) {
		t.Errorf("LL: got %v, want [0 3]", b.LL)
	}
	if !reflect.DeepEqual(b.UR, []int{2, 4}) {
		t.Errorf("UR: got %v, want [2 4]", b.UR)
	}
	if b.Total() != 6 {
		t.Errorf("total: got %d, want 6", b.Total())
	}
}

func TestBind_WithinEpsilon(t *testing.T) {
	uvs := []uv.Point{
		{U: 0, V: 0},
		{U: 0.00005, V: 0.5}, // within Epsilon of uMin
		{U: 0.5, V: 0.5},
		{U: 0.5, V: 0},
	}
	b, err := Bind(uvs)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	if !reflect.DeepEqual(b.UL, []int{1}) {
		t.Errorf("UL: got %v, want [1]", b.UL)
	}
}

func TestBind_InteriorVertexExcluded(t *testing.T) {
	uvs := []uv.Point{
		{U: 0, V: 0}, {U: 0, V: 1}, {U: 1, V: 1}, {U: 1, V: 0},
		{U: 0.5, V: 0.5}, // center, matches no corner
		{U: 0.5, V: 0},   // edge midpoint, matches no corner
	}
	b, err := Bind(uvs)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	if b.Total() != 4 {
		t.Errorf("expected 4 bound vertices, got %d: %+v", b.Total(), b)
	}
}

func TestBind_Disjoint(t *testing.T) {
	uvs := []uv.Point{
		{U: 0, V: 0}, {U: 0, V: 1}, {U: 1, V: 1}, {U: 1, V: 0},
		{U: 0, V: 0}, {U: 0.3, V: 0.7},
	}
	b, err := Bind(uvs)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	seen := map[int]uv.Corner{}
	for _, c := range uv.Corners {
		for _, i := range b.Bucket(c) {
			if prev, ok := seen[i]; ok {
				t.Errorf("vertex %d in both %s and %s", i, prev, c)
			}
			seen[i] = c
		}
	}
	if b.Total() > len(uvs) {
		t.Errorf("bound %d vertices out of %d", b.Total(), len(uvs))
	}
}

func TestBind_NoUVs(t *testing.T) {
	if _, err := Bind(nil); !errors.Is(err, ErrNoUVs) {
		t.Errorf("expected ErrNoUVs, got %v", err)
	}
}

func TestBind_DegenerateLayout(t *testing.T) {
	// All UVs identical: the bounding box collapses and every vertex is
	// ambiguous, so binding fails rather than inventing corners.
	uvs := []uv.Point{{U: 0.5, V: 0.5}, {U: 0.5, V: 0.5}, {U: 0.5, V: 0.5}}
	if _, err := Bind(uvs); !errors.Is(err, ErrNoCorners) {
		t.Errorf("expected ErrNoCorners, got %v", err)
	}
}
