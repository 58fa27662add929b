// Package render turns a designed frame into a schematic 3-D wireframe:
// posts, beams, rafters, plates, and ridge as line segments, projected
// through a fixed camera and exported as a PNG.
package render

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/timbercraft/timberframe/internal/frame"
)

// Kind identifies which member a segment belongs to; it selects the
// drawing color and weight.
type Kind int

const (
	KindPost Kind = iota
	KindBeam
	KindRafter
	KindPlate
	KindRidge
)

// Segment is one line of the wireframe. Coordinates are in feet:
// X across the building width, Y along its length, Z up.
type Segment struct {
	A, B r3.Vec
	Kind Kind
}

// Scene is the complete wireframe for one designed frame plus the
// metadata the renderer needs for its viewport and title.
type Scene struct {
	Segments []Segment

	// MaxDimFt is the edge of the equal-aspect bounding cube: the
	// largest of length, width, and ridge height.
	MaxDimFt float64

	Spec frame.Spec
	Geom frame.Geometry
}

// BuildScene emits the wireframe for a designed frame. Each bent gets
// two posts drawn as 12-edge boxes, one beam across the post tops, and
// a rafter pair meeting at the ridge; each gap between adjacent bents
// gets two wall-plate lines and a ridge line.
func BuildScene(spec frame.Spec, g frame.Geometry) *Scene {
	s := &Scene{
		MaxDimFt: max3(spec.LengthFt, spec.WidthFt, g.RidgeHeightFt),
		Spec:     spec,
		Geom:     g,
	}

	// member cross-sections, inches to feet
	postW := g.Post.WidthIn / 12
	postD := g.Post.DepthIn / 12

	for i := 0; i < g.NumBents; i++ {
		y := float64(i) * g.BentSpacingFt

		s.addPostBox(r3.Vec{X: 0, Y: y}, spec.WallHeightFt, postW, postD)
		s.addPostBox(r3.Vec{X: spec.WidthFt, Y: y}, spec.WallHeightFt, postW, postD)

		s.add(KindBeam,
			r3.Vec{X: 0, Y: y, Z: spec.WallHeightFt},
			r3.Vec{X: spec.WidthFt, Y: y, Z: spec.WallHeightFt})

		ridge := r3.Vec{X: spec.WidthFt / 2, Y: y, Z: g.RidgeHeightFt}
		s.add(KindRafter, r3.Vec{X: 0, Y: y, Z: spec.WallHeightFt}, ridge)
		s.add(KindRafter, ridge, r3.Vec{X: spec.WidthFt, Y: y, Z: spec.WallHeightFt})
	}

	for i := 0; i < g.NumBents-1; i++ {
		y1 := float64(i) * g.BentSpacingFt
		y2 := float64(i+1) * g.BentSpacingFt

		s.add(KindPlate,
			r3.Vec{X: 0, Y: y1, Z: spec.WallHeightFt},
			r3.Vec{X: 0, Y: y2, Z: spec.WallHeightFt})
		s.add(KindPlate,
			r3.Vec{X: spec.WidthFt, Y: y1, Z: spec.WallHeightFt},
			r3.Vec{X: spec.WidthFt, Y: y2, Z: spec.WallHeightFt})

		s.add(KindRidge,
			r3.Vec{X: spec.WidthFt / 2, Y: y1, Z: g.RidgeHeightFt},
			r3.Vec{X: spec.WidthFt / 2, Y: y2, Z: g.RidgeHeightFt})
	}

	return s
}

func (s *Scene) add(kind Kind, a, b r3.Vec) {
	s.Segments = append(s.Segments, Segment{A: a, B: b, Kind: kind})
}

// addPostBox draws a vertical post centered at (c.X, c.Y) from the
// ground to height h as a rectangular box wireframe: bottom face, top
// face, and four vertical edges.
func (s *Scene) addPostBox(c r3.Vec, h, w, d float64) {
	v := [8]r3.Vec{
		{X: c.X - w/2, Y: c.Y - d/2, Z: 0},
		{X: c.X + w/2, Y: c.Y - d/2, Z: 0},
		{X: c.X + w/2, Y: c.Y + d/2, Z: 0},
		{X: c.X - w/2, Y: c.Y + d/2, Z: 0},
		{X: c.X - w/2, Y: c.Y - d/2, Z: h},
		{X: c.X + w/2, Y: c.Y - d/2, Z: h},
		{X: c.X + w/2, Y: c.Y + d/2, Z: h},
		{X: c.X - w/2, Y: c.Y + d/2, Z: h},
	}

	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, // bottom face
		{4, 5}, {5, 6}, {6, 7}, {7, 4}, // top face
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, // vertical edges
	}

	for _, e := range edges {
		s.add(KindPost, v[e[0]], v[e[1]])
	}
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
