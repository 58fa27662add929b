package render

import (
	"bytes"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/timbercraft/timberframe/internal/frame"
	"github.com/timbercraft/timberframe/pkg/sizing"
)

func vec(x, y, z float64) r3.Vec {
	return r3.Vec{X: x, Y: y, Z: z}
}

func designedScene(t *testing.T) (*Scene, frame.Geometry) {
	t.Helper()
	spec := frame.Spec{LengthFt: 40, WidthFt: 30, WallHeightFt: 10, RoofPitch: 0.5, SnowLoadPSF: 40}
	g := frame.Design(spec, sizing.Default())
	return BuildScene(spec, g), g
}

func TestBuildSceneSegmentCounts(t *testing.T) {
	s, g := designedScene(t)

	counts := make(map[Kind]int)
	for _, seg := range s.Segments {
		counts[seg.Kind]++
	}

	// two posts per bent, 12 edges each
	if want := g.NumBents * 2 * 12; counts[KindPost] != want {
		t.Errorf("post segments = %d, expected %d", counts[KindPost], want)
	}
	if want := g.NumBents; counts[KindBeam] != want {
		t.Errorf("beam segments = %d, expected %d", counts[KindBeam], want)
	}
	if want := g.NumBents * 2; counts[KindRafter] != want {
		t.Errorf("rafter segments = %d, expected %d", counts[KindRafter], want)
	}
	if want := (g.NumBents - 1) * 2; counts[KindPlate] != want {
		t.Errorf("plate segments = %d, expected %d", counts[KindPlate], want)
	}
	if want := g.NumBents - 1; counts[KindRidge] != want {
		t.Errorf("ridge segments = %d, expected %d", counts[KindRidge], want)
	}
}

func TestBuildSceneGeometry(t *testing.T) {
	s, g := designedScene(t)

	// bounding cube takes the largest overall dimension
	if s.MaxDimFt != 40 {
		t.Errorf("MaxDimFt = %g, expected 40 (building length)", s.MaxDimFt)
	}

	// every rafter pair meets the ridge at the computed height, and the
	// ridge lines run down the building centerline
	for _, seg := range s.Segments {
		switch seg.Kind {
		case KindRidge:
			if seg.A.X != 15 || seg.B.X != 15 {
				t.Errorf("ridge segment off centerline: %+v", seg)
			}
			if seg.A.Z != g.RidgeHeightFt || seg.B.Z != g.RidgeHeightFt {
				t.Errorf("ridge segment at wrong height: %+v", seg)
			}
		case KindRafter:
			top := math.Max(seg.A.Z, seg.B.Z)
			if top != g.RidgeHeightFt {
				t.Errorf("rafter does not reach ridge height %g: %+v", g.RidgeHeightFt, seg)
			}
		case KindPlate:
			if seg.A.Z != 10 || seg.B.Z != 10 {
				t.Errorf("plate segment not at wall height: %+v", seg)
			}
		}
	}

	// last bent lands exactly at the far end of the building
	var maxY float64
	for _, seg := range s.Segments {
		maxY = math.Max(maxY, math.Max(seg.A.Y, seg.B.Y))
	}
	// post boxes overhang the bent line by half the post depth
	overhang := g.Post.DepthIn / 12 / 2
	if math.Abs(maxY-(40+overhang)) > 1e-9 {
		t.Errorf("frame extends to y=%g, expected %g", maxY, 40+overhang)
	}
}

func TestCameraProjection(t *testing.T) {
	// straight-down view keeps the plan square
	topDown := newCamera(90, 0)
	origin := topDown.project(vec(0, 0, 0))
	if origin.X != 0 || origin.Y != 0 {
		t.Errorf("origin projects to %+v, expected (0,0)", origin)
	}

	// height is invisible from directly above (cos 90° ≈ 0)
	up := topDown.project(vec(0, 0, 10))
	if math.Abs(up.Y) > 1e-9 {
		t.Errorf("vertical line visible in top-down view: %+v", up)
	}

	// at zero elevation, height maps straight to the vertical screen axis
	front := newCamera(0, 0)
	if got := front.project(vec(0, 0, 10)); math.Abs(got.Y-10) > 1e-9 {
		t.Errorf("project(0,0,10) at elev 0 = %+v, expected Y=10", got)
	}
}

func TestRenderWritesPNG(t *testing.T) {
	s, _ := designedScene(t)

	var buf bytes.Buffer
	if err := Render(s, DefaultOptions(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	sig := []byte{0x89, 'P', 'N', 'G'}
	if buf.Len() < len(sig) || !bytes.Equal(buf.Bytes()[:len(sig)], sig) {
		t.Error("Render output does not start with a PNG signature")
	}
}
