package frame

import (
	"math"
	"testing"

	"github.com/timbercraft/timberframe/pkg/sizing"
)

func TestValidate(t *testing.T) {
	valid := Spec{LengthFt: 40, WidthFt: 30, WallHeightFt: 10, RoofPitch: 0.5, SnowLoadPSF: 40}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid spec rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Spec)
	}{
		{"length too short", func(s *Spec) { s.LengthFt = 8 }},
		{"length too long", func(s *Spec) { s.LengthFt = 150 }},
		{"width too narrow", func(s *Spec) { s.WidthFt = 5 }},
		{"width too wide", func(s *Spec) { s.WidthFt = 80 }},
		{"wall too short", func(s *Spec) { s.WallHeightFt = 4 }},
		{"wall too tall", func(s *Spec) { s.WallHeightFt = 30 }},
		{"pitch too shallow", func(s *Spec) { s.RoofPitch = 1.0 / 12 }},
		{"pitch too steep", func(s *Spec) { s.RoofPitch = 20.0 / 12 }},
		{"snow load too light", func(s *Spec) { s.SnowLoadPSF = 2 }},
		{"snow load too heavy", func(s *Spec) { s.SnowLoadPSF = 500 }},
		{"zero spec", func(s *Spec) { *s = Spec{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := valid
			tt.mutate(&spec)
			if err := spec.Validate(); err == nil {
				t.Errorf("expected validation error, got nil")
			}
		})
	}
}

func TestDesignEndToEnd(t *testing.T) {
	// 40 × 30 ft building, 10 ft walls, 6/12 pitch, 40 psf snow load
	spec := Spec{LengthFt: 40, WidthFt: 30, WallHeightFt: 10, RoofPitch: 0.5, SnowLoadPSF: 40}
	g := Design(spec, sizing.Default())

	if g.Post != (sizing.Size{WidthIn: 8, DepthIn: 8}) {
		t.Errorf("Post = %v, expected 8×8", g.Post)
	}
	// width 30 rounds up to span category 32, load 40 to category 50
	if g.Beam != (sizing.Size{WidthIn: 10, DepthIn: 16}) {
		t.Errorf("Beam = %v, expected 10×16", g.Beam)
	}
	// rafter span 15 rounds up to category 16, load to 50
	if g.Rafter != (sizing.Size{WidthIn: 6, DepthIn: 8}) {
		t.Errorf("Rafter = %v, expected 6×8", g.Rafter)
	}

	if math.Abs(g.RidgeHeightFt-17.5) > 1e-9 {
		t.Errorf("RidgeHeightFt = %g, expected 17.5", g.RidgeHeightFt)
	}
	if g.NumBents != 4 {
		t.Errorf("NumBents = %d, expected 4", g.NumBents)
	}
	if math.Abs(g.BentSpacingFt-40.0/3) > 1e-9 {
		t.Errorf("BentSpacingFt = %g, expected %g", g.BentSpacingFt, 40.0/3)
	}
}

func TestBentLayoutCoversExactLength(t *testing.T) {
	tables := sizing.Default()
	for _, length := range []float64{10, 11.9, 12, 23.5, 24, 36, 40, 57.3, 99, 100} {
		spec := Spec{LengthFt: length, WidthFt: 24, WallHeightFt: 10, RoofPitch: 0.5, SnowLoadPSF: 40}
		g := Design(spec, tables)

		if g.NumBents < 2 {
			t.Errorf("length %g: NumBents = %d, expected >= 2", length, g.NumBents)
		}
		covered := g.BentSpacingFt * float64(g.NumBents-1)
		if math.Abs(covered-length) > 1e-9 {
			t.Errorf("length %g: spacing %g × %d gaps covers %g", length, g.BentSpacingFt, g.NumBents-1, covered)
		}
	}
}

func TestDesignIsIdempotent(t *testing.T) {
	spec := Spec{LengthFt: 36, WidthFt: 28, WallHeightFt: 12, RoofPitch: 8.0 / 12, SnowLoadPSF: 55}
	tables := sizing.Default()

	first := Design(spec, tables)
	for i := 0; i < 3; i++ {
		if got := Design(spec, tables); got != first {
			t.Fatalf("Design changed between calls: %+v then %+v", first, got)
		}
	}
}

func TestMaterials(t *testing.T) {
	spec := Spec{LengthFt: 40, WidthFt: 30, WallHeightFt: 10, RoofPitch: 0.5, SnowLoadPSF: 40}
	g := Design(spec, sizing.Default())
	m := g.Materials(spec)

	if m.PostCount != 8 {
		t.Errorf("PostCount = %d, expected 8", m.PostCount)
	}
	if m.PostLenFt != 10 {
		t.Errorf("PostLenFt = %g, expected 10", m.PostLenFt)
	}
	if m.BeamCount != 4 {
		t.Errorf("BeamCount = %d, expected 4", m.BeamCount)
	}
	if m.BeamLenFt != 30 {
		t.Errorf("BeamLenFt = %g, expected 30", m.BeamLenFt)
	}
	if m.RafterCount != 8 {
		t.Errorf("RafterCount = %d, expected 8", m.RafterCount)
	}

	// sloped length of a 15 ft half-span at 6/12 pitch
	wantRafterLen := 15 / math.Cos(math.Atan(0.5))
	if math.Abs(m.RafterLenFt-wantRafterLen) > 1e-9 {
		t.Errorf("RafterLenFt = %g, expected %g", m.RafterLenFt, wantRafterLen)
	}

	// two 40 ft walls in 16 ft stock
	if m.PlateCount != 5 {
		t.Errorf("PlateCount = %d, expected 5", m.PlateCount)
	}
}
