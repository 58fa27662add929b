// Package frame derives a timber frame layout from building dimensions
// and design snow load: member cross-sections via the sizing tables,
// ridge height from the roof pitch, and an even bent layout along the
// building length. All derivations are pure functions of the validated
// input spec.
package frame

import (
	"fmt"
	"math"

	"github.com/timbercraft/timberframe/pkg/sizing"
)

// Input bounds enforced on a Spec. Roof pitch bounds correspond to a
// rise of 2-16 inches per 12 inches of run.
const (
	MinLengthFt     = 10.0
	MaxLengthFt     = 100.0
	MinWidthFt      = 10.0
	MaxWidthFt      = 60.0
	MinWallHeightFt = 6.0
	MaxWallHeightFt = 20.0
	MinRoofRiseIn   = 2.0
	MaxRoofRiseIn   = 16.0
	MinSnowLoadPSF  = 5.0
	MaxSnowLoadPSF  = 200.0
)

// Layout constants.
const (
	// IdealBentSpacingFt is the target on-center spacing between bents.
	IdealBentSpacingFt = 12.0
	// PlateStockFt is the stock length wall plates are ordered in.
	PlateStockFt = 16.0
)

// Spec is the operator-supplied building description. RoofPitch is the
// rise/run ratio (6/12 pitch = 0.5).
type Spec struct {
	LengthFt     float64
	WidthFt      float64
	WallHeightFt float64
	RoofPitch    float64
	SnowLoadPSF  float64
}

// Validate checks every field against its enforced range.
func (s Spec) Validate() error {
	checks := []struct {
		name     string
		value    float64
		min, max float64
	}{
		{"length", s.LengthFt, MinLengthFt, MaxLengthFt},
		{"width", s.WidthFt, MinWidthFt, MaxWidthFt},
		{"wall height", s.WallHeightFt, MinWallHeightFt, MaxWallHeightFt},
		{"roof pitch", s.RoofPitch, MinRoofRiseIn / 12, MaxRoofRiseIn / 12},
		{"snow load", s.SnowLoadPSF, MinSnowLoadPSF, MaxSnowLoadPSF},
	}

	for _, c := range checks {
		if c.value < c.min || c.value > c.max {
			return fmt.Errorf("frame: %s %g out of range [%g, %g]", c.name, c.value, c.min, c.max)
		}
	}
	return nil
}

// Geometry holds everything derived from a Spec: member sizes, ridge
// height, and the bent layout. Computed once and read-only afterwards.
type Geometry struct {
	Post   sizing.Size
	Beam   sizing.Size
	Rafter sizing.Size

	RidgeHeightFt float64
	NumBents      int
	BentSpacingFt float64
}

// Design computes the derived geometry for a spec. Posts are sized from
// snow load alone, beams span the building width, and rafters span from
// eave to ridge (half the width). Bents are distributed evenly across
// the exact building length, as close to the ideal spacing as the count
// allows, never fewer than two.
func Design(spec Spec, tables *sizing.Tables) Geometry {
	g := Geometry{
		Post:   tables.PostSize(spec.SnowLoadPSF),
		Beam:   tables.BeamSize(spec.WidthFt, spec.SnowLoadPSF),
		Rafter: tables.RafterSize(spec.WidthFt/2, spec.SnowLoadPSF),
	}

	g.RidgeHeightFt = spec.WallHeightFt + (spec.WidthFt/2)*spec.RoofPitch

	g.NumBents = int(spec.LengthFt/IdealBentSpacingFt) + 1
	if g.NumBents < 2 {
		g.NumBents = 2
	}
	g.BentSpacingFt = spec.LengthFt / float64(g.NumBents-1)

	return g
}

// Materials is the approximate bill of materials for a designed frame.
type Materials struct {
	PostCount   int
	PostLenFt   float64
	BeamCount   int
	BeamLenFt   float64
	RafterCount int
	RafterLenFt float64
	PlateCount  int
	PlateLenFt  float64
}

// Materials computes piece counts and lengths: two posts and two
// rafters per bent, one beam per bent, and wall plates in stock lengths
// for both walls. The rafter length is the true sloped length from eave
// to ridge.
func (g Geometry) Materials(spec Spec) Materials {
	return Materials{
		PostCount:   2 * g.NumBents,
		PostLenFt:   spec.WallHeightFt,
		BeamCount:   g.NumBents,
		BeamLenFt:   spec.WidthFt,
		RafterCount: 2 * g.NumBents,
		RafterLenFt: (spec.WidthFt / 2) / math.Cos(math.Atan(spec.RoofPitch)),
		PlateCount:  int(math.Ceil(spec.LengthFt * 2 / PlateStockFt)),
		PlateLenFt:  PlateStockFt,
	}
}
