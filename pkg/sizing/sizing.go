// Package sizing selects timber member cross-sections from reference
// tables keyed on design snow load and member span. The tables follow
// typical timber frame sawn-lumber sizing: posts are sized from snow
// load alone, beams and rafters from a (span, load) category pair.
// Selection is total: inputs beyond the tables fall back to the largest
// (or a fixed conservative) size rather than failing.
package sizing

import "fmt"

// Size is a rectangular member cross-section in inches.
type Size struct {
	WidthIn float64 `yaml:"width"`
	DepthIn float64 `yaml:"depth"`
}

// String renders the size the way it appears on shop drawings, e.g. `8" × 10"`.
func (s Size) String() string {
	return fmt.Sprintf("%g\" × %g\"", s.WidthIn, s.DepthIn)
}

// PostRule maps a half-open snow load range [MinLoadPSF, MaxLoadPSF) to
// a post cross-section.
type PostRule struct {
	MinLoadPSF float64 `yaml:"min_load"`
	MaxLoadPSF float64 `yaml:"max_load"`
	Size       Size    `yaml:",inline"`
}

// SpanLoadRule maps a (span category, load category) pair to a member
// cross-section. A rule covers spans up to SpanFt and loads up to
// LoadPSF; classification rounds inputs up to the smallest category
// that covers them.
type SpanLoadRule struct {
	SpanFt  float64 `yaml:"span"`
	LoadPSF float64 `yaml:"load"`
	Size    Size    `yaml:",inline"`
}

// Tables holds the complete set of member sizing rules. Tables are
// built once (defaults or configuration override) and never mutated;
// the selectors treat them as read-only.
type Tables struct {
	Posts   []PostRule
	Beams   []SpanLoadRule
	Rafters []SpanLoadRule

	// Fallback sizes for (span, load) category pairs absent from the
	// beam and rafter tables.
	BeamFallback   Size
	RafterFallback Size
}

// Default returns the built-in sizing tables, based on typical timber
// frame standards for sawn lumber.
func Default() *Tables {
	return &Tables{
		Posts: []PostRule{
			{MinLoadPSF: 0, MaxLoadPSF: 30, Size: Size{6, 6}},    // light snow load
			{MinLoadPSF: 30, MaxLoadPSF: 50, Size: Size{8, 8}},   // medium snow load
			{MinLoadPSF: 50, MaxLoadPSF: 70, Size: Size{10, 10}}, // heavy snow load
			{MinLoadPSF: 70, MaxLoadPSF: 100, Size: Size{12, 12}},
		},
		Beams: []SpanLoadRule{
			// spans up to 16 feet
			{SpanFt: 16, LoadPSF: 30, Size: Size{6, 10}},
			{SpanFt: 16, LoadPSF: 50, Size: Size{6, 12}},
			{SpanFt: 16, LoadPSF: 70, Size: Size{8, 12}},
			{SpanFt: 16, LoadPSF: 100, Size: Size{8, 14}},
			// spans 16-24 feet
			{SpanFt: 24, LoadPSF: 30, Size: Size{8, 12}},
			{SpanFt: 24, LoadPSF: 50, Size: Size{8, 14}},
			{SpanFt: 24, LoadPSF: 70, Size: Size{10, 14}},
			{SpanFt: 24, LoadPSF: 100, Size: Size{10, 16}},
			// spans 24-32 feet
			{SpanFt: 32, LoadPSF: 30, Size: Size{8, 14}},
			{SpanFt: 32, LoadPSF: 50, Size: Size{10, 16}},
			{SpanFt: 32, LoadPSF: 70, Size: Size{12, 16}},
			{SpanFt: 32, LoadPSF: 100, Size: Size{12, 18}},
			// spans 32-40 feet
			{SpanFt: 40, LoadPSF: 30, Size: Size{10, 16}},
			{SpanFt: 40, LoadPSF: 50, Size: Size{12, 18}},
			{SpanFt: 40, LoadPSF: 70, Size: Size{12, 20}},
			{SpanFt: 40, LoadPSF: 100, Size: Size{14, 20}},
		},
		Rafters: []SpanLoadRule{
			{SpanFt: 16, LoadPSF: 30, Size: Size{4, 8}},
			{SpanFt: 16, LoadPSF: 50, Size: Size{6, 8}},
			{SpanFt: 16, LoadPSF: 70, Size: Size{6, 10}},
			{SpanFt: 16, LoadPSF: 100, Size: Size{6, 12}},
			{SpanFt: 24, LoadPSF: 30, Size: Size{6, 10}},
			{SpanFt: 24, LoadPSF: 50, Size: Size{6, 12}},
			{SpanFt: 24, LoadPSF: 70, Size: Size{8, 12}},
			{SpanFt: 24, LoadPSF: 100, Size: Size{8, 14}},
		},
		BeamFallback:   Size{12, 18},
		RafterFallback: Size{8, 14},
	}
}

// PostSize returns the post cross-section for the given snow load. The
// post rules are scanned in order and the first range containing the
// load wins; loads beyond every range get the largest tabled size.
func (t *Tables) PostSize(loadPSF float64) Size {
	for _, r := range t.Posts {
		if r.MinLoadPSF <= loadPSF && loadPSF < r.MaxLoadPSF {
			return r.Size
		}
	}
	return t.Posts[len(t.Posts)-1].Size
}

// BeamSize returns the beam cross-section for the given span and snow
// load.
func (t *Tables) BeamSize(spanFt, loadPSF float64) Size {
	return lookupSpanLoad(t.Beams, t.BeamFallback, spanFt, loadPSF)
}

// RafterSize returns the rafter cross-section for the given span and
// snow load.
func (t *Tables) RafterSize(spanFt, loadPSF float64) Size {
	return lookupSpanLoad(t.Rafters, t.RafterFallback, spanFt, loadPSF)
}

// lookupSpanLoad classifies span and load into the smallest tabled
// category covering each (boundary values stay in the covering
// category), clamps inputs beyond the tables to the largest category,
// and returns the rule for the resulting pair. Pairs absent from the
// table return the fallback size.
func lookupSpanLoad(rules []SpanLoadRule, fallback Size, spanFt, loadPSF float64) Size {
	spans, loads := categories(rules)
	spanCat := classify(spans, spanFt)
	loadCat := classify(loads, loadPSF)

	for _, r := range rules {
		if r.SpanFt == spanCat && r.LoadPSF == loadCat {
			return r.Size
		}
	}
	return fallback
}

// categories extracts the ascending distinct span and load categories
// from a rule set. Rules are kept in ascending order by construction
// (Validate enforces this for configuration-supplied tables).
func categories(rules []SpanLoadRule) (spans, loads []float64) {
	for _, r := range rules {
		if n := len(spans); n == 0 || spans[n-1] != r.SpanFt {
			spans = append(spans, r.SpanFt)
		}
		if !containsFloat(loads, r.LoadPSF) {
			loads = append(loads, r.LoadPSF)
		}
	}
	return spans, loads
}

// classify rounds v up to the smallest category >= v, or the largest
// category when v exceeds them all.
func classify(cats []float64, v float64) float64 {
	for _, c := range cats {
		if v <= c {
			return c
		}
	}
	return cats[len(cats)-1]
}

func containsFloat(s []float64, v float64) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// Validate checks a table set for use by the selectors: every kind must
// have rules, all sizes must be positive, post ranges must be
// contiguous ascending starting at zero, and span/load categories must
// ascend. Only configuration-supplied tables need this; Default always
// validates.
func (t *Tables) Validate() error {
	if len(t.Posts) == 0 {
		return fmt.Errorf("sizing: post table is empty")
	}
	prevMax := 0.0
	for i, r := range t.Posts {
		if r.Size.WidthIn <= 0 || r.Size.DepthIn <= 0 {
			return fmt.Errorf("sizing: post rule %d has non-positive size %v", i, r.Size)
		}
		if r.MinLoadPSF != prevMax {
			return fmt.Errorf("sizing: post rule %d starts at %g psf, want %g (ranges must be contiguous from 0)", i, r.MinLoadPSF, prevMax)
		}
		if r.MaxLoadPSF <= r.MinLoadPSF {
			return fmt.Errorf("sizing: post rule %d has empty range [%g, %g)", i, r.MinLoadPSF, r.MaxLoadPSF)
		}
		prevMax = r.MaxLoadPSF
	}

	if err := validateSpanLoad("beam", t.Beams); err != nil {
		return err
	}
	if err := validateSpanLoad("rafter", t.Rafters); err != nil {
		return err
	}
	if t.BeamFallback.WidthIn <= 0 || t.BeamFallback.DepthIn <= 0 {
		return fmt.Errorf("sizing: beam fallback size %v is not positive", t.BeamFallback)
	}
	if t.RafterFallback.WidthIn <= 0 || t.RafterFallback.DepthIn <= 0 {
		return fmt.Errorf("sizing: rafter fallback size %v is not positive", t.RafterFallback)
	}
	return nil
}

func validateSpanLoad(kind string, rules []SpanLoadRule) error {
	if len(rules) == 0 {
		return fmt.Errorf("sizing: %s table is empty", kind)
	}
	prev := SpanLoadRule{}
	for i, r := range rules {
		if r.Size.WidthIn <= 0 || r.Size.DepthIn <= 0 {
			return fmt.Errorf("sizing: %s rule %d has non-positive size %v", kind, i, r.Size)
		}
		if r.SpanFt <= 0 || r.LoadPSF <= 0 {
			return fmt.Errorf("sizing: %s rule %d has non-positive category (%g ft, %g psf)", kind, i, r.SpanFt, r.LoadPSF)
		}
		if i > 0 && (r.SpanFt < prev.SpanFt || (r.SpanFt == prev.SpanFt && r.LoadPSF <= prev.LoadPSF)) {
			return fmt.Errorf("sizing: %s rule %d (%g ft, %g psf) is out of order", kind, i, r.SpanFt, r.LoadPSF)
		}
		prev = r
	}
	return nil
}
