package frame

import (
	"fmt"
	"strings"
)

// Report renders the fixed-layout design summary for a spec and its
// derived geometry. Pure formatting; calling it twice yields identical
// output.
func Report(spec Spec, g Geometry) string {
	m := g.Materials(spec)

	var b strings.Builder

	b.WriteString("╔══════════════════════════════════════════════════════════════╗\n")
	b.WriteString("║           TIMBER FRAME STRUCTURE DESIGN REPORT               ║\n")
	b.WriteString("╚══════════════════════════════════════════════════════════════╝\n")
	b.WriteString("\n")

	b.WriteString("BUILDING DIMENSIONS:\n")
	fmt.Fprintf(&b, "  Length:        %g ft\n", spec.LengthFt)
	fmt.Fprintf(&b, "  Width:         %g ft\n", spec.WidthFt)
	fmt.Fprintf(&b, "  Wall Height:   %g ft\n", spec.WallHeightFt)
	fmt.Fprintf(&b, "  Ridge Height:  %.1f ft\n", g.RidgeHeightFt)
	fmt.Fprintf(&b, "  Roof Pitch:    %.0f/12\n", spec.RoofPitch*12)
	b.WriteString("\n")

	b.WriteString("DESIGN LOADS:\n")
	fmt.Fprintf(&b, "  Snow Load:     %g psf\n", spec.SnowLoadPSF)
	b.WriteString("\n")

	b.WriteString("STRUCTURAL MEMBERS:\n")
	fmt.Fprintf(&b, "  Posts:         %s\n", g.Post)
	fmt.Fprintf(&b, "  Beams:         %s\n", g.Beam)
	fmt.Fprintf(&b, "  Rafters:       %s\n", g.Rafter)
	b.WriteString("\n")

	b.WriteString("FRAME LAYOUT:\n")
	fmt.Fprintf(&b, "  Number of Bents: %d\n", g.NumBents)
	fmt.Fprintf(&b, "  Bent Spacing:    %.1f ft on center\n", g.BentSpacingFt)
	b.WriteString("\n")

	b.WriteString("MATERIAL REQUIREMENTS (Approximate):\n")
	fmt.Fprintf(&b, "  Posts:         %d pieces @ %g ft\n", m.PostCount, m.PostLenFt)
	fmt.Fprintf(&b, "  Beams:         %d pieces @ %g ft\n", m.BeamCount, m.BeamLenFt)
	fmt.Fprintf(&b, "  Rafters:       %d pieces @ %.1f ft\n", m.RafterCount, m.RafterLenFt)
	fmt.Fprintf(&b, "  Plates:        %d pieces @ %g ft (both walls)\n", m.PlateCount, m.PlateLenFt)
	b.WriteString("\n")

	b.WriteString("NOTE: This is a preliminary design. Consult a licensed structural\n")
	b.WriteString("engineer for final design and local building code compliance.\n")

	return b.String()
}
