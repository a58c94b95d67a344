// Package pretty builds the human-readable presentation of a design:
// warning lines and the annotated text block. The core reports the
// within-tolerance flag as data; the wording lives here only.
package pretty

import (
	"fmt"

	"headloop-core/headloop"
)

// Warning returns the advisory line for one side, or "" when the tag Tm is
// within tolerance. Wording follows the reference tool.
func Warning(side string, tag headloop.TagResult, tolC float64) string {
	if tag.WithinTolerance {
		return ""
	}
	return fmt.Sprintf("WARNING: Could not optimise %s headloop tag (Tm difference > %g°C)", side, tolC)
}

// Side renders one tagged primer as an indented block.
func Side(side string, p headloop.TaggedPrimer, tolC float64) string {
	tagKind := "offset"
	if p.Tag.Complement {
		tagKind = "reverse-complement"
	}
	s := fmt.Sprintf("%s headloop primer:\n  %s\n  tag %s (%s, offset %d)  Tm %.2f°C vs primer %.2f°C  |ΔTm| %.2f°C\n",
		side, p.Seq, p.Tag.Seq, tagKind, p.Tag.Offset, p.Tag.Tm, p.PrimerTm, p.Tag.DiffC)
	if w := Warning(side, p.Tag, tolC); w != "" {
		s += "  " + w + "\n"
	}
	return s
}
