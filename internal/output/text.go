// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"headloop-core/headloop"
)

// WriteTSV prints one tab-separated line per primer side.
func WriteTSV(w io.Writer, r Report, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, row := range []struct {
		side string
		p    headloop.TaggedPrimer
	}{
		{"forward", r.Result.Forward},
		{"reverse", r.Result.Reverse},
	} {
		tagType := "offset"
		if row.p.Tag.Complement {
			tagType = "revcomp"
		}
		if _, err := fmt.Fprintf(w,
			"%s\t%s\t%s\t%s\t%d\t%.2f\t%.2f\t%.2f\t%t\n",
			row.side, row.p.Seq, row.p.Tag.Seq, tagType, row.p.Tag.Offset,
			row.p.Tag.Tm, row.p.PrimerTm, row.p.Tag.DiffC, row.p.Tag.WithinTolerance,
		); err != nil {
			return err
		}
	}
	return nil
}
