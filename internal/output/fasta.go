// internal/output/fasta.go
package output

import (
	"fmt"
	"io"

	"headloop-core/headloop"
)

// WriteFASTA writes both tagged primers as FASTA records. Record ids follow
// the reference tool ("Sense HL" / "Antisense HL" equivalents).
func WriteFASTA(w io.Writer, r Report) error {
	for _, rec := range []struct {
		id string
		p  headloop.TaggedPrimer
	}{
		{"forward_HL", r.Result.Forward},
		{"reverse_HL", r.Result.Reverse},
	} {
		if _, err := fmt.Fprintf(w,
			">%s tag=%s offset=%d tag_tm=%.2f primer_tm=%.2f within_tolerance=%t\n%s\n",
			rec.id, rec.p.Tag.Seq, rec.p.Tag.Offset, rec.p.Tag.Tm, rec.p.PrimerTm,
			rec.p.Tag.WithinTolerance, rec.p.Seq,
		); err != nil {
			return err
		}
	}
	return nil
}
