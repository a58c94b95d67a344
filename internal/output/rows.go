// internal/output/rows.go
package output

import (
	"headloop-core/headloop"
	"headloop/internal/pretty"
	"headloop/pkg/api"
)

// TSVHeader is the column line for text/TSV output.
const TSVHeader = "side\tsequence\ttag\ttag_type\toffset\ttag_tm\tprimer_tm\tdiff\twithin_tolerance"

// Report bundles one design run with the inputs the writers echo back.
type Report struct {
	Orientation headloop.Orientation
	Config      headloop.Config
	Result      headloop.Result
}

func toAPIPrimer(side string, p headloop.TaggedPrimer, tolC float64) api.PrimerV1 {
	return api.PrimerV1{
		Seq:      p.Seq,
		Primer:   p.Primer,
		PrimerTm: p.PrimerTm,
		Tag: api.TagV1{
			Seq:             p.Tag.Seq,
			Offset:          p.Tag.Offset,
			Complement:      p.Tag.Complement,
			TmC:             p.Tag.Tm,
			DiffC:           p.Tag.DiffC,
			WithinTolerance: p.Tag.WithinTolerance,
		},
		Warning: pretty.Warning(side, p.Tag, tolC),
	}
}

// ToAPI converts a report to the stable wire schema (v1).
func ToAPI(r Report) api.DesignV1 {
	return api.DesignV1{
		Orientation: r.Orientation.String(),
		TagLength:   r.Config.TagLength,
		ToleranceC:  r.Config.ToleranceC,
		Forward:     toAPIPrimer("forward", r.Result.Forward, r.Config.ToleranceC),
		Reverse:     toAPIPrimer("reverse", r.Result.Reverse, r.Config.ToleranceC),
	}
}
