// core/headloop/design.go
// Headloop suppression PCR tag design: pick a tag for each primer from
// frameshifted windows of the guide context, minimizing the Tm mismatch
// between tag and primer, then prepend the tags.
//
// The primer on the guide strand receives a reverse-complemented window;
// the opposite primer receives a plain window drawn from the context
// offset a fixed number of bases downstream, so the two hairpins close on
// different footprints of the amplified strand.
package headloop

import (
	"fmt"

	"headloop-core/seq"
	"headloop-core/thermo"
)

// Design constants pinned against the reference tool.
const (
	DefaultTagLength   = 20
	DefaultOffsetShift = 12
	DefaultToleranceC  = 3.0

	// MinFlank is the context length required beyond the tag window, so a
	// frameshift search has room to move.
	MinFlank = 15
)

// Oracle predicts the melting temperature (°C) of a DNA sequence. It must
// be deterministic for identical input.
type Oracle func(sequence string) (float64, error)

// NNOracle adapts the nearest-neighbor model in headloop-core/thermo to
// the Oracle contract under fixed reaction conditions.
func NNOracle(cond thermo.Conditions) Oracle {
	return func(s string) (float64, error) {
		r, err := thermo.Tm(s, cond)
		if err != nil {
			return 0, err
		}
		return r.TmC, nil
	}
}

// Config carries the design parameters. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	TagLength   int     // nt per candidate tag
	OffsetShift int     // context bases skipped before offset-tag windows
	ToleranceC  float64 // max |ΔTm| for a tag to count as matched
}

// DefaultConfig returns the reference parameters: 20 nt tags, 12 nt offset
// shift, 3 °C tolerance.
func DefaultConfig() Config {
	return Config{
		TagLength:   DefaultTagLength,
		OffsetShift: DefaultOffsetShift,
		ToleranceC:  DefaultToleranceC,
	}
}

// TaggedPrimer is one side of a finished design.
type TaggedPrimer struct {
	Seq      string // tag + original primer, 5'→3'
	Primer   string // original primer, normalized
	PrimerTm float64
	Tag      TagResult
}

// Result pairs the two tagged primers. Forward/Reverse always refer to the
// caller's primer roles, independent of guide orientation.
type Result struct {
	Forward TaggedPrimer
	Reverse TaggedPrimer
}

// Design runs the full pipeline: validate inputs, compute the two primer
// Tms, route tag types by orientation, search candidates for each side,
// and assemble tag+primer. Any failure aborts the whole design; a tag
// outside tolerance is reported in the result, not as an error.
func Design(forward, reverse, guideContext string, orient Orientation, cfg Config, oracle Oracle) (Result, error) {
	var res Result

	if cfg.TagLength <= 0 {
		return res, fmt.Errorf("headloop: tag length must be positive, got %d", cfg.TagLength)
	}
	if cfg.OffsetShift < 0 {
		return res, fmt.Errorf("headloop: offset shift must be >= 0, got %d", cfg.OffsetShift)
	}

	fwd, err := seq.Validate(forward)
	if err != nil {
		return res, fmt.Errorf("forward primer: %w", err)
	}
	rev, err := seq.Validate(reverse)
	if err != nil {
		return res, fmt.Errorf("reverse primer: %w", err)
	}
	ctx, err := seq.Validate(guideContext)
	if err != nil {
		return res, fmt.Errorf("guide context: %w", err)
	}
	if len(ctx) < cfg.TagLength+MinFlank {
		return res, fmt.Errorf("%w: %d nt, need >= %d (tag %d + flank %d)",
			ErrInsufficientContext, len(ctx), cfg.TagLength+MinFlank, cfg.TagLength, MinFlank)
	}

	complementFwd, complementRev, err := AssignTagTypes(orient)
	if err != nil {
		return res, err
	}

	fwdTm, err := oracle(fwd)
	if err != nil {
		return res, fmt.Errorf("forward primer Tm: %w", err)
	}
	revTm, err := oracle(rev)
	if err != nil {
		return res, fmt.Errorf("reverse primer Tm: %w", err)
	}

	res.Forward, err = designSide(fwd, fwdTm, ctx, complementFwd, cfg, oracle)
	if err != nil {
		return Result{}, fmt.Errorf("forward side: %w", err)
	}
	res.Reverse, err = designSide(rev, revTm, ctx, complementRev, cfg, oracle)
	if err != nil {
		return Result{}, fmt.Errorf("reverse side: %w", err)
	}
	return res, nil
}

// designSide picks the tag for one primer. Complemented tags search the
// whole context; offset tags search the context past OffsetShift, with the
// winning offset reported relative to the full context.
func designSide(primer string, primerTm float64, ctx string, complement bool, cfg Config, oracle Oracle) (TaggedPrimer, error) {
	searchCtx := ctx
	shift := 0
	if !complement {
		shift = cfg.OffsetShift
		if shift >= len(ctx) {
			return TaggedPrimer{}, fmt.Errorf("%w: offset shift %d >= context %d nt",
				ErrInsufficientContext, shift, len(ctx))
		}
		searchCtx = ctx[shift:]
	}

	cands, err := GenerateCandidates(searchCtx, cfg.TagLength, complement)
	if err != nil {
		return TaggedPrimer{}, err
	}
	tag, err := SelectBest(cands, oracle, primerTm, cfg.ToleranceC)
	if err != nil {
		return TaggedPrimer{}, err
	}
	tag.Offset += shift

	return TaggedPrimer{
		Seq:      tag.Seq + primer,
		Primer:   primer,
		PrimerTm: primerTm,
		Tag:      tag,
	}, nil
}
