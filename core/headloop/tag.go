// core/headloop/tag.go
package headloop

import (
	"errors"
	"fmt"

	"headloop-core/seq"
)

// ErrInsufficientContext means the guide context cannot yield a single
// candidate window of the configured tag length.
var ErrInsufficientContext = errors.New("headloop: guide context too short")

// Candidate is one fixed-length window of the guide context at a given
// frameshift offset, reverse-complemented when Complement is set.
type Candidate struct {
	Seq        string
	Offset     int
	Complement bool
	Tm         float64
}

// TagResult is the winning candidate for one primer.
type TagResult struct {
	Candidate
	TargetTm        float64 // Tm of the primer the tag attaches to
	DiffC           float64 // |Tm(tag) - TargetTm|
	WithinTolerance bool
}

// GenerateCandidates slides a window of width tagLength one base at a time
// across context, yielding one candidate per offset in ascending order.
// When complement is true each window is reverse-complemented. The context
// must already be validated uppercase A/C/G/T.
func GenerateCandidates(context string, tagLength int, complement bool) ([]Candidate, error) {
	if tagLength <= 0 {
		return nil, fmt.Errorf("headloop: tag length must be positive, got %d", tagLength)
	}
	n := len(context) - tagLength + 1
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d nt for %d nt tags",
			ErrInsufficientContext, len(context), tagLength)
	}
	out := make([]Candidate, 0, n)
	for i := 0; i < n; i++ {
		window := context[i : i+tagLength]
		if complement {
			window = seq.RevComp(window)
		}
		out = append(out, Candidate{Seq: window, Offset: i, Complement: complement})
	}
	return out, nil
}

// SelectBest scores every candidate with the oracle and returns the one
// whose Tm is closest to targetTm. Ties break to the lowest offset, which
// the ascending generation order gives for free. Tm is not monotonic in
// offset, so the scan is exhaustive.
func SelectBest(cands []Candidate, oracle Oracle, targetTm, toleranceC float64) (TagResult, error) {
	if len(cands) == 0 {
		return TagResult{}, fmt.Errorf("%w: no candidates", ErrInsufficientContext)
	}
	best := TagResult{DiffC: -1}
	for _, c := range cands {
		tm, err := oracle(c.Seq)
		if err != nil {
			return TagResult{}, fmt.Errorf("headloop: scoring candidate at offset %d: %w", c.Offset, err)
		}
		c.Tm = tm
		diff := tm - targetTm
		if diff < 0 {
			diff = -diff
		}
		if best.DiffC < 0 || diff < best.DiffC {
			best = TagResult{Candidate: c, TargetTm: targetTm, DiffC: diff}
		}
	}
	best.WithinTolerance = best.DiffC <= toleranceC
	return best, nil
}
