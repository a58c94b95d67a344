package pretty

import (
	"strings"
	"testing"

	"headloop-core/headloop"
)

func TestWarning(t *testing.T) {
	ok := headloop.TagResult{WithinTolerance: true}
	if w := Warning("forward", ok, 3); w != "" {
		t.Fatalf("within tolerance should not warn: %q", w)
	}
	bad := headloop.TagResult{DiffC: 4.35}
	w := Warning("forward", bad, 3)
	if w != "WARNING: Could not optimise forward headloop tag (Tm difference > 3°C)" {
		t.Fatalf("warning wording changed: %q", w)
	}
}

func TestSide(t *testing.T) {
	p := headloop.TaggedPrimer{
		Seq:      "GGTGCAGGTACGTCCTGTAGAGCCAAATGCTTCTTGCTCTTTT",
		Primer:   "AGCCAAATGCTTCTTGCTCTTTT",
		PrimerTm: 64.62,
		Tag: headloop.TagResult{
			Candidate:       headloop.Candidate{Seq: "GGTGCAGGTACGTCCTGTAG", Complement: true, Tm: 64.93},
			DiffC:           0.31,
			WithinTolerance: true,
		},
	}
	s := Side("reverse", p, 3)
	for _, want := range []string{"reverse headloop primer:", p.Seq, "reverse-complement"} {
		if !strings.Contains(s, want) {
			t.Errorf("block missing %q:\n%s", want, s)
		}
	}
	if strings.Contains(s, "WARNING") {
		t.Errorf("unexpected warning in block:\n%s", s)
	}
}
