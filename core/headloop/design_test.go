package headloop

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"headloop-core/seq"
	"headloop-core/thermo"
)

func nn(t *testing.T) Oracle {
	t.Helper()
	return NNOracle(thermo.DefaultConditions())
}

// Documented example: guide on the reverse-primer strand, so the reverse
// primer takes the reverse-complemented tag and the forward primer the
// offset tag.
func TestDesign_WorkedExample(t *testing.T) {
	const (
		fwd = "CTGGTCCAGTGCGTTATTGG"
		rev = "AGCCAAATGCTTCTTGCTCTTTT"
		ctx = "CTACAGGACGTACCTGCACCCGGATTCACCAGCGCCCG"
	)
	res, err := Design(fwd, rev, ctx, OrientationReverse, DefaultConfig(), nn(t))
	if err != nil {
		t.Fatal(err)
	}

	if got, want := res.Forward.Tag.Seq, "CCTGCACCCGGATTCACCAG"; got != want {
		t.Errorf("forward tag = %q, want %q", got, want)
	}
	if res.Forward.Seq != "CCTGCACCCGGATTCACCAG"+fwd {
		t.Errorf("forward sequence = %q, want tag+primer", res.Forward.Seq)
	}
	if res.Forward.Tag.Offset != 12 || res.Forward.Tag.Complement {
		t.Errorf("forward tag offset=%d complement=%v, want 12/false",
			res.Forward.Tag.Offset, res.Forward.Tag.Complement)
	}
	if res.Forward.Tag.WithinTolerance {
		t.Error("forward tag should be flagged outside tolerance")
	}
	if want := 68.34914429878239; math.Abs(res.Forward.Tag.Tm-want) > 1e-6 {
		t.Errorf("forward tag Tm = %.8f, want %.8f", res.Forward.Tag.Tm, want)
	}

	if got, want := res.Reverse.Tag.Seq, "GGTGCAGGTACGTCCTGTAG"; got != want {
		t.Errorf("reverse tag = %q, want %q", got, want)
	}
	if res.Reverse.Seq != "GGTGCAGGTACGTCCTGTAG"+rev {
		t.Errorf("reverse sequence = %q, want tag+primer", res.Reverse.Seq)
	}
	if res.Reverse.Tag.Offset != 0 || !res.Reverse.Tag.Complement {
		t.Errorf("reverse tag offset=%d complement=%v, want 0/true",
			res.Reverse.Tag.Offset, res.Reverse.Tag.Complement)
	}
	if !res.Reverse.Tag.WithinTolerance {
		t.Error("reverse tag should be within tolerance")
	}
	if want := 64.62357070642116; math.Abs(res.Reverse.PrimerTm-want) > 1e-6 {
		t.Errorf("reverse primer Tm = %.8f, want %.8f", res.Reverse.PrimerTm, want)
	}
}

// tbx16_AA from Kroll et al. 2021 (eLife 10:e59683), guide antisense.
func TestDesign_Tbx16Example(t *testing.T) {
	res, err := Design(
		"AGGTTATTTGCTGTCATGGCTTTG",
		"ACTTTCACATCATTCCACTGG",
		"ACCATCATGTGCTGGACGTCCGGATTGATGGAGCG",
		OrientationReverse, DefaultConfig(), nn(t))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := res.Forward.Tag.Seq, "GGACGTCCGGATTGATGGAG"; got != want {
		t.Errorf("forward tag = %q, want %q", got, want)
	}
	if res.Forward.Tag.Offset != 13 || !res.Forward.Tag.WithinTolerance {
		t.Errorf("forward tag offset=%d within=%v, want 13/true",
			res.Forward.Tag.Offset, res.Forward.Tag.WithinTolerance)
	}
	if got, want := res.Reverse.Tag.Seq, "CTCCATCAATCCGGACGTCC"; got != want {
		t.Errorf("reverse tag = %q, want %q", got, want)
	}
	if res.Reverse.Tag.Offset != 13 || res.Reverse.Tag.WithinTolerance {
		t.Errorf("reverse tag offset=%d within=%v, want 13/false",
			res.Reverse.Tag.Offset, res.Reverse.Tag.WithinTolerance)
	}
}

func TestDesign_Deterministic(t *testing.T) {
	run := func() Result {
		res, err := Design(
			"CTGGTCCAGTGCGTTATTGG", "AGCCAAATGCTTCTTGCTCTTTT",
			"CTACAGGACGTACCTGCACCCGGATTCACCAGCGCCCG",
			OrientationReverse, DefaultConfig(), nn(t))
		if err != nil {
			t.Fatal(err)
		}
		return res
	}
	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical inputs gave different results:\n%+v\n%+v", a, b)
	}
}

func TestDesign_TagPlacement(t *testing.T) {
	fwd := "aggttatttgctgtcatggctttg" // lowercase in, uppercase out
	res, err := Design(fwd, "ACTTTCACATCATTCCACTGG",
		"ACCATCATGTGCTGGACGTCCGGATTGATGGAGCG",
		OrientationForward, DefaultConfig(), nn(t))
	if err != nil {
		t.Fatal(err)
	}
	up := strings.ToUpper(fwd)
	if res.Forward.Seq != res.Forward.Tag.Seq+up {
		t.Fatalf("forward = %q, want %q + %q", res.Forward.Seq, res.Forward.Tag.Seq, up)
	}
	if res.Forward.Primer != up {
		t.Fatalf("forward primer mutated: %q", res.Forward.Primer)
	}
	if res.Reverse.Seq != res.Reverse.Tag.Seq+res.Reverse.Primer {
		t.Fatalf("reverse = %q, want tag+primer", res.Reverse.Seq)
	}
}

// Swapping orientation while swapping primer roles must route the same tag
// types onto the opposite primers.
func TestDesign_OrientationSymmetry(t *testing.T) {
	const (
		p1  = "AGGTTATTTGCTGTCATGGCTTTG"
		p2  = "ACTTTCACATCATTCCACTGG"
		ctx = "ACCATCATGTGCTGGACGTCCGGATTGATGGAGCG"
	)
	a, err := Design(p1, p2, ctx, OrientationReverse, DefaultConfig(), nn(t))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Design(p2, p1, ctx, OrientationForward, DefaultConfig(), nn(t))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.Forward.Tag, b.Reverse.Tag) {
		t.Errorf("offset tag differs after role swap:\n%+v\n%+v", a.Forward.Tag, b.Reverse.Tag)
	}
	if !reflect.DeepEqual(a.Reverse.Tag, b.Forward.Tag) {
		t.Errorf("complemented tag differs after role swap:\n%+v\n%+v", a.Reverse.Tag, b.Forward.Tag)
	}
}

func TestDesign_Exhaustive(t *testing.T) {
	const ctx = "CTACAGGACGTACCTGCACCCGGATTCACCAGCGCCCG"
	cfg := DefaultConfig()
	oracle := nn(t)
	res, err := Design("CTGGTCCAGTGCGTTATTGG", "AGCCAAATGCTTCTTGCTCTTTT",
		ctx, OrientationReverse, cfg, oracle)
	if err != nil {
		t.Fatal(err)
	}
	// The chosen complemented tag beats every one of the L-k+1 windows.
	cands, err := GenerateCandidates(ctx, cfg.TagLength, true)
	if err != nil {
		t.Fatal(err)
	}
	if want := len(ctx) - cfg.TagLength + 1; len(cands) != want {
		t.Fatalf("candidate count = %d, want %d", len(cands), want)
	}
	for _, c := range cands {
		tm, err := oracle(c.Seq)
		if err != nil {
			t.Fatal(err)
		}
		if d := math.Abs(tm - res.Reverse.PrimerTm); d < res.Reverse.Tag.DiffC-1e-12 {
			t.Fatalf("candidate at offset %d (diff %g) beats chosen (diff %g)",
				c.Offset, d, res.Reverse.Tag.DiffC)
		}
	}
}

func TestDesign_Errors(t *testing.T) {
	cfg := DefaultConfig()
	oracle := nn(t)
	const (
		fwd = "CTGGTCCAGTGCGTTATTGG"
		rev = "AGCCAAATGCTTCTTGCTCTTTT"
		ctx = "CTACAGGACGTACCTGCACCCGGATTCACCAGCGCCCG"
	)
	t.Run("context too short", func(t *testing.T) {
		_, err := Design(fwd, rev, "ACGTACGTACGTACGTACGT", OrientationReverse, cfg, oracle)
		if !errors.Is(err, ErrInsufficientContext) {
			t.Fatalf("expected ErrInsufficientContext, got %v", err)
		}
	})
	t.Run("ambiguous base", func(t *testing.T) {
		_, err := Design("CTGGTCCAGTGCGTTATTGN", rev, ctx, OrientationReverse, cfg, oracle)
		if !errors.Is(err, seq.ErrInvalidSequence) {
			t.Fatalf("expected ErrInvalidSequence, got %v", err)
		}
	})
	t.Run("bad orientation", func(t *testing.T) {
		_, err := Design(fwd, rev, ctx, Orientation(9), cfg, oracle)
		if !errors.Is(err, ErrInvalidOrientation) {
			t.Fatalf("expected ErrInvalidOrientation, got %v", err)
		}
	})
	t.Run("primer below oracle minimum", func(t *testing.T) {
		_, err := Design("ACGTACG", rev, ctx, OrientationReverse, cfg, oracle)
		if !errors.Is(err, thermo.ErrTooShort) {
			t.Fatalf("expected ErrTooShort, got %v", err)
		}
	})
	t.Run("no partial result on failure", func(t *testing.T) {
		res, err := Design(fwd, "NNNN", ctx, OrientationReverse, cfg, oracle)
		if err == nil {
			t.Fatal("expected error")
		}
		if res != (Result{}) {
			t.Fatalf("failed design must not carry partial results: %+v", res)
		}
	})
	t.Run("tolerance is data not error", func(t *testing.T) {
		res, err := Design(fwd, rev, ctx, OrientationReverse, cfg, oracle)
		if err != nil {
			t.Fatal(err)
		}
		if res.Forward.Tag.WithinTolerance {
			t.Fatal("expected an out-of-tolerance forward tag, still a success")
		}
	})
}
