package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	v, err := New("")
	if err != nil {
		t.Fatal(err)
	}
	s, err := Load(v)
	if err != nil {
		t.Fatal(err)
	}
	cfg := s.DesignConfig()
	if cfg.TagLength != 20 || cfg.OffsetShift != 12 || cfg.ToleranceC != 3.0 {
		t.Fatalf("default design config = %+v", cfg)
	}
	if s.Output != "text" {
		t.Fatalf("default output = %q, want text", s.Output)
	}
	cond, err := s.Conditions()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(cond.PrimerTotalM-1e-6) > 1e-18 ||
		math.Abs(cond.NaM-0.05) > 1e-12 ||
		math.Abs(cond.MgM-1.5e-3) > 1e-12 {
		t.Fatalf("default conditions = %+v", cond)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("HEADLOOP_DESIGN_TAG_LENGTH", "18")
	t.Setenv("HEADLOOP_REACTION_NA", "100mM")
	v, err := New("")
	if err != nil {
		t.Fatal(err)
	}
	s, err := Load(v)
	if err != nil {
		t.Fatal(err)
	}
	if s.Design.TagLength != 18 {
		t.Fatalf("env tag-length ignored: %d", s.Design.TagLength)
	}
	cond, err := s.Conditions()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(cond.NaM-0.1) > 1e-12 {
		t.Fatalf("env na ignored: %g", cond.NaM)
	}
}

func TestSettingsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "headloop.yaml")
	body := []byte("design:\n  tolerance: 2.5\noutput: json\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}
	v, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	s, err := Load(v)
	if err != nil {
		t.Fatal(err)
	}
	if s.Design.ToleranceC != 2.5 || s.Output != "json" {
		t.Fatalf("file settings not applied: %+v", s)
	}
	// Untouched keys keep defaults.
	if s.Design.TagLength != 20 {
		t.Fatalf("file load clobbered defaults: %+v", s.Design)
	}
}

func TestBadConcentration(t *testing.T) {
	s := Settings{Reaction: ReactionSettings{PrimerConc: "1uM", Na: "soup", Mg: "1.5mM"}}
	if _, err := s.Conditions(); err == nil {
		t.Fatal("expected error for unparsable salt concentration")
	}
}

func TestMissingExplicitFile(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("explicitly named config file must exist")
	}
}
