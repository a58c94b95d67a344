// core/thermo/nn.go
// Nearest-neighbor Tm for a primer against its perfect complement
// (SantaLucia unified set). Units: ΔH kcal/mol, ΔS cal/(K·mol), Tm °C.
//
// Steps:
//  1) Sum initiation + per-stack ΔH/ΔS + terminal AT penalties + symmetry.
//  2) Salt correction to ΔS: ΔS(Na_eff) = ΔS(1M) + 0.368*(N-1)*ln(Na_eff),
//     with divalent ions folded into Na_eff (see conditions.go).
//  3) Two-state Tm (K): Tm = ΔH*1000 / (ΔS_Na + R ln(CT/x)) − 273.15.
//
// This package has no deps beyond the stdlib; headloop imports it cleanly.
package thermo

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Rcal is the gas constant in cal/(K·mol).
const Rcal = 1.987

// MinLength is the shortest sequence the two-state model is defined for.
const MinLength = 8

// ErrTooShort marks inputs below MinLength, for which no Tm is defined.
var ErrTooShort = errors.New("thermo: sequence too short for Tm")

// Propagation ΔH (kcal/mol), 1 M Na+. SantaLucia & Hicks (2004), Table 1.
var nnDH = map[string]float64{
	"AA": -7.9, "TT": -7.9, "AT": -7.2, "TA": -7.2,
	"CA": -8.5, "TG": -8.5, "GT": -8.4, "AC": -8.4,
	"CT": -7.8, "AG": -7.8, "GA": -8.2, "TC": -8.2,
	"CG": -10.6, "GC": -9.8, "GG": -8.0, "CC": -8.0,
}

// Propagation ΔS (cal/K·mol), 1 M Na+.
var nnDS = map[string]float64{
	"AA": -22.2, "TT": -22.2, "AT": -20.4, "TA": -21.3,
	"CA": -22.7, "TG": -22.7, "GT": -22.4, "AC": -22.4,
	"CT": -21.0, "AG": -21.0, "GA": -22.2, "TC": -22.2,
	"CG": -27.2, "GC": -24.4, "GG": -19.9, "CC": -19.9,
}

const (
	initDH = 0.2
	initDS = -5.7

	termATDH = 2.2 // once per terminal A·T pair
	termATDS = 6.9

	symmetryDS = -1.4 // self-complementary correction
)

// Result reports the summed thermodynamics and the final Tm.
type Result struct {
	DHkcal float64 // total ΔH (kcal/mol)
	DScal  float64 // total ΔS at 1 M Na+ (cal/K·mol)
	DSNa   float64 // ΔS after salt correction (cal/K·mol)
	TmC    float64 // melting temperature (°C)
}

// Tm computes the duplex melting temperature of seq (5'→3') annealed to its
// perfect complement under cond. Only A/C/G/T bases are accepted.
func Tm(sequence string, cond Conditions) (Result, error) {
	var out Result

	s := strings.ToUpper(sequence)
	if len(s) < MinLength {
		return out, fmt.Errorf("%w: %d nt (min %d)", ErrTooShort, len(s), MinLength)
	}
	if cond.PrimerTotalM <= 0 {
		return out, errors.New("thermo: primer concentration must be > 0")
	}

	dH := initDH
	dS := initDS
	for i := 0; i < len(s)-1; i++ {
		k := s[i : i+2]
		dh, okH := nnDH[k]
		ds, okS := nnDS[k]
		if !okH || !okS {
			return out, fmt.Errorf("thermo: invalid base in %q (need A/C/G/T)", k)
		}
		dH += dh
		dS += ds
	}
	if s[0] == 'A' || s[0] == 'T' {
		dH += termATDH
		dS += termATDS
	}
	if s[len(s)-1] == 'A' || s[len(s)-1] == 'T' {
		dH += termATDH
		dS += termATDS
	}

	x := 4.0
	if isSelfComplementary(s) {
		dS += symmetryDS
		x = 1.0
	}

	naEff := EffectiveMonovalent(cond.NaM, cond.MgM)
	if naEff <= 0 {
		return out, errors.New("thermo: effective monovalent salt must be > 0")
	}
	dSNa := dS + 0.368*float64(len(s)-1)*math.Log(naEff)

	tmK := (dH * 1000.0) / (dSNa + Rcal*math.Log(cond.PrimerTotalM/x))
	out.DHkcal = dH
	out.DScal = dS
	out.DSNa = dSNa
	out.TmC = tmK - 273.15
	return out, nil
}

func isSelfComplementary(s string) bool {
	n := len(s)
	if n%2 != 0 {
		return false
	}
	for i := 0; i < n/2; i++ {
		if !wc(s[i], s[n-1-i]) {
			return false
		}
	}
	return true
}

func wc(a, b byte) bool {
	switch a {
	case 'A':
		return b == 'T'
	case 'C':
		return b == 'G'
	case 'G':
		return b == 'C'
	case 'T':
		return b == 'A'
	default:
		return false
	}
}
