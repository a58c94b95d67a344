// core/thermo/conditions.go
package thermo

import (
	"fmt"
	"math"
	"strings"
)

// Conditions is a lightweight holder for the commonly tuned wet-lab knobs.
type Conditions struct {
	PrimerTotalM float64 // total primer concentration, mol/L
	NaM          float64 // monovalent cations, mol/L
	MgM          float64 // magnesium, mol/L
}

// DefaultConditions mirrors a standard PCR mix: 1 µM total primer,
// 50 mM monovalent salt, 1.5 mM Mg2+.
func DefaultConditions() Conditions {
	return Conditions{PrimerTotalM: 1e-6, NaM: 0.05, MgM: 1.5e-3}
}

// EffectiveMonovalent folds Mg2+ into a single Na+-equivalent for the salt
// correction: Na_eff = Na + 3.8*sqrt(Mg). With MgM = 0 this is the identity,
// so purely monovalent buffers are unaffected.
func EffectiveMonovalent(naM, mgM float64) float64 {
	if mgM > 0 {
		return naM + 3.8*math.Sqrt(mgM)
	}
	return naM
}

// ParseConc parses "50mM", "250nM", "3uM" or a bare molar value → mol/L.
func ParseConc(s string) (float64, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	unit := ""
	val := 0.0
	if _, err := fmt.Sscanf(s, "%f%s", &val, &unit); err != nil {
		if _, err2 := fmt.Sscanf(s, "%f", &val); err2 != nil {
			return 0, fmt.Errorf("invalid concentration %q: %w", s, err)
		}
	}
	switch unit {
	case "m", "":
		return val, nil
	case "mm":
		return val * 1e-3, nil
	case "um", "μm":
		return val * 1e-6, nil
	case "nm":
		return val * 1e-9, nil
	default:
		return 0, fmt.Errorf("unknown unit %q in %q", unit, s)
	}
}
