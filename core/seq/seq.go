// core/seq/seq.go
// Strict A/C/G/T sequence utilities. Ambiguity codes are out of scope:
// a tag with an ambiguous base has no single Tm, so validation rejects
// anything outside the 4-letter alphabet, whitespace included.
package seq

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSequence reports a character outside the DNA alphabet.
var ErrInvalidSequence = errors.New("invalid sequence")

var complement = [256]byte{
	'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A',
}

// Normalize uppercases a raw sequence. It does not strip whitespace;
// stray whitespace must surface as a validation error, not vanish.
func Normalize(s string) string { return strings.ToUpper(s) }

// Validate returns the normalized sequence or an error naming the first
// offending character. Empty input is invalid.
func Validate(raw string) (string, error) {
	s := Normalize(raw)
	if s == "" {
		return "", fmt.Errorf("%w: empty sequence", ErrInvalidSequence)
	}
	for i := 0; i < len(s); i++ {
		if complement[s[i]] == 0 {
			return "", fmt.Errorf("%w: base %q at position %d (allowed: A C G T)",
				ErrInvalidSequence, s[i], i+1)
		}
	}
	return s, nil
}

// Comp returns the Watson-Crick complement without reversing.
// Input must already be validated; unknown bytes come back as 'N'.
func Comp(s string) string {
	u := Normalize(s)
	out := make([]byte, len(u))
	for i := 0; i < len(u); i++ {
		c := complement[u[i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return string(out)
}

// RevComp returns the reverse complement.
func RevComp(s string) string {
	n := len(s)
	out := make([]byte, n)
	u := Normalize(s)
	for i := 0; i < n; i++ {
		c := complement[u[n-1-i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return string(out)
}
