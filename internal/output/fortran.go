/*
PURPOSE:
  Fortran literal formatting shared by the two artifact renderers.

REQUIREMENTS:
  User-specified:
  - Sample values render at full float64 precision.
  - Integral values must still read as reals (5 -> "5.0"), since the
    declarations initialize a real(kind(0d0)) array.

  Implementation-discovered:
  - strconv's shortest 'g' form is stable and round-trippable; only the
    all-digits case needs the forced decimal point (e-notation already
    reads as a real literal).
  - The domain scale renders in plain decimal with a d0 suffix so it is
    a double-precision literal in the emitted formula.

ARCHITECTURE INTEGRATION:
  - Used by: internal/output/decl.go, internal/output/branch.go

ERROR HANDLING:
  - None; formatting cannot fail.

IMPLEMENTATION RULES:
  - Keep these pure; determinism of the artifacts depends on it.

USAGE:
  realLiteral(5)        // "5.0"
  doubleLiteral(0.12)   // "0.12d0"

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/output/decl.go
  - internal/output/branch.go

MAINTENANCE:
  - None expected; Fortran literal syntax is not going anywhere.
*/

package output

import "strconv"

// realLiteral renders a sample as a Fortran real literal.
func realLiteral(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	for i := 0; i < len(s); i++ {
		if s[i] == '.' || s[i] == 'e' || s[i] == 'E' ||
			s[i] == 'n' || s[i] == 'N' || s[i] == 'i' || s[i] == 'I' {
			return s
		}
	}
	return s + ".0"
}

// doubleLiteral renders a value as a Fortran double-precision literal
// in plain decimal form (no exponent), e.g. 0.12 -> "0.12d0".
func doubleLiteral(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "d0"
}
