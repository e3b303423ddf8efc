/*
PURPOSE:
  Renders artifact A: the static per-variable array declarations block.

REQUIREMENTS:
  User-specified:
  - One real(kind(0d0)) array per destination id, ascending, named var<id>,
    sized 0:nx-1, with the nx samples in index order.
  - Continuation marker (", &") after every element except the last
    (" &"), matching what the downstream build expects to include.
  - Prologue declares the i_offset integer used by artifact B.

  Implementation-discovered:
  - Pure string rendering; the runner owns file I/O so this stays
    trivially testable and byte-deterministic.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/runner.go
  - Consumes: internal/model.Profile

ERROR HANDLING:
  - None; rendering a well-formed profile slice cannot fail.

IMPLEMENTATION RULES:
  - strings.Builder, one pass, no templates (the per-element
    continuation logic reads clearer imperatively).

USAGE:
  text := output.RenderDeclarations(profiles, nx)

SELF-HEALING INSTRUCTIONS:
  - If the downstream include site changes shape, update here and in
    branch.go together.

RELATED FILES:
  - internal/output/branch.go
  - internal/output/fortran.go

MAINTENANCE:
  - Update when the emitted declaration syntax changes.
*/

package output

import (
	"fmt"
	"strings"

	"github.com/daryltucker/profilegen/internal/model"
)

// RenderDeclarations renders the declarations block for profiles in the
// given order. Every profile must have exactly nx samples.
func RenderDeclarations(profiles []model.Profile, nx int) string {
	var b strings.Builder

	b.WriteString("integer :: i_offset\n")
	for _, p := range profiles {
		fmt.Fprintf(&b, "real(kind(0d0)) :: var%d(0:%d) = [ &\n", p.VarID, nx-1)
		for i, v := range p.Samples {
			if i == len(p.Samples)-1 {
				b.WriteString(realLiteral(v) + " &\n")
			} else {
				b.WriteString(realLiteral(v) + ", &\n")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
