/*
PURPOSE:
  Renders artifact B: the tagged branch that looks up the nearest 1D
  sample for every destination cell.

REQUIREMENTS:
  User-specified:
  - One case guard on the configured tag.
  - i_offset computed once per invocation from the first reference
    cell's physical coordinate, scaled by the domain extent.
  - One clamped assignment per destination id; the min(..., nx-1) clamp
    saturates at the profile's upper edge so no index is ever out of
    range.

  Implementation-discovered:
  - The assignment loop runs over ids 1..numVars-1: the last destination
    id gets a declaration but no assignment, exactly as the upstream
    numbering convention has it. Keep the bound as-is.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/runner.go

ERROR HANDLING:
  - None; pure rendering.

IMPLEMENTATION RULES:
  - Same builder style as decl.go.

USAGE:
  text := output.RenderBranch(tag, xScale, numVars, nx)

SELF-HEALING INSTRUCTIONS:
  - If the destination solver renames q_prim_vf or x_cc, update the
    format strings.

RELATED FILES:
  - internal/output/decl.go
  - internal/output/fortran.go

MAINTENANCE:
  - Update when the emitted branch syntax changes.
*/

package output

import (
	"fmt"
	"strings"
)

// RenderBranch renders the lookup branch for destination ids 1..numVars-1.
func RenderBranch(tag int, xScale float64, numVars, nx int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "case (%d)\n", tag)
	fmt.Fprintf(&b, "    i_offset = int(x_cc(0)/%s*%d)\n", doubleLiteral(xScale), nx-1)
	for v := 1; v < numVars; v++ {
		fmt.Fprintf(&b, "    q_prim_vf(%d)%%sf(i, j, 0) = var%d(min(i_offset+i, %d))\n", v, v, nx-1)
	}

	return b.String()
}
