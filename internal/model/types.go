/*
PURPOSE:
  Defines the core data structures used throughout profilegen.
  These models represent extracted profiles and rendered artifacts.

REQUIREMENTS:
  User-specified:
  - Record one profile (sample sequence) per destination variable id.
  - Carry both generated text artifacts as plain values until written.

  Implementation-discovered:
  - Samples are plain float64 slices; no tagging needed since the
    artifacts are rendered text, not serialized structs.

ARCHITECTURE INTEGRATION:
  - Used by: internal/engine, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.

USAGE:
  p := model.Profile{VarID: 1, Samples: []float64{...}}

SELF-HEALING INSTRUCTIONS:
  - If new artifact kinds are needed, add a field and update the runner.

RELATED FILES:
  - internal/output/decl.go
  - internal/output/branch.go

MAINTENANCE:
  - Update when the generated output gains new sections.
*/

package model

// Profile holds one destination variable's sampled values along the
// reference axis at a fixed snapshot.
type Profile struct {
	// VarID is the destination solver's variable id (1-based, contiguous).
	VarID int
	// Samples are the nx values in spatial index order (index 0 first).
	Samples []float64
}

// Len returns the number of samples (nx).
func (p Profile) Len() int {
	return len(p.Samples)
}

// Artifacts holds the two rendered text blocks of one generation run.
type Artifacts struct {
	// Declarations is the static per-variable array declarations block.
	Declarations string
	// Branch is the tagged lookup branch with the clamped assignments.
	Branch string
}
