/*
PURPOSE:
  Typed failure taxonomy for a generation run.
  Every abort surfaces the offending variable id so a bad reference
  dataset is diagnosable from the error alone.

REQUIREMENTS:
  User-specified:
  - Distinguish dataset-access failures from length mismatches.
  - No silent fallback: the generated arrays feed a solver's initial
    condition and must never degrade quietly.

  Implementation-discovered:
  - errors.As-friendly structs beat sentinel values here because each
    failure carries ids and counts.

ARCHITECTURE INTEGRATION:
  - Used by: internal/engine, internal/cli (error reporting)

ERROR HANDLING:
  - This IS the error handling.

IMPLEMENTATION RULES:
  - Wrap causes; implement Unwrap where there is one.

USAGE:
  var de *engine.DatasetError
  if errors.As(err, &de) { ... de.VarID ... }

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/engine/extractor.go
  - internal/output/atomic.go (write-side failures)

MAINTENANCE:
  - Add types here if new failure classes appear.
*/

package engine

import "fmt"

// DatasetError reports a failed read of one source field at the probe
// snapshot.
type DatasetError struct {
	VarID int // destination variable id being extracted
	Probe int
	Err   error
}

func (e *DatasetError) Error() string {
	return fmt.Sprintf("dataset read failed for variable %d at snapshot %d: %v", e.VarID, e.Probe, e.Err)
}

func (e *DatasetError) Unwrap() error {
	return e.Err
}

// LengthMismatchError reports a field whose sample count disagrees with
// the run's established nx. All downstream array sizes derive from nx,
// so generation aborts before any output is written.
type LengthMismatchError struct {
	VarID int
	Got   int
	Want  int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("variable %d has %d samples, want %d", e.VarID, e.Got, e.Want)
}
