/*
PURPOSE:
  Profile Extractor: pulls one spatial profile per destination variable
  id out of the reference dataset at a fixed probe snapshot.

REQUIREMENTS:
  User-specified:
  - Destination ids 1..K; id SyntheticID is synthesized as zeros (that
    field is suppressed at the injection boundary) and shifts the source
    numbering above it down by one.
  - The probe snapshot applies uniformly to every non-synthetic id.
  - All profiles must share nx; a disagreement aborts the run.

  Implementation-discovered:
  - nx is fixed by the first real read; the synthetic profile needs nx,
    so extracting only the synthetic id before any real id is an error.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/runner.go
  - Consumes: the Dataset interface (internal/dataset or a test fake)

ERROR HANDLING:
  - Typed errors (DatasetError, LengthMismatchError) naming the id.

IMPLEMENTATION RULES:
  - No caching across variables; each read goes to the dataset.
  - Keep the id translation in one place (SourceID).

USAGE:
  ex := engine.NewExtractor(ds, probe, syntheticID)
  profiles, err := ex.ExtractAll(numVars)

SELF-HEALING INSTRUCTIONS:
  - If the dataset contract changes, update the Dataset interface and
    internal/dataset together.

RELATED FILES:
  - internal/dataset/case.go
  - internal/model/types.go

MAINTENANCE:
  - Update if the destination numbering scheme gains more synthetic slots.
*/

package engine

import (
	"fmt"
	"math"

	"github.com/daryltucker/profilegen/internal/model"
)

// Dataset is the reference-dataset contract the extractor consumes.
// internal/dataset.Case satisfies it; tests substitute fakes.
type Dataset interface {
	// LoadVariable prepares one source field for access.
	LoadVariable(id int) error
	// Values returns the probe-th snapshot of a loaded field, in
	// spatial index order.
	Values(probe, id int) ([]float64, error)
}

// Extractor extracts per-variable profiles at one probe snapshot.
type Extractor struct {
	ds          Dataset
	probe       int
	syntheticID int

	// nx is established by the first successful real read; zero until then.
	nx int
}

// NewExtractor creates an Extractor.
func NewExtractor(ds Dataset, probe, syntheticID int) *Extractor {
	return &Extractor{
		ds:          ds,
		probe:       probe,
		syntheticID: syntheticID,
	}
}

// SourceID translates a destination id to its source id.
// ok is false for the synthetic id, which has no source counterpart.
func (e *Extractor) SourceID(v int) (src int, ok bool) {
	switch {
	case v == e.syntheticID:
		return 0, false
	case v < e.syntheticID:
		return v, true
	default:
		return v - 1, true
	}
}

// NX returns the established profile length, or zero before the first
// real extraction.
func (e *Extractor) NX() int {
	return e.nx
}

// Extract produces the profile for one destination id.
func (e *Extractor) Extract(v int) (model.Profile, error) {
	src, ok := e.SourceID(v)
	if !ok {
		if e.nx == 0 {
			return model.Profile{}, fmt.Errorf("variable %d is synthetic but nx is not established yet", v)
		}
		return model.Profile{VarID: v, Samples: make([]float64, e.nx)}, nil
	}

	if err := e.ds.LoadVariable(src); err != nil {
		return model.Profile{}, &DatasetError{VarID: v, Probe: e.probe, Err: err}
	}
	samples, err := e.ds.Values(e.probe, src)
	if err != nil {
		return model.Profile{}, &DatasetError{VarID: v, Probe: e.probe, Err: err}
	}
	if len(samples) == 0 {
		return model.Profile{}, &DatasetError{VarID: v, Probe: e.probe, Err: fmt.Errorf("empty profile")}
	}
	for i, s := range samples {
		// NaN/Inf have no Fortran literal form; the artifact would not compile.
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return model.Profile{}, &DatasetError{VarID: v, Probe: e.probe,
				Err: fmt.Errorf("non-finite sample %v at index %d", s, i)}
		}
	}

	if e.nx == 0 {
		e.nx = len(samples)
	} else if len(samples) != e.nx {
		return model.Profile{}, &LengthMismatchError{VarID: v, Got: len(samples), Want: e.nx}
	}

	return model.Profile{VarID: v, Samples: samples}, nil
}

// ExtractAll walks destination ids 1..numVars in ascending order.
// The ascending order guarantees nx is established before the synthetic
// id is reached (the synthetic slot is never id 1 in practice).
func (e *Extractor) ExtractAll(numVars int) ([]model.Profile, error) {
	profiles := make([]model.Profile, 0, numVars)
	for v := 1; v <= numVars; v++ {
		p, err := e.Extract(v)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}
