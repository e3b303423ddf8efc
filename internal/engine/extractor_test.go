package engine

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDataset is an in-memory Dataset: one snapshot sequence per source id.
type fakeDataset struct {
	vars    map[int][][]float64
	loaded  map[int]bool
	loadErr map[int]error
}

func newFakeDataset(vars map[int][][]float64) *fakeDataset {
	return &fakeDataset{
		vars:   vars,
		loaded: make(map[int]bool),
	}
}

func (f *fakeDataset) LoadVariable(id int) error {
	if err := f.loadErr[id]; err != nil {
		return err
	}
	if _, ok := f.vars[id]; !ok {
		return fmt.Errorf("variable %d: no files match", id)
	}
	f.loaded[id] = true
	return nil
}

func (f *fakeDataset) Values(probe, id int) ([]float64, error) {
	if !f.loaded[id] {
		return nil, fmt.Errorf("variable %d not loaded", id)
	}
	snaps := f.vars[id]
	if probe < 0 || probe >= len(snaps) {
		return nil, fmt.Errorf("variable %d: snapshot index %d out of range (have %d snapshots)", id, probe, len(snaps))
	}
	return snaps[probe], nil
}

func TestExtractor_SourceID(t *testing.T) {
	ex := NewExtractor(nil, 0, 3)

	cases := []struct {
		v    int
		src  int
		real bool
	}{
		{1, 1, true},
		{2, 2, true},
		{3, 0, false},
		{4, 3, true},
		{5, 4, true},
		{16, 15, true},
	}
	for _, c := range cases {
		src, ok := ex.SourceID(c.v)
		assert.Equal(t, c.real, ok, "v=%d", c.v)
		if c.real {
			assert.Equal(t, c.src, src, "v=%d", c.v)
		}
	}
}

func TestExtractor_ExtractAll(t *testing.T) {
	ds := newFakeDataset(map[int][][]float64{
		1: {{1, 2, 3}},
		2: {{4, 5, 6}},
		3: {{7, 8, 9}},
	})
	ex := NewExtractor(ds, 0, 3)

	profiles, err := ex.ExtractAll(4)
	require.NoError(t, err)
	require.Len(t, profiles, 4)

	assert.Equal(t, []float64{1, 2, 3}, profiles[0].Samples)
	assert.Equal(t, []float64{4, 5, 6}, profiles[1].Samples)
	// Destination 3 is the synthetic zero field.
	assert.Equal(t, []float64{0, 0, 0}, profiles[2].Samples)
	// Destination 4 reads source 3.
	assert.Equal(t, []float64{7, 8, 9}, profiles[3].Samples)

	for i, p := range profiles {
		assert.Equal(t, i+1, p.VarID)
		assert.Equal(t, 3, p.Len())
	}
	assert.Equal(t, 3, ex.NX())
}

func TestExtractor_ProbeSelectsSnapshot(t *testing.T) {
	ds := newFakeDataset(map[int][][]float64{
		1: {{9, 9}, {1, 2}},
	})
	ex := NewExtractor(ds, 1, 3)

	p, err := ex.Extract(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, p.Samples)
}

func TestExtractor_LengthMismatch(t *testing.T) {
	ds := newFakeDataset(map[int][][]float64{
		1: {{1, 2, 3}},
		2: {{4, 5}},
	})
	ex := NewExtractor(ds, 0, 3)

	_, err := ex.ExtractAll(4)
	require.Error(t, err)

	var lm *LengthMismatchError
	require.True(t, errors.As(err, &lm))
	assert.Equal(t, 2, lm.VarID)
	assert.Equal(t, 2, lm.Got)
	assert.Equal(t, 3, lm.Want)
}

func TestExtractor_MissingVariable(t *testing.T) {
	ds := newFakeDataset(map[int][][]float64{
		1: {{1, 2, 3}},
	})
	ex := NewExtractor(ds, 0, 3)

	_, err := ex.Extract(2)
	require.Error(t, err)

	var de *DatasetError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 2, de.VarID)
	assert.Equal(t, 0, de.Probe)
}

func TestExtractor_ProbeOutOfRange(t *testing.T) {
	ds := newFakeDataset(map[int][][]float64{
		1: {{1, 2, 3}},
	})
	ex := NewExtractor(ds, 5, 3)

	_, err := ex.Extract(1)
	require.Error(t, err)

	var de *DatasetError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 1, de.VarID)
	assert.Equal(t, 5, de.Probe)
}

func TestExtractor_NonFiniteSample(t *testing.T) {
	ds := newFakeDataset(map[int][][]float64{
		1: {{1, math.NaN(), 3}},
	})
	ex := NewExtractor(ds, 0, 3)

	_, err := ex.Extract(1)
	require.Error(t, err)

	var de *DatasetError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 1, de.VarID)
	assert.Contains(t, err.Error(), "non-finite")

	ds = newFakeDataset(map[int][][]float64{
		1: {{math.Inf(1)}},
	})
	_, err = NewExtractor(ds, 0, 3).Extract(1)
	assert.Error(t, err)
}

func TestExtractor_SyntheticBeforeAnyRealRead(t *testing.T) {
	ds := newFakeDataset(map[int][][]float64{})
	ex := NewExtractor(ds, 0, 3)

	_, err := ex.Extract(3)
	assert.Error(t, err)
}
