package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCaseDir builds a case directory with the given D/ files.
func newCaseDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "D"), 0755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "D", name), []byte(content), 0644))
	}
	return dir
}

func TestOpen_MissingDataDir(t *testing.T) {
	_, err := Open(t.TempDir())
	assert.Error(t, err)
}

func TestLoadVariable_AndValues(t *testing.T) {
	dir := newCaseDir(t, map[string]string{
		"prim.1.000000.dat": "0.0e+00 1.5\n1.0e-04 2.5\n2.0e-04 3.5\n",
	})
	c, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, c.LoadVariable(1))

	vals, err := c.Values(0, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5, 3.5}, vals)
}

func TestLoadVariable_SnapshotsSortedByStep(t *testing.T) {
	// Deliberately written out of lexical order vs numeric order.
	dir := newCaseDir(t, map[string]string{
		"prim.1.000100.dat": "0.0 100.0\n",
		"prim.1.000002.dat": "0.0 2.0\n",
		"prim.1.000030.dat": "0.0 30.0\n",
	})
	c, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, c.LoadVariable(1))

	count, err := c.SnapshotCount(1)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	for probe, want := range []float64{2, 30, 100} {
		vals, err := c.Values(probe, 1)
		require.NoError(t, err)
		assert.Equal(t, []float64{want}, vals, "probe %d", probe)
	}
}

func TestLoadVariable_AcceptsProcessorField(t *testing.T) {
	// Multi-rank post-process layout: prim.<id>.<proc>.<step>.dat.
	dir := newCaseDir(t, map[string]string{
		"prim.2.00.014694.dat": "0.0 7.25\n",
	})
	c, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, c.LoadVariable(2))

	vals, err := c.Values(0, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{7.25}, vals)
}

func TestLoadVariable_Missing(t *testing.T) {
	dir := newCaseDir(t, map[string]string{
		"prim.1.000000.dat": "0.0 1.0\n",
	})
	c, err := Open(dir)
	require.NoError(t, err)

	err = c.LoadVariable(7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "variable 7")
}

func TestLoadVariable_MalformedSample(t *testing.T) {
	dir := newCaseDir(t, map[string]string{
		"prim.1.000000.dat": "0.0 1.0\n1.0 not-a-number\n",
	})
	c, err := Open(dir)
	require.NoError(t, err)

	err = c.LoadVariable(1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-a-number")
}

func TestValues_ProbeOutOfRange(t *testing.T) {
	dir := newCaseDir(t, map[string]string{
		"prim.1.000000.dat": "0.0 1.0\n",
	})
	c, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, c.LoadVariable(1))

	_, err = c.Values(3, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")

	_, err = c.Values(-1, 1)
	assert.Error(t, err)
}

func TestValues_NotLoaded(t *testing.T) {
	dir := newCaseDir(t, map[string]string{
		"prim.1.000000.dat": "0.0 1.0\n",
	})
	c, err := Open(dir)
	require.NoError(t, err)

	_, err = c.Values(0, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not loaded")
}

func TestAvailableVariables(t *testing.T) {
	dir := newCaseDir(t, map[string]string{
		"prim.10.000000.dat": "0.0 1.0\n",
		"prim.2.000000.dat":  "0.0 1.0\n",
		"prim.1.000000.dat":  "0.0 1.0\n",
		"notes.txt":          "ignore me\n",
	})
	c, err := Open(dir)
	require.NoError(t, err)

	ids, err := c.AvailableVariables()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 10}, ids)
}
