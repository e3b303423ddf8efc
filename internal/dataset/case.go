/*
PURPOSE:
  Reader for a stored reference case directory.
  Implements the load-variable / snapshot-sequence contract the engine
  consumes: prepare a field for access, then index a fixed snapshot.

REQUIREMENTS:
  User-specified:
  - Read the 1D run's post-processed output: one whitespace-column text
    file per variable per saved step under <case>/D/.
  - Deterministic snapshot ordering (sorted by step number).

  Implementation-discovered:
  - File names follow prim.<id>[.<proc>].<step>.dat; the step is the
    second-to-last dot field. The last column of each line is the
    sample value (earlier columns are coordinates).
  - No caching policy needed beyond holding loaded variables in memory;
    each variable is read once per LoadVariable call.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (through the engine.Dataset interface),
    internal/cli (list-variables)
  - Consumes: the reference case directory on disk.

ERROR HANDLING:
  - Every error names the offending variable id, file, or probe index.
  - Malformed sample text aborts the load (no partially parsed fields).

IMPLEMENTATION RULES:
  - bufio line scanning + strconv parsing; no external readers exist for
    this layout.
  - Keep Snapshot a thin view; the Case owns all data.

USAGE:
  c, err := dataset.Open("examples/1D_reactive_shocktube")
  err = c.LoadVariable(1)
  vals, err := c.Values(14694, 1)

SELF-HEALING INSTRUCTIONS:
  - If the post-process layout changes, update parseStep and the glob.

RELATED FILES:
  - internal/engine/extractor.go

MAINTENANCE:
  - Update if the upstream tooling renames its output files.
*/

package dataset

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Case reads variables from a reference case directory.
type Case struct {
	dir  string
	vars map[int]*variable
}

// variable holds one field's snapshots, sorted by step number.
type variable struct {
	steps   []int
	samples [][]float64 // parallel to steps
}

// Snapshot is a view of one saved step across the loaded variables.
type Snapshot struct {
	c     *Case
	probe int
}

// Open validates the case directory and returns a Case.
// No data is read until LoadVariable is called.
func Open(dir string) (*Case, error) {
	info, err := os.Stat(filepath.Join(dir, "D"))
	if err != nil {
		return nil, fmt.Errorf("case directory %s has no D/ subdirectory: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("case directory %s: D is not a directory", dir)
	}
	return &Case{
		dir:  dir,
		vars: make(map[int]*variable),
	}, nil
}

// Dir returns the case directory path.
func (c *Case) Dir() string {
	return c.dir
}

// LoadVariable reads every saved step of one source field into memory.
// Loading the same id twice is a no-op.
func (c *Case) LoadVariable(id int) error {
	if _, ok := c.vars[id]; ok {
		return nil
	}

	pattern := filepath.Join(c.dir, "D", fmt.Sprintf("prim.%d.*.dat", id))
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("variable %d: bad glob %s: %w", id, pattern, err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("variable %d: no files match %s", id, pattern)
	}

	v := &variable{}
	byStep := make(map[int][]float64, len(paths))
	for _, path := range paths {
		step, err := parseStep(filepath.Base(path))
		if err != nil {
			return fmt.Errorf("variable %d: %w", id, err)
		}
		samples, err := readSamples(path)
		if err != nil {
			return fmt.Errorf("variable %d: %w", id, err)
		}
		if _, dup := byStep[step]; dup {
			// Multi-rank output would need stitching, not silent overwrite.
			return fmt.Errorf("variable %d: duplicate files for step %d", id, step)
		}
		byStep[step] = samples
		v.steps = append(v.steps, step)
	}

	sort.Ints(v.steps)
	v.samples = make([][]float64, len(v.steps))
	for i, step := range v.steps {
		v.samples[i] = byStep[step]
	}

	c.vars[id] = v
	return nil
}

// Snapshot returns a view of the probe-th saved step.
// Range checking happens lazily in Values, against each variable's own
// snapshot count.
func (c *Case) Snapshot(probe int) (Snapshot, error) {
	if probe < 0 {
		return Snapshot{}, fmt.Errorf("snapshot index %d out of range", probe)
	}
	return Snapshot{c: c, probe: probe}, nil
}

// Values returns the probe-th snapshot of a loaded variable, in spatial
// index order.
func (c *Case) Values(probe, id int) ([]float64, error) {
	s, err := c.Snapshot(probe)
	if err != nil {
		return nil, err
	}
	return s.Values(id)
}

// Values returns the snapshot's samples for one loaded variable.
func (s Snapshot) Values(id int) ([]float64, error) {
	v, ok := s.c.vars[id]
	if !ok {
		return nil, fmt.Errorf("variable %d not loaded", id)
	}
	if s.probe >= len(v.steps) {
		return nil, fmt.Errorf("variable %d: snapshot index %d out of range (have %d snapshots)",
			id, s.probe, len(v.steps))
	}
	return v.samples[s.probe], nil
}

// AvailableVariables scans the case directory for variable ids with at
// least one saved step, without loading any data.
func (c *Case) AvailableVariables() ([]int, error) {
	paths, err := filepath.Glob(filepath.Join(c.dir, "D", "prim.*.dat"))
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool)
	for _, path := range paths {
		fields := strings.Split(filepath.Base(path), ".")
		if len(fields) < 3 {
			continue
		}
		id, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}
		seen[id] = true
	}

	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

// SnapshotCount returns the number of saved steps for a loaded variable.
func (c *Case) SnapshotCount(id int) (int, error) {
	v, ok := c.vars[id]
	if !ok {
		return 0, fmt.Errorf("variable %d not loaded", id)
	}
	return len(v.steps), nil
}

// parseStep extracts the step number from a post-process file name.
// The step is the second-to-last dot field (prim.<id>[.<proc>].<step>.dat).
func parseStep(name string) (int, error) {
	fields := strings.Split(name, ".")
	if len(fields) < 4 || fields[len(fields)-1] != "dat" {
		return 0, fmt.Errorf("unexpected file name %q", name)
	}
	step, err := strconv.Atoi(fields[len(fields)-2])
	if err != nil {
		return 0, fmt.Errorf("unexpected step in file name %q: %w", name, err)
	}
	return step, nil
}

// readSamples parses one step file. The last whitespace-separated column
// of each non-empty line is the sample value.
func readSamples(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var samples []float64
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		val, err := strconv.ParseFloat(fields[len(fields)-1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad sample %q: %w", path, line, fields[len(fields)-1], err)
		}
		samples = append(samples, val)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%s: no samples", path)
	}
	return samples, nil
}
