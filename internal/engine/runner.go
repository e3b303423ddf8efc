/*
PURPOSE:
  High-level runner that orchestrates one generation run.
  Extract all profiles -> render both artifacts -> write both files.

REQUIREMENTS:
  User-specified:
  - Output is a pure function of the dataset, probe, and constants;
    repeated runs produce byte-identical files.
  - No partial output: extraction and rendering complete before the
    first byte hits disk, and a failed second write removes the first
    file again.

  Implementation-discovered:
  - Needs to report progress to CLI.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/dataset, internal/output

ERROR HANDLING:
  - Fails fast on the first extraction or write error; nothing is
    retried and no artifact survives a failed run.

IMPLEMENTATION RULES:
  - Open case -> ExtractAll -> render -> atomic writes, in that order.

USAGE:
  engine.Run(cfg)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/engine/extractor.go

MAINTENANCE:
  - Update if a second destination solver format is ever emitted.
*/

package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/daryltucker/profilegen/internal/config"
	"github.com/daryltucker/profilegen/internal/dataset"
	"github.com/daryltucker/profilegen/internal/model"
	"github.com/daryltucker/profilegen/internal/output"
)

// Run executes one full generation run against the configured case.
func Run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	c, err := dataset.Open(cfg.CaseDir)
	if err != nil {
		return err
	}

	arts, nx, err := Generate(c, cfg)
	if err != nil {
		return err
	}
	output.Logger.Info("Profiles extracted",
		"case", cfg.CaseDir, "variables", cfg.NumVars(), "nx", nx, "probe", cfg.ProbeIndex)

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
	}

	declPath := filepath.Join(cfg.OutputDir, cfg.DeclFile)
	if err := output.WriteFileAtomic(declPath, []byte(arts.Declarations)); err != nil {
		return err
	}

	branchPath := filepath.Join(cfg.OutputDir, cfg.BranchFile)
	if err := output.WriteFileAtomic(branchPath, []byte(arts.Branch)); err != nil {
		// All-or-nothing run: take the completed declarations file back out.
		if rmErr := os.Remove(declPath); rmErr != nil {
			output.Logger.Error("Failed to remove declarations file after branch write failure",
				"path", declPath, "error", rmErr)
		}
		return err
	}

	output.Logger.Info("Artifacts written", "declarations", declPath, "branch", branchPath)
	return nil
}

// Generate extracts every profile and renders both artifacts without
// touching the filesystem. It returns the established nx alongside.
func Generate(ds Dataset, cfg *config.Config) (model.Artifacts, int, error) {
	ex := NewExtractor(ds, cfg.ProbeIndex, cfg.SyntheticID)
	profiles, err := ex.ExtractAll(cfg.NumVars())
	if err != nil {
		return model.Artifacts{}, 0, err
	}

	nx := ex.NX()
	return model.Artifacts{
		Declarations: output.RenderDeclarations(profiles, nx),
		Branch:       output.RenderBranch(cfg.CaseTag, cfg.XScale, cfg.NumVars(), nx),
	}, nx, nil
}
