/*
PURPOSE:
  Defines the 'generate' subcommand.
  Executes one full artifact generation run.

REQUIREMENTS:
  User-specified:
  - Run the generation.
  - Specific flags for overrides.

  Implementation-discovered:
  - Need to load config first.
  - Apply flag overrides to config.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Run()
  - Uses: internal/config

ERROR HANDLING:
  - Returns error if config load fails or engine run fails.

IMPLEMENTATION RULES:
  - Setup flags in init().
  - Logic: Load Config -> Override -> Engine.Run.

USAGE:
  profilegen generate --case-dir examples/1D_reactive_shocktube

SELF-HEALING INSTRUCTIONS:
  - Check flag names match Config struct fields generally.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new CLI overrides.
*/

package cli

import (
	"github.com/daryltucker/profilegen/internal/config"
	"github.com/daryltucker/profilegen/internal/engine"
	"github.com/spf13/cobra"
)

var (
	caseDirOverride   string
	probeOverride     int
	outputDirOverride string
	declFileOverride  string
	branchOverride    string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the injection arrays and lookup branch",
	Long: `Reads the configured 1D reference case at a fixed probe snapshot and
writes two Fortran include files:
1. Declarations: one static array per destination variable, holding that
   variable's full spatial profile.
2. Branch: a tagged case block that assigns each destination cell the nearest
   profile sample, with a saturating clamp at the profile's upper edge.

The run is all-or-nothing: a failed extraction or write leaves no output files
behind. Repeated runs against the same case produce byte-identical artifacts.`,
	Example: `  # Run with defaults (uses profilegen.yaml)
  profilegen generate

  # Override the reference case and output directory
  profilegen generate --case-dir ../1D_reactive_shocktube -o ./include

  # Probe a different snapshot
  profilegen generate --probe 9000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Config
		cfg, err := config.Load(cfgFile)
		// If err != nil here, it means user specified a file that didn't load, OR
		// parsing failed. config.Load handles "no file found" by returning defaults.
		if err != nil {
			return err
		}

		// 2. Overrides
		if caseDirOverride != "" {
			cfg.CaseDir = caseDirOverride
		}
		if cmd.Flags().Changed("probe") {
			cfg.ProbeIndex = probeOverride
		}
		if outputDirOverride != "" {
			cfg.OutputDir = outputDirOverride
		}
		if declFileOverride != "" {
			cfg.DeclFile = declFileOverride
		}
		if branchOverride != "" {
			cfg.BranchFile = branchOverride
		}

		// 3. Execution
		return engine.Run(cfg)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&caseDirOverride, "case-dir", "", "Reference case directory (the 1D run)")
	generateCmd.Flags().IntVar(&probeOverride, "probe", 0, "Snapshot index to sample profiles from")
	generateCmd.Flags().StringVarP(&outputDirOverride, "output-dir", "o", "", "Output directory for the generated include files")
	generateCmd.Flags().StringVar(&declFileOverride, "decl-file", "", "File name for the array declarations artifact")
	generateCmd.Flags().StringVar(&branchOverride, "branch-file", "", "File name for the lookup branch artifact")
}
