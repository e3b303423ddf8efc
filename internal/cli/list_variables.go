/*
PURPOSE:
  Defines the 'list-variables' subcommand.
  Helps debug case layout and variable discovery.

REQUIREMENTS:
  User-specified:
  - List variables available in a reference case.

  Implementation-discovered:
  - Useful validation step before full generation.

ARCHITECTURE INTEGRATION:
  - Calls: internal/dataset.Case

ERROR HANDLING:
  - Prints error if the case directory is wrong.

IMPLEMENTATION RULES:
  - Simple output to stdout.

USAGE:
  profilegen list-variables --case-dir ...

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/dataset/case.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"fmt"
	"os"

	"github.com/daryltucker/profilegen/internal/config"
	"github.com/daryltucker/profilegen/internal/dataset"
	"github.com/spf13/cobra"
)

var listVariablesCmd = &cobra.Command{
	Use:   "list-variables",
	Short: "List variables available in the reference case",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if caseDirOverride != "" {
			cfg.CaseDir = caseDirOverride
		}

		c, err := dataset.Open(cfg.CaseDir)
		if err != nil {
			return err
		}

		ids, err := c.AvailableVariables()
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			fmt.Fprintf(os.Stderr, "No variables found in %s\n", cfg.CaseDir)
			return nil
		}

		fmt.Printf("Case %s:\n", c.Dir())
		for _, id := range ids {
			if err := c.LoadVariable(id); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			count, err := c.SnapshotCount(id)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			nx := 0
			if vals, err := c.Values(0, id); err == nil {
				nx = len(vals)
			}
			fmt.Printf("- prim.%d: %d snapshots, %d samples\n", id, count, nx)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listVariablesCmd)
	listVariablesCmd.Flags().StringVar(&caseDirOverride, "case-dir", "", "Reference case directory")
}
