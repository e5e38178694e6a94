package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ssg/trid/internal/wire"
)

// GenerateCmd returns the generate command
func GenerateCmd() *cobra.Command {
	var (
		unique bool
		seed   uint64
	)

	cmd := &cobra.Command{
		Use:   "generate [count]",
		Short: "Generate valid sample ID numbers",
		Long: `Generate random, checksum-valid Turkish citizenship ID numbers for test data.

Numbers are drawn uniformly from all 900,000,000 possible IDs and printed one
per line. count defaults to default_count from .trid/config.json (1).

With --unique, numbers already issued by an earlier --unique run are skipped
and the new ones are recorded in the ledger (see 'trid ledger').

Examples:
  trid generate               # one number
  trid generate 50            # fifty numbers
  trid generate 5 --seed 42   # same five numbers every run
  trid generate 100 --unique  # never repeats across runs`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count := wire.Config().DefaultCount
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid count %q: must be a number", args[0])
				}
				count = n
			}

			var seedPtr *uint64
			if cmd.Flags().Changed("seed") {
				seedPtr = &seed
			}

			adapter, err := wire.GenerateAdapter(cmd.OutOrStdout(), unique, seedPtr)
			if err != nil {
				return err
			}
			return adapter.Generate(wire.Context(), count, unique)
		},
	}

	cmd.Flags().BoolVarP(&unique, "unique", "u", false, "Skip and record numbers in the issued-number ledger")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for a reproducible sequence")

	return cmd
}
