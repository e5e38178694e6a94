package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ssg/trid/internal/wire"
)

var errRequireYes = errors.New("refusing to clear the ledger without --yes")

// LedgerCmd returns the ledger command
func LedgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Inspect numbers issued by 'generate --unique'",
		Long: `The ledger records every number handed out by 'trid generate --unique' so
later runs never repeat one. It lives in ~/.trid/trid.db unless ledger_path
is set in .trid/config.json.`,
	}

	cmd.AddCommand(ledgerListCmd())
	cmd.AddCommand(ledgerCountCmd())
	cmd.AddCommand(ledgerClearCmd())

	return cmd
}

func ledgerListCmd() *cobra.Command {
	var (
		batchID string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List issued numbers, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := wire.LedgerAdapter(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return adapter.List(wire.Context(), batchID, limit)
		},
	}

	cmd.Flags().StringVar(&batchID, "batch", "", "Only show numbers from this batch")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many numbers (0 = all)")

	return cmd
}

func ledgerCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print how many numbers have been issued",
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := wire.LedgerAdapter(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return adapter.Count(wire.Context())
		},
	}
}

func ledgerClearCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Forget all issued numbers",
		Long: `Delete every number from the ledger. Numbers issued before the clear may be
generated again by later --unique runs.

Requires --yes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errRequireYes
			}
			adapter, err := wire.LedgerAdapter(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return adapter.Clear(wire.Context())
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm clearing the ledger")

	return cmd
}
