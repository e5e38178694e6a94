package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssg/trid/internal/cli"
	"github.com/ssg/trid/internal/config"
	"github.com/ssg/trid/internal/version"
	"github.com/ssg/trid/internal/wire"
)

func main() {
	var (
		logLevel string
		noColor  bool
	)

	rootCmd := &cobra.Command{
		Use:     "trid",
		Short:   "trid - Turkish citizenship ID number tool",
		Version: version.String(),
		Long: `trid validates Turkish citizenship ID numbers and generates valid sample
numbers for test data.

Configuration is read from .trid/config.json in the current directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			cfg, err := config.LoadConfig(cwd)
			if err != nil {
				return err
			}
			if noColor {
				cfg.NoColor = true
			}
			wire.Init(wire.Options{Config: cfg, LogLevel: logLevel})
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level for diagnostics on stderr (debug, info, warn, error, off)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(cli.GenerateCmd())
	rootCmd.AddCommand(cli.ValidateCmd())
	rootCmd.AddCommand(cli.LedgerCmd())

	err := rootCmd.Execute()
	if cerr := wire.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		if !cli.IsSilent(err) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
