package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ssg/trid/internal/wire"
)

// ValidateCmd returns the validate command
func ValidateCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "validate <number>...",
		Short: "Check Turkish citizenship ID numbers",
		Long: `Check that each argument is a valid Turkish citizenship ID number:
exactly 11 ASCII digits, a non-zero first digit, and both checksum digits
correct. No whitespace or separators are accepted.

Exits non-zero if any number is invalid.

Examples:
  trid validate 76558242278
  trid validate 76558242278 10000000146
  trid validate -q "$ID" && echo ok`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := wire.ValidateAdapter(cmd.OutOrStdout(), quiet).Validate(args)
			if err != nil && quiet {
				return silentError{err}
			}
			return err
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

// silentError fails the command without printing anything.
type silentError struct{ err error }

func (e silentError) Error() string { return e.err.Error() }
func (e silentError) Unwrap() error { return e.err }

// IsSilent reports whether err should cause a non-zero exit without being printed.
func IsSilent(err error) bool {
	var s silentError
	return errors.As(err, &s)
}
