package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/ssg/trid"
)

// ValidateAdapter checks numbers and reports each result.
// Validation is pure, so it calls the core directly instead of a service.
type ValidateAdapter struct {
	out   io.Writer
	quiet bool
}

// NewValidateAdapter creates a new ValidateAdapter. A quiet adapter only
// reports through its return value.
func NewValidateAdapter(out io.Writer, quiet bool) *ValidateAdapter {
	return &ValidateAdapter{out: out, quiet: quiet}
}

// Validate prints one line per number and returns an error if any is invalid.
func (a *ValidateAdapter) Validate(numbers []string) error {
	failed := 0
	for _, n := range numbers {
		err := trid.Validate(n)
		if err != nil {
			failed++
		}
		if a.quiet {
			continue
		}
		if err == nil {
			fmt.Fprintln(a.out, color.New(color.FgHiGreen).Sprintf("✓ %s", n))
		} else {
			fmt.Fprintln(a.out, color.New(color.FgRed).Sprintf("✗ %q: %s", n, Describe(err, n)))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d numbers invalid", failed, len(numbers))
	}
	return nil
}

// Describe turns a validation error for input into a message for humans.
func Describe(err error, input string) string {
	var charErr *trid.CharacterError
	switch {
	case errors.Is(err, trid.ErrInvalidLength):
		return fmt.Sprintf("must be %d digits, got %d bytes", trid.Length, len(input))
	case errors.As(err, &charErr):
		return fmt.Sprintf("%q at position %d is not a digit", charErr.Char, charErr.Pos+1)
	case errors.Is(err, trid.ErrFirstDigitIsZero):
		return "first digit cannot be zero"
	case errors.Is(err, trid.ErrInvalidFinalChecksum):
		return "final checksum digit does not match"
	case errors.Is(err, trid.ErrInvalidInitialChecksum):
		return "initial checksum digit does not match"
	default:
		return err.Error()
	}
}
