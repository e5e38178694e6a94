// Package sample contains the pure business logic for generating sample
// ID numbers. This is part of the Functional Core - no I/O, only pure functions.
package sample

import (
	"fmt"

	"github.com/ssg/trid"
)

// MaxCount is the largest number of IDs a single request may ask for.
const MaxCount = 100_000

// DomainSize is the number of distinct IDs FromSequence can produce.
const DomainSize = trid.SequenceMax - trid.SequenceMin

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// GenerateContext provides context for generation guards.
type GenerateContext struct {
	Count      int
	Unique     bool
	LedgerSize int // numbers already issued; only checked if Unique
}

// CanGenerate evaluates whether a generation request can be served.
// Rules:
// - Count must be between 1 and MaxCount
// - In unique mode, enough unissued numbers must remain
func CanGenerate(ctx GenerateContext) GuardResult {
	if ctx.Count < 1 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("count must be at least 1 (got %d)", ctx.Count),
		}
	}
	if ctx.Count > MaxCount {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("count must not exceed %d (got %d)", MaxCount, ctx.Count),
		}
	}

	if ctx.Unique {
		remaining := DomainSize - ctx.LedgerSize
		if remaining < ctx.Count {
			return GuardResult{
				Allowed: false,
				Reason:  fmt.Sprintf("only %d unissued numbers remain, cannot generate %d. Clear the ledger with: trid ledger clear --yes", remaining, ctx.Count),
			}
		}
	}

	return GuardResult{Allowed: true}
}

// MaxAttempts bounds the number of draws a unique request of count IDs may
// make before giving up.
func MaxAttempts(count int) int {
	return count*10 + 100
}
