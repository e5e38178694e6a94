package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ssg/trid/internal/ports/primary"
)

// LedgerAdapter translates CLI ledger operations to LedgerService calls.
type LedgerAdapter struct {
	service primary.LedgerService
	out     io.Writer
}

// NewLedgerAdapter creates a new LedgerAdapter with the given service.
func NewLedgerAdapter(service primary.LedgerService, out io.Writer) *LedgerAdapter {
	return &LedgerAdapter{
		service: service,
		out:     out,
	}
}

// List lists issued numbers.
func (a *LedgerAdapter) List(ctx context.Context, batchID string, limit int) error {
	issued, err := a.service.ListIssued(ctx, primary.LedgerFilters{
		BatchID: batchID,
		Limit:   limit,
	})
	if err != nil {
		return err
	}

	if len(issued) == 0 {
		fmt.Fprintln(a.out, "No issued numbers found")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NUMBER\tBATCH\tISSUED")
	fmt.Fprintln(w, "------\t-----\t------")
	for _, n := range issued {
		fmt.Fprintf(w, "%s\t%s\t%s\n", n.ID, n.BatchID, n.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

// Count prints the number of issued numbers.
func (a *LedgerAdapter) Count(ctx context.Context) error {
	n, err := a.service.CountIssued(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, n)
	return nil
}

// Clear forgets all issued numbers.
func (a *LedgerAdapter) Clear(ctx context.Context) error {
	n, err := a.service.ClearIssued(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Cleared %d issued numbers\n", n)
	return nil
}
