// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting, but delegate
// business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/ssg/trid/internal/ports/primary"
)

// GenerateAdapter translates CLI generate requests to GeneratorService calls.
type GenerateAdapter struct {
	service primary.GeneratorService
	out     io.Writer
}

// NewGenerateAdapter creates a new GenerateAdapter with the given service.
func NewGenerateAdapter(service primary.GeneratorService, out io.Writer) *GenerateAdapter {
	return &GenerateAdapter{
		service: service,
		out:     out,
	}
}

// Generate prints count IDs, one per line and nothing else, so the output
// can be piped.
func (a *GenerateAdapter) Generate(ctx context.Context, count int, unique bool) error {
	resp, err := a.service.Generate(ctx, primary.GenerateRequest{
		Count:  count,
		Unique: unique,
	})
	if err != nil {
		return fmt.Errorf("failed to generate: %w", err)
	}

	for _, id := range resp.IDs {
		fmt.Fprintln(a.out, id)
	}
	return nil
}
