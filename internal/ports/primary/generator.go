// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the outside world drives the application.
package primary

import (
	"context"

	"github.com/ssg/trid"
)

// GeneratorService defines the primary port for sample ID generation.
type GeneratorService interface {
	// Generate produces req.Count valid IDs drawn uniformly from the sequence domain.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// GenerateRequest contains parameters for generating IDs.
type GenerateRequest struct {
	Count int
	// Unique skips numbers already recorded in the ledger and records the
	// new ones under a fresh batch ID.
	Unique bool
}

// GenerateResponse contains the generated IDs in draw order.
type GenerateResponse struct {
	IDs     []trid.ID
	BatchID string // empty unless the request was unique
}
