package primary

import (
	"context"
	"time"

	"github.com/ssg/trid"
)

// LedgerService defines the primary port for inspecting issued numbers.
type LedgerService interface {
	// ListIssued lists issued numbers, most recent first.
	ListIssued(ctx context.Context, filters LedgerFilters) ([]*IssuedNumber, error)

	// CountIssued returns how many numbers have been issued.
	CountIssued(ctx context.Context) (int, error)

	// ClearIssued forgets all issued numbers and returns how many were removed.
	ClearIssued(ctx context.Context) (int, error)
}

// LedgerFilters contains filter options for listing issued numbers.
type LedgerFilters struct {
	BatchID string
	Limit   int // 0 means no limit
}

// IssuedNumber represents an issued number at the port boundary.
type IssuedNumber struct {
	ID        trid.ID
	BatchID   string
	CreatedAt time.Time
}
