// Package secondary defines the secondary ports (driven adapters) for the application.
package secondary

import (
	"context"
	"errors"
	"time"
)

// ErrAlreadyIssued is returned by Record for a number that is already in the ledger.
var ErrAlreadyIssued = errors.New("number already issued")

// LedgerRepository defines the secondary port for issued-number persistence.
type LedgerRepository interface {
	// Record persists an issued number. Recording a number twice returns ErrAlreadyIssued.
	Record(ctx context.Context, record *IssuedRecord) error

	// RecordBatch persists all records or none of them.
	RecordBatch(ctx context.Context, records []*IssuedRecord) error

	// Exists reports whether number has been issued.
	Exists(ctx context.Context, number string) (bool, error)

	// List retrieves issued numbers matching the filters, newest first.
	List(ctx context.Context, filters IssuedFilters) ([]*IssuedRecord, error)

	// Count returns the number of issued numbers.
	Count(ctx context.Context) (int, error)

	// Clear deletes every issued number and returns how many were deleted.
	Clear(ctx context.Context) (int, error)
}

// IssuedRecord represents an issued number as stored in persistence.
type IssuedRecord struct {
	Number    string
	BatchID   string
	CreatedAt time.Time
}

// IssuedFilters contains filter options for listing issued numbers.
type IssuedFilters struct {
	BatchID string
	Limit   int
}
