package app

import (
	"context"
	"fmt"

	"github.com/ssg/trid"
	"github.com/ssg/trid/internal/logger"
	"github.com/ssg/trid/internal/ports/primary"
	"github.com/ssg/trid/internal/ports/secondary"
)

// LedgerServiceImpl implements the LedgerService interface.
type LedgerServiceImpl struct {
	ledgerRepo secondary.LedgerRepository
}

// NewLedgerService creates a new LedgerService with injected dependencies.
func NewLedgerService(ledgerRepo secondary.LedgerRepository) *LedgerServiceImpl {
	return &LedgerServiceImpl{ledgerRepo: ledgerRepo}
}

// ListIssued lists issued numbers. Stored numbers are re-validated; a row
// that no longer parses is reported as an error rather than skipped.
func (s *LedgerServiceImpl) ListIssued(ctx context.Context, filters primary.LedgerFilters) ([]*primary.IssuedNumber, error) {
	if filters.Limit < 0 {
		return nil, fmt.Errorf("limit must not be negative (got %d)", filters.Limit)
	}

	records, err := s.ledgerRepo.List(ctx, secondary.IssuedFilters{
		BatchID: filters.BatchID,
		Limit:   filters.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list issued numbers: %w", err)
	}

	result := make([]*primary.IssuedNumber, 0, len(records))
	for _, r := range records {
		id, err := trid.Parse(r.Number)
		if err != nil {
			return nil, fmt.Errorf("ledger holds invalid number %q: %w", r.Number, err)
		}
		result = append(result, &primary.IssuedNumber{
			ID:        id,
			BatchID:   r.BatchID,
			CreatedAt: r.CreatedAt,
		})
	}
	return result, nil
}

// CountIssued returns how many numbers have been issued.
func (s *LedgerServiceImpl) CountIssued(ctx context.Context) (int, error) {
	n, err := s.ledgerRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count issued numbers: %w", err)
	}
	return n, nil
}

// ClearIssued forgets all issued numbers.
func (s *LedgerServiceImpl) ClearIssued(ctx context.Context) (int, error) {
	n, err := s.ledgerRepo.Clear(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear ledger: %w", err)
	}
	log := logger.Ctx(ctx)
	log.Info().Int("removed", n).Msg("cleared ledger")
	return n, nil
}
