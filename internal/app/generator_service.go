package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ssg/trid"
	coresample "github.com/ssg/trid/internal/core/sample"
	"github.com/ssg/trid/internal/logger"
	"github.com/ssg/trid/internal/ports/primary"
	"github.com/ssg/trid/internal/ports/secondary"
)

// GeneratorServiceImpl implements the GeneratorService interface.
type GeneratorServiceImpl struct {
	source     secondary.SequenceSource
	ledgerRepo secondary.LedgerRepository // nil disables unique generation
	newBatchID func() string
}

// NewGeneratorService creates a new GeneratorService with injected dependencies.
// ledgerRepo may be nil when unique generation is not needed.
func NewGeneratorService(source secondary.SequenceSource, ledgerRepo secondary.LedgerRepository) *GeneratorServiceImpl {
	return &GeneratorServiceImpl{
		source:     source,
		ledgerRepo: ledgerRepo,
		newBatchID: uuid.NewString,
	}
}

// Generate produces req.Count IDs.
func (s *GeneratorServiceImpl) Generate(ctx context.Context, req primary.GenerateRequest) (*primary.GenerateResponse, error) {
	log := logger.Ctx(ctx)

	// 1. Gather guard context
	ledgerSize := 0
	if req.Unique {
		if s.ledgerRepo == nil {
			return nil, fmt.Errorf("unique generation requires a ledger")
		}
		n, err := s.ledgerRepo.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count issued numbers: %w", err)
		}
		ledgerSize = n
	}

	// 2. Check guard
	guardCtx := coresample.GenerateContext{
		Count:      req.Count,
		Unique:     req.Unique,
		LedgerSize: ledgerSize,
	}
	if result := coresample.CanGenerate(guardCtx); !result.Allowed {
		return nil, result.Error()
	}

	if !req.Unique {
		ids := make([]trid.ID, 0, req.Count)
		for len(ids) < req.Count {
			id, err := s.draw()
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
		log.Debug().Int("count", len(ids)).Msg("generated ids")
		return &primary.GenerateResponse{IDs: ids}, nil
	}

	// 3. Draw until enough unissued numbers are found
	ids, err := s.drawUnique(ctx, req.Count)
	if err != nil {
		return nil, err
	}

	// 4. Record them under one batch, all or nothing
	batchID := s.newBatchID()
	records := make([]*secondary.IssuedRecord, len(ids))
	for i, id := range ids {
		records[i] = &secondary.IssuedRecord{Number: id.String(), BatchID: batchID}
	}
	if err := s.ledgerRepo.RecordBatch(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to record batch %s: %w", batchID, err)
	}

	log.Info().Int("count", len(ids)).Str("batch", batchID).Msg("recorded issued ids")
	return &primary.GenerateResponse{IDs: ids, BatchID: batchID}, nil
}

func (s *GeneratorServiceImpl) drawUnique(ctx context.Context, count int) ([]trid.ID, error) {
	log := logger.Ctx(ctx)

	ids := make([]trid.ID, 0, count)
	seen := make(map[trid.ID]struct{}, count)
	maxAttempts := coresample.MaxAttempts(count)

	for attempts := 0; len(ids) < count; attempts++ {
		if attempts == maxAttempts {
			return nil, fmt.Errorf("gave up after %d draws with %d of %d unique ids", attempts, len(ids), count)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		id, err := s.draw()
		if err != nil {
			return nil, err
		}
		if _, dup := seen[id]; dup {
			log.Debug().Str("id", id.String()).Msg("duplicate draw in batch")
			continue
		}
		issued, err := s.ledgerRepo.Exists(ctx, id.String())
		if err != nil {
			return nil, fmt.Errorf("failed to check ledger: %w", err)
		}
		if issued {
			log.Debug().Str("id", id.String()).Msg("already issued, redrawing")
			continue
		}

		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids, nil
}

func (s *GeneratorServiceImpl) draw() (trid.ID, error) {
	seq := s.source.Next()
	id, err := trid.FromSequence(seq)
	if err != nil {
		return trid.ID{}, fmt.Errorf("sequence source returned %d: %w", seq, err)
	}
	return id, nil
}
