package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/danielgrim/tempora/internal/db"
	"github.com/danielgrim/tempora/internal/domain"
	"github.com/danielgrim/tempora/internal/ingest"
	"github.com/danielgrim/tempora/internal/repository"
)

type ingestService struct {
	uow      db.UnitOfWork
	clock    Clock
	observer UseCaseObserver
}

// NewIngestService creates the bulk loader. Every batch runs in one
// transaction through the unit of work.
func NewIngestService(uow db.UnitOfWork, clock Clock, observers ...UseCaseObserver) IngestService {
	if clock == nil {
		clock = SystemClock()
	}
	return &ingestService{
		uow:      uow,
		clock:    clock,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *ingestService) IngestBatch(ctx context.Context, batch ingest.Batch) (result *IngestResult, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "ingest-batch",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"batch_size": len(batch)},
		})
	}()

	if len(batch) == 0 {
		err = fmt.Errorf("%w: batch is empty", domain.ErrValidation)
		return nil, err
	}
	if errs := ingest.ValidateBatch(batch); len(errs) > 0 {
		err = fmt.Errorf("%w: %w", domain.ErrValidation, errors.Join(errs...))
		return nil, err
	}

	converted, err := ingest.Convert(batch, s.clock.Now().UTC())
	if err != nil {
		err = fmt.Errorf("%w: %v", domain.ErrValidation, err)
		return nil, err
	}

	ids := make([]string, 0, len(converted))
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		entries := repository.NewSQLiteEntryRepo(tx)
		for i := range converted {
			entry := &converted[i].Entry
			if txErr := entries.Create(ctx, entry); txErr != nil {
				return fmt.Errorf("inserting batch entry %d: %w", i, txErr)
			}
			if len(converted[i].TagIDs) > 0 {
				if txErr := entries.AttachTags(ctx, entry.ID, converted[i].TagIDs); txErr != nil {
					return fmt.Errorf("linking tags for batch entry %d: %w", i, txErr)
				}
			}
			ids = append(ids, entry.ID)
		}
		return nil
	})
	if err != nil {
		err = classify(err)
		return nil, err
	}

	return &IngestResult{Inserted: len(ids), EntryIDs: ids}, nil
}
