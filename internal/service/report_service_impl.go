package service

import (
	"context"
	"fmt"
	"time"

	"github.com/danielgrim/tempora/internal/domain"
	"github.com/danielgrim/tempora/internal/report"
	"github.com/danielgrim/tempora/internal/repository"
)

type reportService struct {
	entries  repository.EntryRepo
	observer UseCaseObserver
}

// NewReportService creates the report aggregator over closed entries.
func NewReportService(entries repository.EntryRepo, observers ...UseCaseObserver) ReportService {
	return &reportService{
		entries:  entries,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *reportService) Generate(ctx context.Context, userID, workspaceID string, start, end time.Time) (rep *Report, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "report-generate",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"user_id": userID, "workspace_id": workspaceID},
		})
	}()

	entries, err := s.fetch(ctx, userID, workspaceID, start, end)
	if err != nil {
		return nil, err
	}
	return &Report{
		Entries: entries,
		Summary: report.Summarize(entries),
	}, nil
}

func (s *reportService) ExportCSV(ctx context.Context, userID, workspaceID string, start, end time.Time) (out string, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "report-export-csv",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"user_id": userID, "workspace_id": workspaceID},
		})
	}()

	entries, err := s.fetch(ctx, userID, workspaceID, start, end)
	if err != nil {
		return "", err
	}
	return report.GenerateCSV(entries), nil
}

func (s *reportService) fetch(ctx context.Context, userID, workspaceID string, start, end time.Time) ([]*domain.EntryDetail, error) {
	if err := requireScope(userID, workspaceID); err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: report range end precedes start", domain.ErrValidation)
	}
	entries, err := s.entries.ListClosedInRange(ctx, userID, workspaceID, start, end)
	if err != nil {
		return nil, classify(err)
	}
	return entries, nil
}
