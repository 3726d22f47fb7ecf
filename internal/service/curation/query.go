package curation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/scholarship-curator/internal/domain"
	"github.com/heartmarshall/scholarship-curator/pkg/ctxutil"
)

const defaultHistoryLimit = 20

// GetRecord returns a record with its media.
func (s *Service) GetRecord(ctx context.Context, recordID string) (*domain.ScrapedRecord, error) {
	if recordID == "" {
		return nil, domain.NewValidationError("record_id", "required")
	}
	rec, err := s.records.GetByID(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	return rec, nil
}

// History returns the most recent processing log entries of a record, newest
// first. limit <= 0 means the default.
func (s *Service) History(ctx context.Context, recordID string, limit int) ([]domain.ProcessingLogEntry, error) {
	if recordID == "" {
		return nil, domain.NewValidationError("record_id", "required")
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	entries, err := s.history.Get(ctx, recordID, limit)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	if len(entries) == 0 {
		// Every record has at least its Created entry, so an empty history
		// means the record is unknown.
		if _, err := s.records.GetByID(ctx, recordID); err != nil {
			return nil, fmt.Errorf("get record: %w", err)
		}
	}
	return entries, nil
}

// Purge hard-deletes a record together with its log and media. Admin only.
func (s *Service) Purge(ctx context.Context, recordID string) (err error) {
	defer func() { s.metrics.Transition("purge", err) }()

	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !domain.ActorRole(ctxutil.RoleFromCtx(ctx)).IsAdmin() {
		return domain.ErrForbidden
	}
	if recordID == "" {
		return domain.NewValidationError("record_id", "required")
	}

	if err := s.records.Delete(ctx, recordID); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.ErrorContext(ctx, "purge failed",
				slog.String("record_id", recordID),
				slog.String("error", err.Error()),
			)
		}
		return fmt.Errorf("delete record: %w", err)
	}
	s.history.Invalidate(recordID)

	s.log.InfoContext(ctx, "record purged",
		slog.String("record_id", recordID),
		slog.String("actor", actor),
	)
	return nil
}
