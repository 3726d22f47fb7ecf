package curation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/scholarship-curator/internal/domain"
	"github.com/heartmarshall/scholarship-curator/pkg/ctxutil"
)

// errNoChange tells mutate that the record is already in the requested shape
// and nothing must be written.
var errNoChange = errors.New("no change")

// change is applied to a locked record. It mutates rec and returns the log
// entry describing the change; ProcessType and ProcessDetails are required,
// the remaining entry fields are filled in by mutate.
type change func(ctx context.Context, rec *domain.ScrapedRecord, actor string, now time.Time) (domain.ProcessingLogEntry, error)

// mutate locks the record, applies fn, and writes the record together with
// exactly one log entry in a single transaction.
func (s *Service) mutate(ctx context.Context, op, recordID string, fn change) (rec *domain.ScrapedRecord, err error) {
	defer func() { s.metrics.Transition(op, err) }()

	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if recordID == "" {
		return nil, domain.NewValidationError("record_id", "required")
	}

	var (
		from    domain.RecordStatus
		changed = true
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var getErr error
		rec, getErr = s.records.GetForUpdate(txCtx, recordID)
		if getErr != nil {
			return fmt.Errorf("get record: %w", getErr)
		}
		from = rec.Status

		now := s.now()
		entry, fnErr := fn(txCtx, rec, actor, now)
		if errors.Is(fnErr, errNoChange) {
			changed = false
			return nil
		}
		if fnErr != nil {
			return fnErr
		}

		rec.UpdatedAt = now
		rec.UpdatedBy = actor
		if err := s.records.Update(txCtx, rec); err != nil {
			return fmt.Errorf("update record: %w", err)
		}

		entry.ID = uuid.NewString()
		entry.RecordID = rec.ID
		entry.ProcessedAt = now
		entry.ProcessedBy = actor
		if err := s.logs.Append(txCtx, entry); err != nil {
			return fmt.Errorf("append log: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logFailure(ctx, op, recordID, actor, err)
		return nil, err
	}

	if changed {
		s.history.Invalidate(recordID)
		s.log.InfoContext(ctx, "record "+op,
			slog.String("record_id", recordID),
			slog.String("actor", actor),
			slog.String("from", from.String()),
			slog.String("status", rec.Status.String()),
		)
	}

	return rec, nil
}

// logFailure logs caller mistakes at Warn and infrastructure failures at Error.
func (s *Service) logFailure(ctx context.Context, op, recordID, actor string, err error) {
	attrs := []any{
		slog.String("record_id", recordID),
		slog.String("actor", actor),
		slog.String("error", err.Error()),
	}
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrValidation):
		s.log.WarnContext(ctx, op+" rejected", attrs...)
	default:
		s.log.ErrorContext(ctx, op+" failed", attrs...)
	}
}

func transitionDetails(from, to domain.RecordStatus) string {
	return fmt.Sprintf("status %s -> %s", from, to)
}
