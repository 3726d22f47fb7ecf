package curation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/scholarship-curator/internal/domain"
)

// Publish promotes an Approved record into the catalog. The catalog insert
// runs inside the record's transaction: when the sink refuses, nothing is
// written and the record stays Approved with no catalog id.
func (s *Service) Publish(ctx context.Context, recordID string) (*domain.ScrapedRecord, error) {
	rec, err := s.mutate(ctx, "publish", recordID, func(txCtx context.Context, rec *domain.ScrapedRecord, actor string, now time.Time) (domain.ProcessingLogEntry, error) {
		if !rec.Status.CanPublish() {
			return domain.ProcessingLogEntry{}, domain.NewStateError("publish", rec.ID, rec.Status)
		}

		entry := domain.NewCatalogEntry(rec, actor, now, s.cfg.DefaultDeadline)
		catalogID, err := s.sink.Submit(txCtx, entry)
		if err != nil {
			return domain.ProcessingLogEntry{}, &domain.SinkError{RecordID: rec.ID, Err: err}
		}

		from := rec.Status
		rec.Status = domain.RecordStatusPublished
		rec.PublishedCatalogID = &catalogID

		return domain.ProcessingLogEntry{
			ProcessType:    domain.ProcessTypePublished,
			ProcessDetails: fmt.Sprintf("%s; catalog id %s", transitionDetails(from, rec.Status), catalogID),
		}, nil
	})
	if errors.Is(err, domain.ErrExternalSink) {
		s.metrics.SinkFailure()
		s.log.ErrorContext(ctx, "catalog sink refused record",
			slog.String("record_id", recordID),
			slog.String("error", err.Error()),
		)
	}
	return rec, err
}
