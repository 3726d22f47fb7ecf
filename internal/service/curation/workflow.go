package curation

import (
	"context"
	"time"

	"github.com/heartmarshall/scholarship-curator/internal/domain"
)

// StartReview moves a Scraped record to UnderReview and records the reviewer
// who claimed it. Calling it on an UnderReview record re-claims it.
func (s *Service) StartReview(ctx context.Context, recordID string) (*domain.ScrapedRecord, error) {
	return s.mutate(ctx, "review", recordID, func(_ context.Context, rec *domain.ScrapedRecord, actor string, now time.Time) (domain.ProcessingLogEntry, error) {
		if !rec.Status.CanStartReview() {
			return domain.ProcessingLogEntry{}, domain.NewStateError("start review of", rec.ID, rec.Status)
		}
		from := rec.Status
		rec.Status = domain.RecordStatusUnderReview
		rec.ReviewedBy = ptr(actor)
		rec.ReviewedAt = ptr(now)

		return domain.ProcessingLogEntry{
			ProcessType:    domain.ProcessTypeReviewStarted,
			ProcessDetails: transitionDetails(from, rec.Status),
		}, nil
	})
}

// Approve marks a record Approved. Re-approving an Approved record succeeds
// and overwrites the review notes.
func (s *Service) Approve(ctx context.Context, recordID string, notes *string) (*domain.ScrapedRecord, error) {
	if err := validateNotes(notes); err != nil {
		return nil, err
	}
	return s.mutate(ctx, "approve", recordID, func(_ context.Context, rec *domain.ScrapedRecord, actor string, now time.Time) (domain.ProcessingLogEntry, error) {
		if !rec.Status.CanApprove() {
			return domain.ProcessingLogEntry{}, domain.NewStateError("approve", rec.ID, rec.Status)
		}
		from := rec.Status
		rec.Status = domain.RecordStatusApproved
		rec.ApprovedBy = ptr(actor)
		rec.ApprovedAt = ptr(now)
		rec.ReviewedBy = ptr(actor)
		rec.ReviewedAt = ptr(now)
		rec.ReviewNotes = notes

		return domain.ProcessingLogEntry{
			ProcessType:    domain.ProcessTypeApproved,
			ProcessDetails: transitionDetails(from, rec.Status),
			Notes:          notes,
		}, nil
	})
}

// Reject marks a record Rejected. Re-rejecting a Rejected record succeeds
// and overwrites the review notes.
func (s *Service) Reject(ctx context.Context, recordID string, notes *string) (*domain.ScrapedRecord, error) {
	if err := validateNotes(notes); err != nil {
		return nil, err
	}
	return s.mutate(ctx, "reject", recordID, func(_ context.Context, rec *domain.ScrapedRecord, actor string, now time.Time) (domain.ProcessingLogEntry, error) {
		if !rec.Status.CanReject() {
			return domain.ProcessingLogEntry{}, domain.NewStateError("reject", rec.ID, rec.Status)
		}
		from := rec.Status
		rec.Status = domain.RecordStatusRejected
		rec.ReviewedBy = ptr(actor)
		rec.ReviewedAt = ptr(now)
		rec.ReviewNotes = notes

		return domain.ProcessingLogEntry{
			ProcessType:    domain.ProcessTypeRejected,
			ProcessDetails: transitionDetails(from, rec.Status),
			Notes:          notes,
		}, nil
	})
}
