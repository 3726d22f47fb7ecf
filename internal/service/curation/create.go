package curation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/scholarship-curator/internal/domain"
	"github.com/heartmarshall/scholarship-curator/pkg/ctxutil"
)

// CreateRecord triages and categorizes a candidate and stores it with a
// single "Created" log entry.
func (s *Service) CreateRecord(ctx context.Context, input CreateRecordInput) (rec *domain.ScrapedRecord, err error) {
	defer func() { s.metrics.Transition("create", err) }()

	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	rec = &domain.ScrapedRecord{
		ID:                     uuid.NewString(),
		Title:                  strings.TrimSpace(input.Title),
		Description:            strings.TrimSpace(input.Description),
		Benefits:               strings.TrimSpace(input.Benefits),
		MonetaryValue:          input.MonetaryValue,
		ApplicationDeadline:    input.ApplicationDeadline,
		Requirements:           strings.TrimSpace(input.Requirements),
		SlotsAvailable:         input.SlotsAvailable,
		MinimumGPA:             input.MinimumGPA,
		RequiredCourse:         strings.TrimSpace(input.RequiredCourse),
		RequiredUniversity:     strings.TrimSpace(input.RequiredUniversity),
		RequiredYearLevel:      strings.TrimSpace(input.RequiredYearLevel),
		ExternalApplicationURL: strings.TrimSpace(input.ExternalApplicationURL),
		SourceURL:              strings.TrimSpace(input.SourceURL),
		RawText:                input.RawText,
		ScrapedAt:              input.ScrapedAt.UTC(),
		ParsingConfidence:      input.ParsingConfidence,
		ParsingNotes:           input.ParsingNotes,
		Status:                 s.triage.Status(input.ParsingConfidence),
		CreatedAt:              now,
		UpdatedAt:              now,
		CreatedBy:              actor,
		UpdatedBy:              actor,
	}
	if input.ScrapedAt.IsZero() {
		rec.ScrapedAt = now
	}
	rec.Category = s.categorizer.CategorizeRecord(rec)

	switch rec.Status {
	case domain.RecordStatusApproved:
		rec.ApprovedBy = ptr(actor)
		rec.ApprovedAt = ptr(now)
	case domain.RecordStatusRejected:
		rec.ReviewedBy = ptr(actor)
		rec.ReviewedAt = ptr(now)
	}

	for _, u := range input.MediaURLs {
		rec.Media = append(rec.Media, domain.Media{
			ID:        uuid.NewString(),
			URL:       strings.TrimSpace(u),
			CreatedAt: now,
		})
	}

	entry := domain.ProcessingLogEntry{
		ID:          uuid.NewString(),
		RecordID:    rec.ID,
		ProcessedAt: now,
		ProcessType: domain.ProcessTypeCreated,
		ProcessDetails: fmt.Sprintf("triage %s at confidence %.2f; category %s",
			rec.Status, rec.ParsingConfidence, rec.Category),
		ProcessedBy:     actor,
		ConfidenceScore: ptr(rec.ParsingConfidence),
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.records.Create(txCtx, rec); err != nil {
			return fmt.Errorf("create record: %w", err)
		}
		if err := s.logs.Append(txCtx, entry); err != nil {
			return fmt.Errorf("append log: %w", err)
		}
		return nil
	})
	if err != nil {
		s.log.ErrorContext(ctx, "create record failed",
			slog.String("source_url", rec.SourceURL),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.log.InfoContext(ctx, "record created",
		slog.String("record_id", rec.ID),
		slog.String("actor", actor),
		slog.String("status", rec.Status.String()),
		slog.String("category", rec.Category.String()),
		slog.Float64("confidence", rec.ParsingConfidence),
	)

	return rec, nil
}
