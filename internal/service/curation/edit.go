package curation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/scholarship-curator/internal/domain"
)

// UpdateRecord applies reviewer edits to content fields. Fields equal to the
// stored value are ignored; when nothing differs no log entry is written.
func (s *Service) UpdateRecord(ctx context.Context, input UpdateRecordInput) (*domain.ScrapedRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.mutate(ctx, "update", input.RecordID, func(_ context.Context, rec *domain.ScrapedRecord, _ string, _ time.Time) (domain.ProcessingLogEntry, error) {
		if !rec.Status.IsEditable() {
			return domain.ProcessingLogEntry{}, domain.NewStateError("update", rec.ID, rec.Status)
		}

		changed := applyUpdate(rec, input)
		if len(changed) == 0 {
			return domain.ProcessingLogEntry{}, errNoChange
		}

		return domain.ProcessingLogEntry{
			ProcessType:    domain.ProcessTypeUpdated,
			ProcessDetails: "changed " + strings.Join(changed, ", "),
		}, nil
	})
}

// applyUpdate copies the set fields of in onto rec and returns the names of
// the fields whose value actually changed.
func applyUpdate(rec *domain.ScrapedRecord, in UpdateRecordInput) []string {
	var changed []string

	setText := func(name string, dst *string, src *string) {
		if src == nil {
			return
		}
		v := strings.TrimSpace(*src)
		if v != *dst {
			*dst = v
			changed = append(changed, name)
		}
	}
	setDecimal := func(name string, dst **decimal.Decimal, src *decimal.Decimal) {
		if src == nil {
			return
		}
		if *dst == nil || !(*dst).Equal(*src) {
			*dst = ptr(*src)
			changed = append(changed, name)
		}
	}

	setText("title", &rec.Title, in.Title)
	setText("description", &rec.Description, in.Description)
	setText("benefits", &rec.Benefits, in.Benefits)
	setDecimal("monetary_value", &rec.MonetaryValue, in.MonetaryValue)
	if in.ApplicationDeadline != nil &&
		(rec.ApplicationDeadline == nil || !rec.ApplicationDeadline.Equal(*in.ApplicationDeadline)) {
		rec.ApplicationDeadline = ptr(*in.ApplicationDeadline)
		changed = append(changed, "application_deadline")
	}
	setText("requirements", &rec.Requirements, in.Requirements)
	if in.SlotsAvailable != nil && (rec.SlotsAvailable == nil || *rec.SlotsAvailable != *in.SlotsAvailable) {
		rec.SlotsAvailable = ptr(*in.SlotsAvailable)
		changed = append(changed, "slots_available")
	}
	setDecimal("minimum_gpa", &rec.MinimumGPA, in.MinimumGPA)
	setText("required_course", &rec.RequiredCourse, in.RequiredCourse)
	setText("required_university", &rec.RequiredUniversity, in.RequiredUniversity)
	setText("required_year_level", &rec.RequiredYearLevel, in.RequiredYearLevel)
	setText("external_application_url", &rec.ExternalApplicationURL, in.ExternalApplicationURL)
	setText("parsing_notes", &rec.ParsingNotes, in.ParsingNotes)

	return changed
}

// Categorize re-runs the keyword categorizer over the record's current text.
// A "Categorized" entry is written only when the category changes.
func (s *Service) Categorize(ctx context.Context, recordID string) (domain.Category, error) {
	rec, err := s.mutate(ctx, "categorize", recordID, func(_ context.Context, rec *domain.ScrapedRecord, _ string, _ time.Time) (domain.ProcessingLogEntry, error) {
		if !rec.Status.IsEditable() {
			return domain.ProcessingLogEntry{}, domain.NewStateError("categorize", rec.ID, rec.Status)
		}

		category := s.categorizer.CategorizeRecord(rec)
		if category == rec.Category {
			return domain.ProcessingLogEntry{}, errNoChange
		}
		from := rec.Category
		rec.Category = category

		return domain.ProcessingLogEntry{
			ProcessType:    domain.ProcessTypeCategorized,
			ProcessDetails: fmt.Sprintf("category %s -> %s", from, category),
		}, nil
	})
	if err != nil {
		return "", err
	}
	return rec.Category, nil
}

// MarkEnhanced records an LLM second pass over the record. The workflow status
// is left alone; only confidence and the enhanced flag change.
func (s *Service) MarkEnhanced(ctx context.Context, input EnhanceInput) (*domain.ScrapedRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.mutate(ctx, "enhance", input.RecordID, func(_ context.Context, rec *domain.ScrapedRecord, _ string, _ time.Time) (domain.ProcessingLogEntry, error) {
		if !rec.Status.IsEditable() {
			return domain.ProcessingLogEntry{}, domain.NewStateError("enhance", rec.ID, rec.Status)
		}

		rec.IsEnhanced = true
		if input.Confidence != nil {
			rec.ParsingConfidence = *input.Confidence
		}

		u := input.Usage
		details := fmt.Sprintf("tokens prompt=%d completion=%d total=%d mapping=%s",
			u.PromptTokens, u.CompletionTokens, u.TotalTokens, u.MappingVersion)
		if u.Estimated {
			details += " (estimated)"
		}

		return domain.ProcessingLogEntry{
			ProcessType:     domain.ProcessTypeEnhanced,
			ProcessDetails:  details,
			ConfidenceScore: ptr(rec.ParsingConfidence),
			Notes:           input.Notes,
		}, nil
	})
}

// AddMedia appends an image or document to the record's media list.
func (s *Service) AddMedia(ctx context.Context, input AddMediaInput) (*domain.Media, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var media *domain.Media
	_, err := s.mutate(ctx, "add media", input.RecordID, func(txCtx context.Context, rec *domain.ScrapedRecord, _ string, now time.Time) (domain.ProcessingLogEntry, error) {
		if !rec.Status.IsEditable() {
			return domain.ProcessingLogEntry{}, domain.NewStateError("add media", rec.ID, rec.Status)
		}

		media = &domain.Media{
			ID:        uuid.NewString(),
			RecordID:  rec.ID,
			URL:       strings.TrimSpace(input.URL),
			Caption:   input.Caption,
			CreatedAt: now,
		}
		if err := s.records.AddMedia(txCtx, media); err != nil {
			return domain.ProcessingLogEntry{}, fmt.Errorf("add media: %w", err)
		}
		rec.Media = append(rec.Media, *media)

		return domain.ProcessingLogEntry{
			ProcessType:    domain.ProcessTypeMediaAdded,
			ProcessDetails: fmt.Sprintf("media #%d %s", media.Position, media.URL),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return media, nil
}
