package search

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/heartmarshall/scholarship-curator/internal/config"
	"github.com/heartmarshall/scholarship-curator/internal/domain"
)

type recordSearcher interface {
	Search(ctx context.Context, f domain.RecordFilter) ([]domain.ScrapedRecord, error)
	Count(ctx context.Context, f domain.RecordFilter) (int, error)
}

// Service serves filtered record lists for review queues and dashboards.
type Service struct {
	records recordSearcher
	cfg     config.CurationConfig
	log     *slog.Logger
}

// NewService creates a new search service.
func NewService(log *slog.Logger, records recordSearcher, cfg config.CurationConfig) *Service {
	return &Service{
		records: records,
		cfg:     cfg,
		log:     log.With("service", "search"),
	}
}

// Result is one page of records, newest scrape first.
type Result struct {
	Records []domain.ScrapedRecord
	// Total counts all records matching the filter, ignoring limit and offset.
	Total  int
	Limit  int
	Offset int
}

// Search returns the records matching every set criterion. A zero limit
// means the configured default; larger limits are clamped to the maximum.
func (s *Service) Search(ctx context.Context, f domain.RecordFilter) (*Result, error) {
	if err := validateFilter(f); err != nil {
		return nil, err
	}

	switch {
	case f.Limit <= 0:
		f.Limit = s.cfg.SearchDefaultLimit
	case f.Limit > s.cfg.SearchMaxLimit:
		f.Limit = s.cfg.SearchMaxLimit
	}

	records, err := s.records.Search(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("search records: %w", err)
	}

	total := len(records) + f.Offset
	if len(records) == f.Limit || (len(records) == 0 && f.Offset > 0) {
		total, err = s.records.Count(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("count records: %w", err)
		}
	}

	s.log.DebugContext(ctx, "records searched",
		slog.Int("returned", len(records)),
		slog.Int("total", total),
	)

	return &Result{Records: records, Total: total, Limit: f.Limit, Offset: f.Offset}, nil
}

func validateFilter(f domain.RecordFilter) error {
	var errs []domain.FieldError

	if f.Status != nil && !f.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if f.Category != nil && !f.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}
	if f.MinConfidence != nil && (math.IsNaN(*f.MinConfidence) || *f.MinConfidence < 0 || *f.MinConfidence > 1) {
		errs = append(errs, domain.FieldError{Field: "min_confidence", Message: "must be between 0 and 1"})
	}
	if f.ScrapedFrom != nil && f.ScrapedTo != nil && f.ScrapedFrom.After(*f.ScrapedTo) {
		errs = append(errs, domain.FieldError{Field: "scraped_from", Message: "must not be after scraped_to"})
	}
	if f.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if f.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
