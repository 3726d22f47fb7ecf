package duplicate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/scholarship-curator/internal/config"
	"github.com/heartmarshall/scholarship-curator/internal/domain"
	"github.com/heartmarshall/scholarship-curator/internal/metrics"
)

type candidateRepo interface {
	ListDuplicateCandidates(ctx context.Context, limit int) ([]domain.DuplicateCandidate, error)
	CountDuplicateCandidates(ctx context.Context) (int, error)
}

// Service finds near-identical titles among records still in review.
type Service struct {
	candidates candidateRepo
	metrics    *metrics.Metrics
	cfg        config.CurationConfig
	log        *slog.Logger
}

// NewService creates a new duplicate detection service.
func NewService(log *slog.Logger, candidates candidateRepo, m *metrics.Metrics, cfg config.CurationConfig) *Service {
	return &Service{
		candidates: candidates,
		metrics:    m,
		cfg:        cfg,
		log:        log.With("service", "duplicate"),
	}
}

// Report is the outcome of one scan.
type Report struct {
	Matches []domain.DuplicateMatch
	// WorkingSet is the number of candidate records in the store.
	WorkingSet int
	// Scanned is the number of records that took part in the comparison.
	Scanned int
	// Truncated is set when only the most recently scraped records were
	// compared because the working set exceeded the pairwise limit.
	Truncated bool
	// Capped is set when the match list stopped at the configured maximum.
	Capped bool
	// Blocked is set when the shared-token prefilter was used.
	Blocked bool
}

// Detect scans the working set of non-terminal records. Without full, at most
// DuplicateMaxPairwise records (newest first) are compared pairwise. With full,
// every record is scanned behind a shared-token prefilter.
func (s *Service) Detect(ctx context.Context, full bool) (*Report, error) {
	total, err := s.candidates.CountDuplicateCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("count candidates: %w", err)
	}

	limit := s.cfg.DuplicateMaxPairwise
	if full {
		limit = 0
	}
	cands, err := s.candidates.ListDuplicateCandidates(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	report := &Report{
		WorkingSet: total,
		Scanned:    len(cands),
		Truncated:  !full && total > len(cands),
		Blocked:    full,
	}
	if report.Truncated {
		s.log.WarnContext(ctx, "duplicate scan truncated; pass full=true to scan everything",
			slog.Int("working_set", total),
			slog.Int("scanned", len(cands)),
		)
	}

	m := &matcher{
		threshold: s.cfg.DuplicateThreshold,
		limit:     s.cfg.DuplicateMaxMatches,
		matches:   []domain.DuplicateMatch{},
	}
	if full {
		err = blocked(ctx, cands, s.cfg.DuplicateMaxPairwise, m)
	} else {
		err = pairwise(ctx, cands, m)
	}
	if err != nil {
		return nil, fmt.Errorf("compare titles: %w", err)
	}

	report.Matches = m.matches
	report.Capped = len(m.matches) >= m.limit
	s.metrics.DuplicateScan(report.Scanned, len(report.Matches))

	s.log.InfoContext(ctx, "duplicate scan finished",
		slog.Int("scanned", report.Scanned),
		slog.Int("matches", len(report.Matches)),
		slog.Bool("full", full),
	)

	return report, nil
}
