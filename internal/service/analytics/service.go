package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/scholarship-curator/internal/config"
	"github.com/heartmarshall/scholarship-curator/internal/domain"
)

type statsRepo interface {
	Totals(ctx context.Context, w domain.ReportWindow) (domain.RecordTotals, error)
	StatusCounts(ctx context.Context) (map[domain.RecordStatus]int, error)
	TopSources(ctx context.Context, limit int) ([]domain.SourceCount, error)
	ConfidenceDistribution(ctx context.Context) (domain.ConfidenceDistribution, error)
	SourcePerformance(ctx context.Context) ([]domain.SourcePerformance, error)
}

// Service computes reporting figures on demand. Nothing is cached.
type Service struct {
	stats statsRepo
	cfg   config.CurationConfig
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates a new analytics service.
func NewService(log *slog.Logger, stats statsRepo, cfg config.CurationConfig) *Service {
	return &Service{
		stats: stats,
		cfg:   cfg,
		log:   log.With("service", "analytics"),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Dashboard loads the independent aggregates concurrently and combines them.
func (s *Service) Dashboard(ctx context.Context) (*domain.DashboardMetrics, error) {
	now := s.now()
	window := domain.NewReportWindow(now)

	var (
		totals   domain.RecordTotals
		statuses map[domain.RecordStatus]int
		sources  []domain.SourceCount
		dist     domain.ConfidenceDistribution
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totals, err = s.stats.Totals(gctx, window)
		if err != nil {
			return fmt.Errorf("totals: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		statuses, err = s.stats.StatusCounts(gctx)
		if err != nil {
			return fmt.Errorf("status counts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		sources, err = s.stats.TopSources(gctx, s.cfg.AnalyticsTopSources)
		if err != nil {
			return fmt.Errorf("top sources: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		dist, err = s.stats.ConfidenceDistribution(gctx)
		if err != nil {
			return fmt.Errorf("confidence distribution: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.log.ErrorContext(ctx, "dashboard failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	return &domain.DashboardMetrics{
		TotalRecords:      totals.Total,
		ScrapedToday:      totals.ScrapedToday,
		ScrapedThisWeek:   totals.ScrapedThisWeek,
		ScrapedLastWeek:   totals.ScrapedLastWeek,
		StatusCounts:      statuses,
		AverageConfidence: totals.AverageConfidence,
		TopSources:        sources,
		Confidence:        dist,
		WeeklyGrowthRate:  domain.GrowthRate(totals.ScrapedThisWeek, totals.ScrapedLastWeek),
		GeneratedAt:       now,
	}, nil
}

// SourcePerformance returns per-source extraction quality, busiest source first.
func (s *Service) SourcePerformance(ctx context.Context) ([]domain.SourcePerformance, error) {
	perf, err := s.stats.SourcePerformance(ctx)
	if err != nil {
		return nil, fmt.Errorf("source performance: %w", err)
	}
	return perf, nil
}

// ConfidenceDistribution buckets all records by parsing confidence.
func (s *Service) ConfidenceDistribution(ctx context.Context) (domain.ConfidenceDistribution, error) {
	dist, err := s.stats.ConfidenceDistribution(ctx)
	if err != nil {
		return domain.ConfidenceDistribution{}, fmt.Errorf("confidence distribution: %w", err)
	}
	return dist, nil
}
