// Package analytics runs the aggregate read queries behind the curation dashboard.
package analytics

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/scholarship-curator/internal/adapter/postgres"
	"github.com/heartmarshall/scholarship-curator/internal/domain"
)

// Repo provides aggregate queries over scraped records.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new analytics repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const totalsSQL = `
SELECT count(*),
       count(*) FILTER (WHERE scraped_at >= $1),
       count(*) FILTER (WHERE scraped_at >= $2),
       count(*) FILTER (WHERE scraped_at >= $3 AND scraped_at < $2),
       COALESCE(avg(parsing_confidence), 0)
FROM scraped_records`

const statusCountsSQL = `SELECT status, count(*) FROM scraped_records GROUP BY status`

const topSourcesSQL = `
SELECT source_url, count(*) AS n
FROM scraped_records
GROUP BY source_url
ORDER BY n DESC, source_url
LIMIT $1`

const confidenceSQL = `
SELECT count(*) FILTER (WHERE parsing_confidence >= 0.8),
       count(*) FILTER (WHERE parsing_confidence >= 0.6 AND parsing_confidence < 0.8),
       count(*) FILTER (WHERE parsing_confidence < 0.6)
FROM scraped_records`

// A published record passed approval, so it counts as approved.
const sourcePerformanceSQL = `
SELECT source_url,
       count(*) AS n,
       avg(parsing_confidence),
       count(*) FILTER (WHERE status IN ('APPROVED', 'PUBLISHED')),
       max(scraped_at)
FROM scraped_records
GROUP BY source_url
ORDER BY n DESC, source_url`

// Totals counts all records and those scraped inside each window.
func (r *Repo) Totals(ctx context.Context, w domain.ReportWindow) (domain.RecordTotals, error) {
	var t domain.RecordTotals
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, totalsSQL, w.TodayStart, w.WeekStart, w.LastWeekStart).
		Scan(&t.Total, &t.ScrapedToday, &t.ScrapedThisWeek, &t.ScrapedLastWeek, &t.AverageConfidence)
	if err != nil {
		return domain.RecordTotals{}, postgres.WrapStore(err, "record totals")
	}
	return t, nil
}

// StatusCounts returns the number of records per status. Every status is
// present in the map, zero when no record has it.
func (r *Repo) StatusCounts(ctx context.Context) (map[domain.RecordStatus]int, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, statusCountsSQL)
	if err != nil {
		return nil, postgres.WrapStore(err, "status counts")
	}
	defer rows.Close()

	counts := make(map[domain.RecordStatus]int, len(domain.AllRecordStatuses))
	for _, s := range domain.AllRecordStatuses {
		counts[s] = 0
	}
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, postgres.WrapStore(err, "status counts")
		}
		counts[domain.RecordStatus(status)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.WrapStore(err, "status counts")
	}

	return counts, nil
}

// TopSources returns the most frequent source URLs.
func (r *Repo) TopSources(ctx context.Context, limit int) ([]domain.SourceCount, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, topSourcesSQL, limit)
	if err != nil {
		return nil, postgres.WrapStore(err, "top sources")
	}

	sources, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SourceCount, error) {
		var s domain.SourceCount
		err := row.Scan(&s.SourceURL, &s.Count)
		return s, err
	})
	if err != nil {
		return nil, postgres.WrapStore(err, "top sources")
	}
	return sources, nil
}

// ConfidenceDistribution buckets every record by parsing confidence.
func (r *Repo) ConfidenceDistribution(ctx context.Context) (domain.ConfidenceDistribution, error) {
	var d domain.ConfidenceDistribution
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, confidenceSQL).Scan(&d.High, &d.Medium, &d.Low); err != nil {
		return domain.ConfidenceDistribution{}, postgres.WrapStore(err, "confidence distribution")
	}
	return d, nil
}

// SourcePerformance returns per-source quality figures, busiest source first.
func (r *Repo) SourcePerformance(ctx context.Context) ([]domain.SourcePerformance, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sourcePerformanceSQL)
	if err != nil {
		return nil, postgres.WrapStore(err, "source performance")
	}

	perf, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SourcePerformance, error) {
		var p domain.SourcePerformance
		err := row.Scan(&p.SourceURL, &p.RecordCount, &p.AverageConfidence, &p.ApprovedCount, &p.LastScrapedAt)
		return p, err
	})
	if err != nil {
		return nil, postgres.WrapStore(err, "source performance")
	}
	return perf, nil
}
