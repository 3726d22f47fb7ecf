// Package processinglog implements the append-only processing log of scraped
// records using PostgreSQL.
package processinglog

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/scholarship-curator/internal/adapter/postgres"
	"github.com/heartmarshall/scholarship-curator/internal/domain"
)

// Repo provides processing log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new processing log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const appendSQL = `
INSERT INTO processing_logs (id, record_id, processed_at, process_type, process_details,
                             processed_by, confidence_score, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const listByRecordSQL = `
SELECT id, record_id, processed_at, process_type, process_details, processed_by,
       confidence_score, notes
FROM processing_logs
WHERE record_id = $1
ORDER BY processed_at DESC, id DESC
LIMIT $2`

const countByRecordSQL = `SELECT count(*) FROM processing_logs WHERE record_id = $1`

// Append inserts one log entry. Entries are never updated or deleted except
// through the record's cascade.
func (r *Repo) Append(ctx context.Context, e domain.ProcessingLogEntry) error {
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, appendSQL,
		e.ID, e.RecordID, e.ProcessedAt, string(e.ProcessType), e.ProcessDetails,
		e.ProcessedBy, e.ConfidenceScore, e.Notes,
	)
	if err != nil {
		return postgres.MapError(err, "processing_log", e.ID)
	}
	return nil
}

// ListByRecord returns up to limit entries of a record, newest first.
func (r *Repo) ListByRecord(ctx context.Context, recordID string, limit int) ([]domain.ProcessingLogEntry, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listByRecordSQL, recordID, limit)
	if err != nil {
		return nil, postgres.MapError(err, "processing_log of record", recordID)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ProcessingLogEntry, error) {
		var (
			e  domain.ProcessingLogEntry
			pt string
		)
		err := row.Scan(&e.ID, &e.RecordID, &e.ProcessedAt, &pt, &e.ProcessDetails,
			&e.ProcessedBy, &e.ConfidenceScore, &e.Notes)
		e.ProcessType = domain.ProcessType(pt)
		return e, err
	})
	if err != nil {
		return nil, postgres.MapError(err, "processing_log of record", recordID)
	}

	return entries, nil
}

// CountByRecord returns the number of log entries of a record.
func (r *Repo) CountByRecord(ctx context.Context, recordID string) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, countByRecordSQL, recordID).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "processing_log of record", recordID)
	}
	return n, nil
}
