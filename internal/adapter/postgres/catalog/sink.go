// Package catalog writes published scholarships into the canonical catalog table.
package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/scholarship-curator/internal/adapter/postgres"
	"github.com/heartmarshall/scholarship-curator/internal/domain"
)

// Sink inserts catalog entries. When called inside TxManager.RunInTx the
// insert joins that transaction, so publish and catalog insert commit together.
type Sink struct {
	pool      *pgxpool.Pool
	insertSQL string
	probeSQL  string
}

// NewSink creates a sink writing into table.
func NewSink(pool *pgxpool.Pool, table string) *Sink {
	return &Sink{
		pool: pool,
		insertSQL: fmt.Sprintf(`
INSERT INTO %s (id, source_record_id, title, description, benefits, monetary_value,
                application_deadline, requirements, slots_available, minimum_gpa,
                required_course, required_university, required_year_level,
                external_application_url, category, created_by, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
			pgx.Identifier{table}.Sanitize()),
		probeSQL: fmt.Sprintf(`SELECT 1 FROM %s LIMIT 0`, pgx.Identifier{table}.Sanitize()),
	}
}

// Ping checks that the catalog table is reachable. It fails when the table
// is missing, e.g. before migrations ran.
func (s *Sink) Ping(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, s.probeSQL); err != nil {
		return postgres.WrapStore(err, "probe catalog table")
	}
	return nil
}

// Submit stores e and returns the new catalog id.
func (s *Sink) Submit(ctx context.Context, e domain.CatalogEntry) (string, error) {
	id := uuid.NewString()

	_, err := postgres.QuerierFromCtx(ctx, s.pool).Exec(ctx, s.insertSQL,
		id, e.SourceRecordID, e.Title, e.Description, e.Benefits, nullDecimal(e.MonetaryValue),
		e.ApplicationDeadline, e.Requirements, e.SlotsAvailable, nullDecimal(e.MinimumGPA),
		e.RequiredCourse, e.RequiredUniversity, e.RequiredYearLevel,
		e.ExternalApplicationURL, string(e.Category), e.PublishedBy, e.PublishedAt,
	)
	if err != nil {
		return "", postgres.MapError(err, "catalog entry for record", e.SourceRecordID)
	}

	return id, nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
