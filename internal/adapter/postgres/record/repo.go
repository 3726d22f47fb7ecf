// Package record implements the scraped record repository using PostgreSQL.
// Fixed queries are raw SQL; search is composed with squirrel.
package record

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/scholarship-curator/internal/adapter/postgres"
	"github.com/heartmarshall/scholarship-curator/internal/domain"
)

// Repo provides scraped record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new record repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const recordColumns = `id, title, description, benefits, monetary_value, application_deadline,
       requirements, slots_available, minimum_gpa, required_course, required_university,
       required_year_level, external_application_url, source_url, raw_text, scraped_at,
       parsing_confidence, is_enhanced, parsing_notes, category, status, reviewed_by,
       reviewed_at, review_notes, approved_by, approved_at, published_catalog_id,
       created_at, updated_at, created_by, updated_by`

const insertSQL = `
INSERT INTO scraped_records (` + recordColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
        $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31)`

const getByIDSQL = `SELECT ` + recordColumns + ` FROM scraped_records WHERE id = $1`

const getForUpdateSQL = getByIDSQL + ` FOR UPDATE`

const updateSQL = `
UPDATE scraped_records SET
    title = $2, description = $3, benefits = $4, monetary_value = $5,
    application_deadline = $6, requirements = $7, slots_available = $8, minimum_gpa = $9,
    required_course = $10, required_university = $11, required_year_level = $12,
    external_application_url = $13, parsing_confidence = $14, is_enhanced = $15,
    parsing_notes = $16, category = $17, status = $18, reviewed_by = $19, reviewed_at = $20,
    review_notes = $21, approved_by = $22, approved_at = $23, published_catalog_id = $24,
    updated_at = $25, updated_by = $26
WHERE id = $1`

const deleteSQL = `DELETE FROM scraped_records WHERE id = $1`

const listMediaSQL = `
SELECT id, record_id, url, caption, position, created_at
FROM scraped_record_media
WHERE record_id = $1
ORDER BY position`

const insertMediaSQL = `
INSERT INTO scraped_record_media (id, record_id, url, caption, position, created_at)
VALUES ($1, $2, $3, $4,
        (SELECT COALESCE(MAX(position), -1) + 1 FROM scraped_record_media WHERE record_id = $2),
        $5)
RETURNING position`

const duplicateCandidatesSQL = `
SELECT id, title FROM scraped_records
WHERE status NOT IN ('PUBLISHED', 'REJECTED')
ORDER BY scraped_at DESC, id`

const countDuplicateCandidatesSQL = `
SELECT count(*) FROM scraped_records WHERE status NOT IN ('PUBLISHED', 'REJECTED')`

const rejectedBeforeSQL = `
SELECT id FROM scraped_records
WHERE status = 'REJECTED' AND updated_at < $1
ORDER BY updated_at, id
LIMIT $2`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts the record together with its media list.
func (r *Repo) Create(ctx context.Context, rec *domain.ScrapedRecord) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, insertSQL,
		rec.ID, rec.Title, rec.Description, rec.Benefits, nullDecimal(rec.MonetaryValue), rec.ApplicationDeadline,
		rec.Requirements, rec.SlotsAvailable, nullDecimal(rec.MinimumGPA), rec.RequiredCourse, rec.RequiredUniversity,
		rec.RequiredYearLevel, rec.ExternalApplicationURL, rec.SourceURL, rec.RawText, rec.ScrapedAt,
		rec.ParsingConfidence, rec.IsEnhanced, rec.ParsingNotes, string(rec.Category), string(rec.Status), rec.ReviewedBy,
		rec.ReviewedAt, rec.ReviewNotes, rec.ApprovedBy, rec.ApprovedAt, rec.PublishedCatalogID,
		rec.CreatedAt, rec.UpdatedAt, rec.CreatedBy, rec.UpdatedBy,
	); err != nil {
		return postgres.MapError(err, "record", rec.ID)
	}

	for i := range rec.Media {
		m := &rec.Media[i]
		m.RecordID = rec.ID
		if err := r.insertMedia(ctx, q, m); err != nil {
			return err
		}
	}

	return nil
}

// Update writes every mutable column of rec. Identity, provenance and creation
// audit fields are never rewritten.
func (r *Repo) Update(ctx context.Context, rec *domain.ScrapedRecord) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateSQL,
		rec.ID, rec.Title, rec.Description, rec.Benefits, nullDecimal(rec.MonetaryValue),
		rec.ApplicationDeadline, rec.Requirements, rec.SlotsAvailable, nullDecimal(rec.MinimumGPA),
		rec.RequiredCourse, rec.RequiredUniversity, rec.RequiredYearLevel,
		rec.ExternalApplicationURL, rec.ParsingConfidence, rec.IsEnhanced,
		rec.ParsingNotes, string(rec.Category), string(rec.Status), rec.ReviewedBy, rec.ReviewedAt,
		rec.ReviewNotes, rec.ApprovedBy, rec.ApprovedAt, rec.PublishedCatalogID,
		rec.UpdatedAt, rec.UpdatedBy,
	)
	if err != nil {
		return postgres.MapError(err, "record", rec.ID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "record", rec.ID)
	}

	return nil
}

// Delete hard-deletes a record. Logs and media go with it through ON DELETE CASCADE.
func (r *Repo) Delete(ctx context.Context, id string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "record", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "record", id)
	}

	return nil
}

// AddMedia appends m at the end of the record's media list and fills in its position.
func (r *Repo) AddMedia(ctx context.Context, m *domain.Media) error {
	return r.insertMedia(ctx, postgres.QuerierFromCtx(ctx, r.pool), m)
}

func (r *Repo) insertMedia(ctx context.Context, q postgres.Querier, m *domain.Media) error {
	err := q.QueryRow(ctx, insertMediaSQL, m.ID, m.RecordID, m.URL, m.Caption, m.CreatedAt).Scan(&m.Position)
	if err != nil {
		return postgres.MapError(err, "media", m.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a record with its media.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.ScrapedRecord, error) {
	return r.get(ctx, getByIDSQL, id)
}

// GetForUpdate returns a record and locks its row until the surrounding
// transaction ends. Outside a transaction the lock is released immediately.
func (r *Repo) GetForUpdate(ctx context.Context, id string) (*domain.ScrapedRecord, error) {
	return r.get(ctx, getForUpdateSQL, id)
}

func (r *Repo) get(ctx context.Context, query, id string) (*domain.ScrapedRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rec, err := scanRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, postgres.MapError(err, "record", id)
	}

	media, err := r.listMedia(ctx, q, id)
	if err != nil {
		return nil, err
	}
	rec.Media = media

	return rec, nil
}

func (r *Repo) listMedia(ctx context.Context, q postgres.Querier, recordID string) ([]domain.Media, error) {
	rows, err := q.Query(ctx, listMediaSQL, recordID)
	if err != nil {
		return nil, postgres.MapError(err, "media of record", recordID)
	}
	defer rows.Close()

	var media []domain.Media
	for rows.Next() {
		var m domain.Media
		if err := rows.Scan(&m.ID, &m.RecordID, &m.URL, &m.Caption, &m.Position, &m.CreatedAt); err != nil {
			return nil, postgres.MapError(err, "media of record", recordID)
		}
		media = append(media, m)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "media of record", recordID)
	}

	return media, nil
}

// ListDuplicateCandidates returns id/title of non-terminal records, most
// recently scraped first. limit <= 0 returns all of them.
func (r *Repo) ListDuplicateCandidates(ctx context.Context, limit int) ([]domain.DuplicateCandidate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := duplicateCandidatesSQL
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.WrapStore(err, "list duplicate candidates")
	}
	defer rows.Close()

	candidates := []domain.DuplicateCandidate{}
	for rows.Next() {
		var c domain.DuplicateCandidate
		if err := rows.Scan(&c.ID, &c.Title); err != nil {
			return nil, postgres.WrapStore(err, "list duplicate candidates")
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.WrapStore(err, "list duplicate candidates")
	}

	return candidates, nil
}

// CountDuplicateCandidates returns the size of the duplicate working set.
func (r *Repo) CountDuplicateCandidates(ctx context.Context) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, countDuplicateCandidatesSQL).Scan(&n); err != nil {
		return 0, postgres.WrapStore(err, "count duplicate candidates")
	}
	return n, nil
}

// ListRejectedBefore returns ids of Rejected records last touched before cutoff.
func (r *Repo) ListRejectedBefore(ctx context.Context, cutoff time.Time, limit int) ([]string, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, rejectedBeforeSQL, cutoff, limit)
	if err != nil {
		return nil, postgres.WrapStore(err, "list rejected records")
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, postgres.WrapStore(err, "list rejected records")
	}

	return ids, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanRecord(row pgx.Row) (*domain.ScrapedRecord, error) {
	var (
		rec             domain.ScrapedRecord
		monetary, gpa   decimal.NullDecimal
		category, state string
	)

	err := row.Scan(
		&rec.ID, &rec.Title, &rec.Description, &rec.Benefits, &monetary, &rec.ApplicationDeadline,
		&rec.Requirements, &rec.SlotsAvailable, &gpa, &rec.RequiredCourse, &rec.RequiredUniversity,
		&rec.RequiredYearLevel, &rec.ExternalApplicationURL, &rec.SourceURL, &rec.RawText, &rec.ScrapedAt,
		&rec.ParsingConfidence, &rec.IsEnhanced, &rec.ParsingNotes, &category, &state, &rec.ReviewedBy,
		&rec.ReviewedAt, &rec.ReviewNotes, &rec.ApprovedBy, &rec.ApprovedAt, &rec.PublishedCatalogID,
		&rec.CreatedAt, &rec.UpdatedAt, &rec.CreatedBy, &rec.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}

	rec.Category = domain.Category(category)
	rec.Status = domain.RecordStatus(state)
	if monetary.Valid {
		rec.MonetaryValue = &monetary.Decimal
	}
	if gpa.Valid {
		rec.MinimumGPA = &gpa.Decimal
	}

	return &rec, nil
}

func scanRecords(rows pgx.Rows) ([]domain.ScrapedRecord, error) {
	defer rows.Close()

	records := []domain.ScrapedRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
