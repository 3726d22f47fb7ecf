package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/scholarship-curator/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// RecordOption customises a record built by BuildRecord.
type RecordOption func(*domain.ScrapedRecord)

func WithStatus(s domain.RecordStatus) RecordOption {
	return func(r *domain.ScrapedRecord) {
		r.Status = s
		if s == domain.RecordStatusPublished && r.PublishedCatalogID == nil {
			id := uuid.NewString()
			r.PublishedCatalogID = &id
		}
	}
}

func WithTitle(title string) RecordOption {
	return func(r *domain.ScrapedRecord) { r.Title = title }
}

func WithConfidence(c float64) RecordOption {
	return func(r *domain.ScrapedRecord) { r.ParsingConfidence = c }
}

func WithSource(url string) RecordOption {
	return func(r *domain.ScrapedRecord) { r.SourceURL = url }
}

func WithScrapedAt(at time.Time) RecordOption {
	return func(r *domain.ScrapedRecord) { r.ScrapedAt = at.UTC().Truncate(time.Microsecond) }
}

func WithCategory(c domain.Category) RecordOption {
	return func(r *domain.ScrapedRecord) { r.Category = c }
}

func WithEnhanced() RecordOption {
	return func(r *domain.ScrapedRecord) { r.IsEnhanced = true }
}

// BuildRecord returns an unsaved record with unique, valid content.
func BuildRecord(opts ...RecordOption) domain.ScrapedRecord {
	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)

	r := domain.ScrapedRecord{
		ID:                uuid.NewString(),
		Title:             "Test Scholarship " + suffix,
		Description:       "Description " + suffix,
		Requirements:      "Open to all students",
		SourceURL:         "https://source-" + suffix + ".example.org",
		RawText:           "raw text " + suffix,
		ScrapedAt:         now,
		ParsingConfidence: 0.75,
		Category:          domain.CategoryGeneral,
		Status:            domain.RecordStatusScraped,
		CreatedAt:         now,
		UpdatedAt:         now,
		CreatedBy:         "seeder",
		UpdatedBy:         "seeder",
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// SeedRecord inserts a record built from opts directly, bypassing the repo.
func SeedRecord(t *testing.T, pool *pgxpool.Pool, opts ...RecordOption) domain.ScrapedRecord {
	t.Helper()

	r := BuildRecord(opts...)
	_, err := pool.Exec(context.Background(),
		`INSERT INTO scraped_records (id, title, description, requirements, source_url, raw_text,
		     scraped_at, parsing_confidence, is_enhanced, category, status, published_catalog_id,
		     created_at, updated_at, created_by, updated_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		r.ID, r.Title, r.Description, r.Requirements, r.SourceURL, r.RawText,
		r.ScrapedAt, r.ParsingConfidence, r.IsEnhanced, string(r.Category), string(r.Status), r.PublishedCatalogID,
		r.CreatedAt, r.UpdatedAt, r.CreatedBy, r.UpdatedBy,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecord insert: %v", err)
	}

	return r
}

// SeedLogEntry appends a processing log row for recordID.
func SeedLogEntry(t *testing.T, pool *pgxpool.Pool, recordID string, pt domain.ProcessType, at time.Time) domain.ProcessingLogEntry {
	t.Helper()

	e := domain.ProcessingLogEntry{
		ID:          uuid.NewString(),
		RecordID:    recordID,
		ProcessedAt: at.UTC().Truncate(time.Microsecond),
		ProcessType: pt,
		ProcessedBy: "seeder",
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO processing_logs (id, record_id, processed_at, process_type, process_details, processed_by)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.RecordID, e.ProcessedAt, string(e.ProcessType), e.ProcessDetails, e.ProcessedBy,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLogEntry insert: %v", err)
	}

	return e
}
