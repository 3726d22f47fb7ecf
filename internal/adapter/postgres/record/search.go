package record

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/scholarship-curator/internal/adapter/postgres"
	"github.com/heartmarshall/scholarship-curator/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s anywhere, with LIKE
// metacharacters in s taken literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// applyFilter adds one AND-ed predicate per set filter field.
func applyFilter(b sq.SelectBuilder, f domain.RecordFilter) sq.SelectBuilder {
	if f.Text != nil && strings.TrimSpace(*f.Text) != "" {
		p := containsPattern(strings.TrimSpace(*f.Text))
		b = b.Where(sq.Or{
			sq.ILike{"title": p},
			sq.ILike{"description": p},
			sq.ILike{"requirements": p},
		})
	}
	if f.Status != nil {
		b = b.Where(sq.Eq{"status": string(*f.Status)})
	}
	if f.MinConfidence != nil {
		b = b.Where(sq.GtOrEq{"parsing_confidence": *f.MinConfidence})
	}
	if f.IsEnhanced != nil {
		b = b.Where(sq.Eq{"is_enhanced": *f.IsEnhanced})
	}
	if f.Category != nil {
		b = b.Where(sq.Eq{"category": string(*f.Category)})
	}
	if f.ScrapedFrom != nil {
		b = b.Where(sq.GtOrEq{"scraped_at": *f.ScrapedFrom})
	}
	if f.ScrapedTo != nil {
		b = b.Where(sq.LtOrEq{"scraped_at": *f.ScrapedTo})
	}
	if f.SourceURL != nil && strings.TrimSpace(*f.SourceURL) != "" {
		b = b.Where(sq.ILike{"source_url": containsPattern(strings.TrimSpace(*f.SourceURL))})
	}
	return b
}

// Search returns records matching every set field of f, most recently scraped
// first. Media lists are not loaded. f.Limit <= 0 means no limit; callers cap it.
func (r *Repo) Search(ctx context.Context, f domain.RecordFilter) ([]domain.ScrapedRecord, error) {
	b := applyFilter(psql.Select(recordColumns).From("scraped_records"), f).
		OrderBy("scraped_at DESC", "id")
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, postgres.WrapStore(err, "build search query")
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.WrapStore(err, "search records")
	}

	records, err := scanRecords(rows)
	if err != nil {
		return nil, postgres.WrapStore(err, "search records")
	}

	return records, nil
}

// Count returns how many records match f, ignoring Limit and Offset.
func (r *Repo) Count(ctx context.Context, f domain.RecordFilter) (int, error) {
	query, args, err := applyFilter(psql.Select("count(*)").From("scraped_records"), f).ToSql()
	if err != nil {
		return 0, postgres.WrapStore(err, "build count query")
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.WrapStore(err, "count records")
	}

	return n, nil
}
