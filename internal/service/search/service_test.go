package search

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/scholarship-curator/internal/config"
	"github.com/heartmarshall/scholarship-curator/internal/domain"
)

type fakeSearcher struct {
	records []domain.ScrapedRecord
	total   int
	err     error
	filters []domain.RecordFilter
	counts  int
}

func (f *fakeSearcher) Search(_ context.Context, flt domain.RecordFilter) ([]domain.ScrapedRecord, error) {
	f.filters = append(f.filters, flt)
	if f.err != nil {
		return nil, f.err
	}
	out := f.records
	if flt.Offset >= len(out) {
		return []domain.ScrapedRecord{}, nil
	}
	out = out[flt.Offset:]
	if len(out) > flt.Limit {
		out = out[:flt.Limit]
	}
	return out, nil
}

func (f *fakeSearcher) Count(context.Context, domain.RecordFilter) (int, error) {
	f.counts++
	return f.total, nil
}

func testConfig() config.CurationConfig {
	return config.CurationConfig{SearchDefaultLimit: 1000, SearchMaxLimit: 5000}
}

func newTestService(s *fakeSearcher) *Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), s, testConfig())
}

func records(n int) []domain.ScrapedRecord {
	out := make([]domain.ScrapedRecord, n)
	for i := range out {
		out[i] = domain.ScrapedRecord{ID: string(rune('a' + i))}
	}
	return out
}

func TestSearch_DefaultLimitAndPassThrough(t *testing.T) {
	t.Parallel()

	fake := &fakeSearcher{records: records(3)}
	svc := newTestService(fake)

	status := domain.RecordStatusUnderReview
	text := "engineering"
	res, err := svc.Search(context.Background(), domain.RecordFilter{Status: &status, Text: &text})
	require.NoError(t, err)

	require.Len(t, fake.filters, 1)
	assert.Equal(t, 1000, fake.filters[0].Limit)
	assert.Equal(t, &status, fake.filters[0].Status)
	assert.Equal(t, &text, fake.filters[0].Text)

	assert.Len(t, res.Records, 3)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 0, fake.counts, "a short page needs no count query")
}

func TestSearch_ClampsLimit(t *testing.T) {
	t.Parallel()

	fake := &fakeSearcher{}
	svc := newTestService(fake)

	res, err := svc.Search(context.Background(), domain.RecordFilter{Limit: 1_000_000})
	require.NoError(t, err)
	assert.Equal(t, 5000, fake.filters[0].Limit)
	assert.Equal(t, 5000, res.Limit)
}

func TestSearch_FullPageCounts(t *testing.T) {
	t.Parallel()

	fake := &fakeSearcher{records: records(10), total: 10}
	svc := newTestService(fake)

	res, err := svc.Search(context.Background(), domain.RecordFilter{Limit: 4, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, res.Records, 4)
	assert.Equal(t, "c", res.Records[0].ID)
	assert.Equal(t, 10, res.Total)
	assert.Equal(t, 1, fake.counts)

	res, err = svc.Search(context.Background(), domain.RecordFilter{Limit: 4, Offset: 8})
	require.NoError(t, err)
	assert.Len(t, res.Records, 2)
	assert.Equal(t, 10, res.Total)
	assert.Equal(t, 1, fake.counts)
}

func TestSearch_Validation(t *testing.T) {
	t.Parallel()

	badStatus := domain.RecordStatus("ARCHIVED")
	badCategory := domain.Category("Sports")
	tooHigh := 1.5
	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(-time.Hour)

	tests := []struct {
		name   string
		filter domain.RecordFilter
		field  string
	}{
		{"status", domain.RecordFilter{Status: &badStatus}, "status"},
		{"category", domain.RecordFilter{Category: &badCategory}, "category"},
		{"confidence", domain.RecordFilter{MinConfidence: &tooHigh}, "min_confidence"},
		{"date range", domain.RecordFilter{ScrapedFrom: &from, ScrapedTo: &to}, "scraped_from"},
		{"offset", domain.RecordFilter{Offset: -1}, "offset"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fake := &fakeSearcher{}
			_, err := newTestService(fake).Search(context.Background(), tt.filter)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Errors[0].Field)
			assert.Empty(t, fake.filters)
		})
	}
}

func TestSearch_StoreError(t *testing.T) {
	t.Parallel()

	fake := &fakeSearcher{err: &domain.StoreError{Op: "search records", Err: errors.New("boom")}}
	_, err := newTestService(fake).Search(context.Background(), domain.RecordFilter{})
	assert.ErrorIs(t, err, domain.ErrStore)
}
