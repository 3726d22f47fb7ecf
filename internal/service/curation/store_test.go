package curation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/heartmarshall/scholarship-curator/internal/config"
	"github.com/heartmarshall/scholarship-curator/internal/domain"
	"github.com/heartmarshall/scholarship-curator/pkg/ctxutil"
)

// memStore is an in-memory record store with snapshot transactions. It backs
// recordRepo, logRepo and historyCache so service tests observe committed
// state the way the postgres adapters would expose it.
type memStore struct {
	mu          sync.Mutex
	records     map[string]domain.ScrapedRecord
	logs        []domain.ProcessingLogEntry
	invalidated []string

	createErr error
	updateErr error
	appendErr error
}

func newMemStore() *memStore {
	return &memStore{records: make(map[string]domain.ScrapedRecord)}
}

func cloneRecord(r domain.ScrapedRecord) *domain.ScrapedRecord {
	r.Media = slices.Clone(r.Media)
	return &r
}

func (m *memStore) Create(_ context.Context, rec *domain.ScrapedRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.records[rec.ID]; ok {
		return domain.ErrAlreadyExists
	}
	for i := range rec.Media {
		rec.Media[i].RecordID = rec.ID
		rec.Media[i].Position = i + 1
	}
	m.records[rec.ID] = *cloneRecord(*rec)
	return nil
}

func (m *memStore) GetByID(_ context.Context, id string) (*domain.ScrapedRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneRecord(r), nil
}

func (m *memStore) GetForUpdate(ctx context.Context, id string) (*domain.ScrapedRecord, error) {
	return m.GetByID(ctx, id)
}

func (m *memStore) Update(_ context.Context, rec *domain.ScrapedRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.records[rec.ID]; !ok {
		return domain.ErrNotFound
	}
	if rec.IsPublished() != (rec.PublishedCatalogID != nil) {
		return domain.NewValidationError("published_catalog_id", "must be set exactly when published")
	}
	stored := *cloneRecord(*rec)
	stored.Media = m.records[rec.ID].Media
	m.records[rec.ID] = stored
	return nil
}

func (m *memStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.records, id)
	m.logs = slices.DeleteFunc(m.logs, func(e domain.ProcessingLogEntry) bool { return e.RecordID == id })
	return nil
}

func (m *memStore) AddMedia(_ context.Context, media *domain.Media) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[media.RecordID]
	if !ok {
		return domain.ErrNotFound
	}
	media.Position = len(r.Media) + 1
	r.Media = append(slices.Clone(r.Media), *media)
	m.records[media.RecordID] = r
	return nil
}

func (m *memStore) Append(_ context.Context, e domain.ProcessingLogEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.appendErr != nil {
		return m.appendErr
	}
	if _, ok := m.records[e.RecordID]; !ok {
		return domain.ErrNotFound
	}
	m.logs = append(m.logs, e)
	return nil
}

// Get returns the newest entries first, like the cache over the log repo.
func (m *memStore) Get(_ context.Context, recordID string, limit int) ([]domain.ProcessingLogEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.ProcessingLogEntry
	for i := len(m.logs) - 1; i >= 0 && len(out) < limit; i-- {
		if m.logs[i].RecordID == recordID {
			out = append(out, m.logs[i])
		}
	}
	return out, nil
}

func (m *memStore) Invalidate(recordID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invalidated = append(m.invalidated, recordID)
}

// RunInTx restores the snapshot taken at begin when fn fails.
func (m *memStore) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	records := make(map[string]domain.ScrapedRecord, len(m.records))
	for k, v := range m.records {
		records[k] = v
	}
	logs := slices.Clone(m.logs)
	m.mu.Unlock()

	if err := fn(ctx); err != nil {
		m.mu.Lock()
		m.records = records
		m.logs = logs
		m.mu.Unlock()
		return err
	}
	return nil
}

func (m *memStore) logsFor(recordID string) []domain.ProcessingLogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.ProcessingLogEntry
	for _, e := range m.logs {
		if e.RecordID == recordID {
			out = append(out, e)
		}
	}
	return out
}

func (m *memStore) stored(t *testing.T, id string) *domain.ScrapedRecord {
	t.Helper()
	rec, err := m.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("stored record %s: %v", id, err)
	}
	return rec
}

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func testConfig() config.CurationConfig {
	return config.CurationConfig{
		TriageApproveThreshold: 0.90,
		TriageReviewThreshold:  0.70,
		TriageHoldThreshold:    0.50,
		DuplicateThreshold:     0.80,
		DuplicateMaxMatches:    50,
		DuplicateMaxPairwise:   500,
		SearchDefaultLimit:     1000,
		SearchMaxLimit:         5000,
		AnalyticsTopSources:    10,
		DefaultDeadline:        365 * 24 * time.Hour,
	}
}

// okSink accepts every entry and hands out sequential catalog ids.
func okSink() *catalogSinkMock {
	var mu sync.Mutex
	n := 0
	return &catalogSinkMock{
		SubmitFunc: func(ctx context.Context, e domain.CatalogEntry) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			n++
			return fmt.Sprintf("cat-%d", n), nil
		},
	}
}

func failingSink(err error) *catalogSinkMock {
	return &catalogSinkMock{
		SubmitFunc: func(ctx context.Context, e domain.CatalogEntry) (string, error) {
			return "", err
		},
	}
}

var errSinkDown = errors.New("catalog unavailable")

func newTestService(t *testing.T, store *memStore, sink *catalogSinkMock) *Service {
	t.Helper()
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), store, store, store, sink, store, nil, testConfig())
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func reviewerCtx() context.Context {
	return ctxutil.WithActor(context.Background(), "rev-1", string(domain.ActorRoleReviewer))
}

func adminCtx() context.Context {
	return ctxutil.WithActor(context.Background(), "admin-1", string(domain.ActorRoleAdmin))
}

func validCreateInput(conf float64) CreateRecordInput {
	return CreateRecordInput{
		Title:             "Regional Merit Grant",
		Description:       "Support for outstanding students",
		SourceURL:         "https://grants.example.org/list",
		RawText:           "Regional Merit Grant. Support for outstanding students.",
		ParsingConfidence: conf,
	}
}

// createAt stores a fresh record triaged at the given confidence.
func createAt(t *testing.T, svc *Service, conf float64) *domain.ScrapedRecord {
	t.Helper()
	rec, err := svc.CreateRecord(reviewerCtx(), validCreateInput(conf))
	if err != nil {
		t.Fatalf("create record: %v", err)
	}
	return rec
}
