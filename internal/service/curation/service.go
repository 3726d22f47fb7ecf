package curation

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/scholarship-curator/internal/config"
	"github.com/heartmarshall/scholarship-curator/internal/domain"
	"github.com/heartmarshall/scholarship-curator/internal/metrics"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type recordRepo interface {
	Create(ctx context.Context, rec *domain.ScrapedRecord) error
	GetByID(ctx context.Context, id string) (*domain.ScrapedRecord, error)
	GetForUpdate(ctx context.Context, id string) (*domain.ScrapedRecord, error)
	Update(ctx context.Context, rec *domain.ScrapedRecord) error
	Delete(ctx context.Context, id string) error
	AddMedia(ctx context.Context, m *domain.Media) error
}

type logRepo interface {
	Append(ctx context.Context, e domain.ProcessingLogEntry) error
}

type historyCache interface {
	Get(ctx context.Context, recordID string, limit int) ([]domain.ProcessingLogEntry, error)
	Invalidate(recordID string)
}

type catalogSink interface {
	Submit(ctx context.Context, e domain.CatalogEntry) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service runs the record workflow: triage at creation, review transitions,
// edits, and publishing to the catalog. Every mutation and its processing log
// entry commit in one transaction.
type Service struct {
	records     recordRepo
	logs        logRepo
	history     historyCache
	sink        catalogSink
	tx          txManager
	metrics     *metrics.Metrics
	triage      Triage
	categorizer *Categorizer
	cfg         config.CurationConfig
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new curation service.
func NewService(
	log *slog.Logger,
	records recordRepo,
	logs logRepo,
	history historyCache,
	sink catalogSink,
	tx txManager,
	m *metrics.Metrics,
	cfg config.CurationConfig,
) *Service {
	return &Service{
		records:     records,
		logs:        logs,
		history:     history,
		sink:        sink,
		tx:          tx,
		metrics:     m,
		triage:      TriageFromConfig(cfg),
		categorizer: NewCategorizer(),
		cfg:         cfg,
		log:         log.With("service", "curation"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func ptr[T any](v T) *T {
	return &v
}
