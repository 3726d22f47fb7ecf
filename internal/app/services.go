package app

import (
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/scholarship-curator/internal/adapter/cache/logcache"
	"github.com/heartmarshall/scholarship-curator/internal/adapter/postgres"
	"github.com/heartmarshall/scholarship-curator/internal/adapter/postgres/analytics"
	"github.com/heartmarshall/scholarship-curator/internal/adapter/postgres/bulkop"
	"github.com/heartmarshall/scholarship-curator/internal/adapter/postgres/catalog"
	"github.com/heartmarshall/scholarship-curator/internal/adapter/postgres/processinglog"
	"github.com/heartmarshall/scholarship-curator/internal/adapter/postgres/record"
	"github.com/heartmarshall/scholarship-curator/internal/config"
	"github.com/heartmarshall/scholarship-curator/internal/metrics"
	analyticssvc "github.com/heartmarshall/scholarship-curator/internal/service/analytics"
	"github.com/heartmarshall/scholarship-curator/internal/service/bulk"
	"github.com/heartmarshall/scholarship-curator/internal/service/curation"
	"github.com/heartmarshall/scholarship-curator/internal/service/duplicate"
	"github.com/heartmarshall/scholarship-curator/internal/service/search"
)

// Services is the wired service layer shared by the server and the
// maintenance commands.
type Services struct {
	Records    *record.Repo
	Catalog    *catalog.Sink
	Curation   *curation.Service
	Bulk       *bulk.Service
	Duplicates *duplicate.Service
	Search     *search.Service
	Analytics  *analyticssvc.Service
	Metrics    *metrics.Metrics
}

// NewServices builds repositories and services on top of pool. Collectors are
// registered on reg.
func NewServices(pool *pgxpool.Pool, cfg *config.Config, logger *slog.Logger, reg *prometheus.Registry) (*Services, error) {
	m := metrics.New(reg)
	txm := postgres.NewTxManager(pool)

	recordRepo := record.New(pool)
	logRepo := processinglog.New(pool)
	bulkRepo := bulkop.New(pool)
	statsRepo := analytics.New(pool)
	sink := catalog.NewSink(pool, cfg.Catalog.Table)

	history, err := logcache.New(logRepo, cfg.Cache.Records, cfg.Cache.EntriesPerRecord)
	if err != nil {
		return nil, fmt.Errorf("history cache: %w", err)
	}

	curationService := curation.NewService(
		logger, recordRepo, logRepo, history, sink, txm, m, cfg.Curation,
	)

	return &Services{
		Records:    recordRepo,
		Catalog:    sink,
		Curation:   curationService,
		Bulk:       bulk.NewService(logger, curationService, bulkRepo, m),
		Duplicates: duplicate.NewService(logger, recordRepo, m, cfg.Curation),
		Search:     search.NewService(logger, recordRepo, cfg.Curation),
		Analytics:  analyticssvc.NewService(logger, statsRepo, cfg.Curation),
		Metrics:    m,
	}, nil
}
