// Command purge-rejected hard-deletes Rejected records scraped before the
// retention window. Deletion goes through the bulk coordinator, so every batch
// leaves a receipt. It is intended to be invoked by an external cron job.
//
// Flags:
//
//	--retention  override curation.rejected_retention (e.g. 720h)
//	--dry-run    list what would be purged without deleting
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/scholarship-curator/internal/adapter/postgres"
	"github.com/heartmarshall/scholarship-curator/internal/app"
	"github.com/heartmarshall/scholarship-curator/internal/config"
	"github.com/heartmarshall/scholarship-curator/internal/domain"
	"github.com/heartmarshall/scholarship-curator/internal/service/bulk"
	"github.com/heartmarshall/scholarship-curator/pkg/ctxutil"
)

const actor = "purge-rejected"

func main() {
	retention := flag.Duration("retention", 0, "override curation.rejected_retention")
	dryRun := flag.Bool("dry-run", false, "list candidates without deleting")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if *retention <= 0 {
		*retention = cfg.Curation.RejectedRetention
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc, err := app.NewServices(pool, cfg, logger, prometheus.NewRegistry())
	if err != nil {
		logger.Error("wire services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	cutoff := time.Now().UTC().Add(-*retention)
	ctx = ctxutil.WithActor(ctx, actor, domain.ActorRoleSystem.String())

	purged, failed, err := purge(ctx, svc, cutoff, *dryRun, logger)
	if err != nil {
		logger.Error("purge failed",
			slog.String("error", err.Error()),
			slog.Time("cutoff", cutoff),
			slog.Int("purged", purged),
		)
		os.Exit(1)
	}

	logger.Info("purge completed",
		slog.Int("purged", purged),
		slog.Int("failed", failed),
		slog.Time("cutoff", cutoff),
		slog.Bool("dry_run", *dryRun),
	)
}

// purge deletes in batches until no candidates are left. A batch in which
// nothing succeeded ends the run so a persistently failing id cannot loop.
func purge(ctx context.Context, svc *app.Services, cutoff time.Time, dryRun bool, logger *slog.Logger) (purged, failed int, err error) {
	criteria := fmt.Sprintf("status=REJECTED scraped_before=%s", cutoff.Format(time.RFC3339))

	for {
		ids, err := svc.Records.ListRejectedBefore(ctx, cutoff, bulk.MaxItems)
		if err != nil {
			return purged, failed, fmt.Errorf("list rejected: %w", err)
		}
		if len(ids) == 0 {
			return purged, failed, nil
		}

		if dryRun {
			logger.Info("would purge", slog.Int("count", len(ids)), slog.Any("ids", ids))
			return len(ids), 0, nil
		}

		op, err := svc.Bulk.Run(ctx, bulk.Input{
			Operation:      domain.BulkOperationDelete,
			RecordIDs:      ids,
			FilterCriteria: criteria,
		})
		if err != nil {
			return purged, failed, fmt.Errorf("bulk delete: %w", err)
		}

		purged += op.SucceededItems
		failed += op.FailedItems
		logger.Info("batch purged",
			slog.String("bulk_operation_id", op.ID),
			slog.Int("succeeded", op.SucceededItems),
			slog.Int("failed", op.FailedItems),
		)

		if op.SucceededItems == 0 || len(ids) < bulk.MaxItems {
			return purged, failed, nil
		}
	}
}
