// Command ingest reads newline-delimited JSON candidates produced by the
// scrapers and creates one record per line. Each record is triaged by its
// parsing confidence on creation. Bad lines are logged and counted; they do
// not stop the run.
//
// Flags:
//
//	--file           input file; "-" or empty reads stdin
//	--ingest-config  path to ingest config YAML (optional; falls back to env)
//
// Exit codes: 0 = success, 1 = error, 2 = finished with per-line errors.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/scholarship-curator/internal/adapter/postgres"
	"github.com/heartmarshall/scholarship-curator/internal/app"
	"github.com/heartmarshall/scholarship-curator/internal/app/ingest"
	"github.com/heartmarshall/scholarship-curator/internal/config"
	"github.com/heartmarshall/scholarship-curator/internal/domain"
	"github.com/heartmarshall/scholarship-curator/pkg/ctxutil"
)

func main() {
	file := flag.String("file", "-", `input file ("-" for stdin)`)
	ingestConfigPath := flag.String("ingest-config", "", "path to ingest config YAML")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	ingestCfg, err := ingest.LoadConfig(*ingestConfigPath)
	if err != nil {
		logger.Error("load ingest config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var in io.Reader = os.Stdin
	if *file != "" && *file != "-" {
		f, err := os.Open(*file)
		if err != nil {
			logger.Error("open input", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc, err := app.NewServices(pool, appCfg, logger, prometheus.NewRegistry())
	if err != nil {
		logger.Error("wire services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if ingestCfg.DryRun {
		logger.Info("dry-run mode: no DB writes")
	}

	ctx = ctxutil.WithActor(ctx, ingestCfg.Actor, domain.ActorRoleSystem.String())

	res, err := ingest.Run(ctx, ingestCfg, in, svc.Curation, logger)
	if err != nil {
		logger.Error("ingest failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if res.Errors > 0 {
		os.Exit(2)
	}
}
