package ingest

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/heartmarshall/scholarship-curator/internal/domain"
	"github.com/heartmarshall/scholarship-curator/internal/service/curation"
)

type recordCreator interface {
	CreateRecord(ctx context.Context, input curation.CreateRecordInput) (*domain.ScrapedRecord, error)
}

// Result holds ingest statistics.
type Result struct {
	Lines    int
	Created  int
	Skipped  int // blank lines
	Errors   int
	ByStatus map[domain.RecordStatus]int
}

// Run reads newline-delimited candidates from r and creates one record per
// line. A bad line is logged and counted; it never aborts the run. The actor
// must already be on ctx.
func Run(ctx context.Context, cfg *Config, r io.Reader, creator recordCreator, log *slog.Logger) (Result, error) {
	result := Result{ByStatus: make(map[domain.RecordStatus]int)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(64*1024, cfg.MaxLineBytes)), cfg.MaxLineBytes)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result.Lines++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			result.Skipped++
			continue
		}

		var c Candidate
		if err := json.Unmarshal(line, &c); err != nil {
			log.Error("unmarshal candidate", slog.Int("line", result.Lines), slog.String("error", err.Error()))
			result.Errors++
			continue
		}

		input, err := Map(c)
		if err != nil {
			log.Error("invalid candidate", slog.Int("line", result.Lines), slog.String("error", err.Error()))
			result.Errors++
			continue
		}

		if cfg.DryRun {
			if err := input.Validate(); err != nil {
				log.Error("invalid candidate", slog.Int("line", result.Lines), slog.String("error", err.Error()))
				result.Errors++
				continue
			}
			result.Created++
			continue
		}

		rec, err := creator.CreateRecord(ctx, input)
		if err != nil {
			log.Error("create record",
				slog.Int("line", result.Lines),
				slog.String("source_url", c.SourceURL),
				slog.String("error", err.Error()),
			)
			result.Errors++
			continue
		}
		result.Created++
		result.ByStatus[rec.Status]++
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("read candidates: %w", err)
	}

	log.Info("ingest complete",
		slog.Int("lines", result.Lines),
		slog.Int("created", result.Created),
		slog.Int("skipped", result.Skipped),
		slog.Int("errors", result.Errors),
		slog.Int("approved", result.ByStatus[domain.RecordStatusApproved]),
		slog.Int("under_review", result.ByStatus[domain.RecordStatusUnderReview]),
		slog.Int("scraped", result.ByStatus[domain.RecordStatusScraped]),
		slog.Int("rejected", result.ByStatus[domain.RecordStatusRejected]),
	)
	return result, nil
}
