package bulk

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/scholarship-curator/internal/domain"
	"github.com/heartmarshall/scholarship-curator/internal/metrics"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

// workflow applies one item of a bulk request. Each call commits on its own.
type workflow interface {
	Approve(ctx context.Context, recordID string, notes *string) (*domain.ScrapedRecord, error)
	Reject(ctx context.Context, recordID string, notes *string) (*domain.ScrapedRecord, error)
	Purge(ctx context.Context, recordID string) error
}

type receiptRepo interface {
	Create(ctx context.Context, op *domain.BulkOperation) error
	GetByID(ctx context.Context, id string) (*domain.BulkOperation, error)
	List(ctx context.Context, limit, offset int) ([]domain.BulkOperation, error)
}

// Service applies approve, reject or delete to many records and stores an
// immutable receipt of the outcome.
type Service struct {
	workflow workflow
	receipts receiptRepo
	metrics  *metrics.Metrics
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new bulk service.
func NewService(log *slog.Logger, wf workflow, receipts receiptRepo, m *metrics.Metrics) *Service {
	return &Service{
		workflow: wf,
		receipts: receipts,
		metrics:  m,
		log:      log.With("service", "bulk"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}
