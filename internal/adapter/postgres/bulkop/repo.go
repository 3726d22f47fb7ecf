// Package bulkop stores bulk operation receipts using PostgreSQL.
// Receipts are write-once; a trigger rejects updates.
package bulkop

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/scholarship-curator/internal/adapter/postgres"
	"github.com/heartmarshall/scholarship-curator/internal/domain"
)

// Repo provides bulk operation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new bulk operation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = `id, operation_type, performed_by, started_at, completed_at, requested_items,
       total_items, succeeded_items, failed_items, filter_criteria, notes, error_log, processed_ids, failures`

const createSQL = `INSERT INTO bulk_operations (` + columns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

const getByIDSQL = `SELECT ` + columns + ` FROM bulk_operations WHERE id = $1`

const listSQL = `SELECT ` + columns + ` FROM bulk_operations
ORDER BY started_at DESC, id
LIMIT $1 OFFSET $2`

// failureRow is the JSONB shape of one failure.
type failureRow struct {
	RecordID string `json:"record_id"`
	Reason   string `json:"reason"`
}

// Create persists a receipt.
func (r *Repo) Create(ctx context.Context, op *domain.BulkOperation) error {
	failures := make([]failureRow, len(op.Failures))
	for i, f := range op.Failures {
		failures[i] = failureRow{RecordID: f.RecordID, Reason: f.Reason}
	}
	failuresJSON, err := json.Marshal(failures)
	if err != nil {
		return fmt.Errorf("bulk_operation marshal failures: %w", err)
	}

	processed := op.ProcessedIDs
	if processed == nil {
		processed = []string{}
	}

	_, err = postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, createSQL,
		op.ID, string(op.OperationType), op.PerformedBy, op.StartedAt, op.CompletedAt, op.RequestedItems,
		op.TotalItems, op.SucceededItems, op.FailedItems, op.FilterCriteria, op.Notes, op.ErrorLog, processed, failuresJSON,
	)
	if err != nil {
		return postgres.MapError(err, "bulk_operation", op.ID)
	}
	return nil
}

// GetByID returns one receipt.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.BulkOperation, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, getByIDSQL, id)
	if err != nil {
		return nil, postgres.MapError(err, "bulk_operation", id)
	}

	op, err := pgx.CollectExactlyOneRow(rows, scanOperation)
	if err != nil {
		return nil, postgres.MapError(err, "bulk_operation", id)
	}
	return &op, nil
}

// List returns receipts, newest first.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.BulkOperation, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listSQL, limit, offset)
	if err != nil {
		return nil, postgres.WrapStore(err, "list bulk_operations")
	}

	ops, err := pgx.CollectRows(rows, scanOperation)
	if err != nil {
		return nil, postgres.WrapStore(err, "list bulk_operations")
	}
	return ops, nil
}

func scanOperation(row pgx.CollectableRow) (domain.BulkOperation, error) {
	var (
		op           domain.BulkOperation
		opType       string
		failuresJSON []byte
	)
	if err := row.Scan(&op.ID, &opType, &op.PerformedBy, &op.StartedAt, &op.CompletedAt, &op.RequestedItems,
		&op.TotalItems, &op.SucceededItems, &op.FailedItems, &op.FilterCriteria, &op.Notes, &op.ErrorLog,
		&op.ProcessedIDs, &failuresJSON); err != nil {
		return domain.BulkOperation{}, err
	}
	op.OperationType = domain.BulkOperationType(opType)

	var failures []failureRow
	if err := json.Unmarshal(failuresJSON, &failures); err != nil {
		return domain.BulkOperation{}, fmt.Errorf("bulk_operation %s unmarshal failures: %w", op.ID, err)
	}
	op.Failures = make([]domain.BulkFailure, len(failures))
	for i, f := range failures {
		op.Failures[i] = domain.BulkFailure{RecordID: f.RecordID, Reason: f.Reason}
	}

	return op, nil
}
