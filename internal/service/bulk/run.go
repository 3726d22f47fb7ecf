package bulk

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/scholarship-curator/internal/domain"
	"github.com/heartmarshall/scholarship-curator/pkg/ctxutil"
)

const reasonCanceled = "canceled"

// Run processes the ids one by one. A failing item is recorded on the receipt
// and does not stop the batch. Once ctx is done the remaining ids are marked
// canceled, so the processed and failed ids always partition the request.
func (s *Service) Run(ctx context.Context, input Input) (*domain.BulkOperation, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Operation == domain.BulkOperationDelete && !domain.ActorRole(ctxutil.RoleFromCtx(ctx)).IsAdmin() {
		return nil, domain.ErrForbidden
	}

	ids := dedupe(input.RecordIDs)
	op := &domain.BulkOperation{
		ID:             uuid.NewString(),
		OperationType:  input.Operation,
		PerformedBy:    actor,
		StartedAt:      s.now(),
		RequestedItems: len(input.RecordIDs),
		TotalItems:     len(ids),
		FilterCriteria: input.FilterCriteria,
		ProcessedIDs:   make([]string, 0, len(ids)),
	}
	if input.Notes != nil {
		op.Notes = *input.Notes
	}

	for i, id := range ids {
		if ctx.Err() != nil {
			for _, rest := range ids[i:] {
				op.Failures = append(op.Failures, domain.BulkFailure{RecordID: rest, Reason: reasonCanceled})
				s.metrics.BulkItem(input.Operation.String(), ctx.Err())
			}
			break
		}

		err := s.apply(ctx, input.Operation, id, input.Notes)
		s.metrics.BulkItem(input.Operation.String(), err)
		if err != nil {
			op.Failures = append(op.Failures, domain.BulkFailure{RecordID: id, Reason: err.Error()})
			continue
		}
		op.ProcessedIDs = append(op.ProcessedIDs, id)
	}

	op.CompletedAt = s.now()
	op.SucceededItems = len(op.ProcessedIDs)
	op.FailedItems = len(op.Failures)
	op.ErrorLog = errorLog(op.Failures)
	s.metrics.BulkFinished(input.Operation.String(), op.CompletedAt.Sub(op.StartedAt))

	// The items are already applied; the receipt must be written even if the
	// caller went away.
	if err := s.receipts.Create(context.WithoutCancel(ctx), op); err != nil {
		s.log.ErrorContext(ctx, "save bulk receipt failed",
			slog.String("operation", input.Operation.String()),
			slog.String("actor", actor),
			slog.Int("succeeded", op.SucceededItems),
			slog.Int("failed", op.FailedItems),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("save receipt: %w", err)
	}

	s.log.InfoContext(ctx, "bulk operation finished",
		slog.String("bulk_id", op.ID),
		slog.String("operation", input.Operation.String()),
		slog.String("actor", actor),
		slog.Int("requested", op.RequestedItems),
		slog.Int("total", op.TotalItems),
		slog.Int("succeeded", op.SucceededItems),
		slog.Int("failed", op.FailedItems),
	)

	return op, nil
}

func (s *Service) apply(ctx context.Context, op domain.BulkOperationType, id string, notes *string) error {
	switch op {
	case domain.BulkOperationApprove:
		_, err := s.workflow.Approve(ctx, id, notes)
		return err
	case domain.BulkOperationReject:
		_, err := s.workflow.Reject(ctx, id, notes)
		return err
	case domain.BulkOperationDelete:
		return s.workflow.Purge(ctx, id)
	default:
		return fmt.Errorf("unsupported operation %q", op)
	}
}

func errorLog(failures []domain.BulkFailure) string {
	if len(failures) == 0 {
		return ""
	}
	lines := make([]string, len(failures))
	for i, f := range failures {
		lines[i] = f.RecordID + ": " + f.Reason
	}
	return strings.Join(lines, "\n")
}

// Get returns one receipt.
func (s *Service) Get(ctx context.Context, id string) (*domain.BulkOperation, error) {
	if id == "" {
		return nil, domain.NewValidationError("id", "required")
	}
	op, err := s.receipts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get bulk operation: %w", err)
	}
	return op, nil
}

// List returns receipts newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.BulkOperation, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		return nil, domain.NewValidationError("offset", "must not be negative")
	}
	ops, err := s.receipts.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list bulk operations: %w", err)
	}
	return ops, nil
}
