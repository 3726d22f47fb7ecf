package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/scholarship-curator/internal/domain"
	"github.com/heartmarshall/scholarship-curator/internal/service/bulk"
	"github.com/heartmarshall/scholarship-curator/internal/transport/middleware"
)

type bulkService interface {
	Run(ctx context.Context, input bulk.Input) (*domain.BulkOperation, error)
	Get(ctx context.Context, id string) (*domain.BulkOperation, error)
	List(ctx context.Context, limit, offset int) ([]domain.BulkOperation, error)
}

// BulkHandler serves batch operations and their receipts.
type BulkHandler struct {
	bulk bulkService
	log  *slog.Logger
}

// NewBulkHandler creates a BulkHandler.
func NewBulkHandler(bulk bulkService, logger *slog.Logger) *BulkHandler {
	return &BulkHandler{
		bulk: bulk,
		log:  logger.With("handler", "bulk"),
	}
}

// Run applies one operation to a list of records and returns the receipt.
// Per-item failures are part of the receipt, so a partially failed batch is
// still 200.
// POST /api/bulk
func (h *BulkHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req bulkRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	if req.Operation == domain.BulkOperationDelete {
		if err := middleware.RequireAdmin(r.Context()); err != nil {
			writeServiceError(w, r, h.log, err)
			return
		}
	}

	op, err := h.bulk.Run(r.Context(), req.toInput())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBulkResponse(op))
}

// Get returns one receipt.
// GET /api/bulk/{id}
func (h *BulkHandler) Get(w http.ResponseWriter, r *http.Request) {
	op, err := h.bulk.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBulkResponse(op))
}

// List returns receipts newest first.
// GET /api/bulk?limit=50&offset=0
func (h *BulkHandler) List(w http.ResponseWriter, r *http.Request) {
	p := newQueryParser(r.URL.Query())
	limit := p.int("limit", 0)
	offset := p.int("offset", 0)
	if err := p.err(); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	ops, err := h.bulk.List(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	out := make([]bulkResponse, len(ops))
	for i := range ops {
		out[i] = toBulkResponse(&ops[i])
	}
	writeJSON(w, http.StatusOK, out)
}
