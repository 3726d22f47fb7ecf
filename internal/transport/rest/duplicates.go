package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/scholarship-curator/internal/service/duplicate"
)

type duplicateDetector interface {
	Detect(ctx context.Context, full bool) (*duplicate.Report, error)
}

// DuplicateHandler serves near-duplicate title scans.
type DuplicateHandler struct {
	detector duplicateDetector
	log      *slog.Logger
}

// NewDuplicateHandler creates a DuplicateHandler.
func NewDuplicateHandler(detector duplicateDetector, logger *slog.Logger) *DuplicateHandler {
	return &DuplicateHandler{
		detector: detector,
		log:      logger.With("handler", "duplicates"),
	}
}

// Detect scans records still in review for near-identical titles.
// GET /api/duplicates?full=true
func (h *DuplicateHandler) Detect(w http.ResponseWriter, r *http.Request) {
	p := newQueryParser(r.URL.Query())
	full := p.bool("full")
	if err := p.err(); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	report, err := h.detector.Detect(r.Context(), full != nil && *full)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDuplicateReportResponse(report))
}
