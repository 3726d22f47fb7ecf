package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/scholarship-curator/internal/domain"
)

type analyticsService interface {
	Dashboard(ctx context.Context) (*domain.DashboardMetrics, error)
	SourcePerformance(ctx context.Context) ([]domain.SourcePerformance, error)
	ConfidenceDistribution(ctx context.Context) (domain.ConfidenceDistribution, error)
}

// AnalyticsHandler serves read-only reporting endpoints.
type AnalyticsHandler struct {
	analytics analyticsService
	log       *slog.Logger
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(analytics analyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics: analytics,
		log:       logger.With("handler", "analytics"),
	}
}

// Dashboard returns totals, weekly growth and the top sources.
// GET /api/analytics/dashboard
func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	m, err := h.analytics.Dashboard(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDashboardResponse(m))
}

// Sources returns per-source extraction quality.
// GET /api/analytics/sources
func (h *AnalyticsHandler) Sources(w http.ResponseWriter, r *http.Request) {
	perf, err := h.analytics.SourcePerformance(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSourcePerformanceResponses(perf))
}

// Confidence returns the parsing-confidence histogram.
// GET /api/analytics/confidence
func (h *AnalyticsHandler) Confidence(w http.ResponseWriter, r *http.Request) {
	d, err := h.analytics.ConfidenceDistribution(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toConfidenceResponse(d))
}
