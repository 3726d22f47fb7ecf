package rest

import (
	"net/http"

	"github.com/heartmarshall/scholarship-curator/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health     *HealthHandler
	Records    *RecordHandler
	Bulk       *BulkHandler
	Duplicates *DuplicateHandler
	Analytics  *AnalyticsHandler
	Metrics    http.Handler
}

// NewRouter registers all routes. Probes and /metrics are public; everything
// under /api/ needs an authenticated actor.
func NewRouter(h Handlers) *http.ServeMux {
	api := http.NewServeMux()

	api.HandleFunc("POST /api/records", h.Records.Create)
	api.HandleFunc("GET /api/records", h.Records.Search)
	api.HandleFunc("GET /api/records/{id}", h.Records.Get)
	api.HandleFunc("PATCH /api/records/{id}", h.Records.Update)
	api.HandleFunc("DELETE /api/records/{id}", h.Records.Purge)
	api.HandleFunc("GET /api/records/{id}/history", h.Records.History)
	api.HandleFunc("POST /api/records/{id}/review", h.Records.StartReview)
	api.HandleFunc("POST /api/records/{id}/approve", h.Records.Approve)
	api.HandleFunc("POST /api/records/{id}/reject", h.Records.Reject)
	api.HandleFunc("POST /api/records/{id}/publish", h.Records.Publish)
	api.HandleFunc("POST /api/records/{id}/categorize", h.Records.Categorize)
	api.HandleFunc("POST /api/records/{id}/enhance", h.Records.Enhance)
	api.HandleFunc("POST /api/records/{id}/media", h.Records.AddMedia)

	api.HandleFunc("POST /api/bulk", h.Bulk.Run)
	api.HandleFunc("GET /api/bulk", h.Bulk.List)
	api.HandleFunc("GET /api/bulk/{id}", h.Bulk.Get)

	api.HandleFunc("GET /api/duplicates", h.Duplicates.Detect)

	api.HandleFunc("GET /api/analytics/dashboard", h.Analytics.Dashboard)
	api.HandleFunc("GET /api/analytics/sources", h.Analytics.Sources)
	api.HandleFunc("GET /api/analytics/confidence", h.Analytics.Confidence)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}
	mux.Handle("/api/", middleware.RequireActor()(api))

	return mux
}
