//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/scholarship-curator/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/scholarship-curator/internal/app"
	authpkg "github.com/heartmarshall/scholarship-curator/internal/auth"
	"github.com/heartmarshall/scholarship-curator/internal/config"
	"github.com/heartmarshall/scholarship-curator/internal/domain"
	"github.com/heartmarshall/scholarship-curator/internal/transport/middleware"
	"github.com/heartmarshall/scholarship-curator/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// testConfig mirrors the env defaults so tests do not depend on the
// environment of the machine running them.
func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-at-least-32-chars-long!!",
			JWTIssuer:      "test-issuer",
			AccessTokenTTL: 15 * time.Minute,
		},
		Curation: config.CurationConfig{
			TriageApproveThreshold: 0.90,
			TriageReviewThreshold:  0.70,
			TriageHoldThreshold:    0.50,
			DuplicateThreshold:     0.80,
			DuplicateMaxMatches:    50,
			DuplicateMaxPairwise:   500,
			SearchDefaultLimit:     1000,
			SearchMaxLimit:         5000,
			AnalyticsTopSources:    10,
			DefaultDeadline:        365 * 24 * time.Hour,
			RejectedRetention:      90 * 24 * time.Hour,
		},
		Catalog: config.CatalogConfig{Table: "scholarships"},
		Cache:   config.CacheConfig{Records: 128, EntriesPerRecord: 20},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type,X-Request-Id",
			MaxAge:         86400,
		},
	}
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	cfg := testConfig()

	svc, err := app.NewServices(pool, cfg, logger, prometheus.NewRegistry())
	require.NoError(t, err)

	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	router := rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler("test-version",
			rest.Component{Name: "database", Probe: pool, Required: true},
			rest.Component{Name: "catalog", Probe: svc.Catalog},
		),
		Records:    rest.NewRecordHandler(svc.Curation, svc.Search, logger),
		Bulk:       rest.NewBulkHandler(svc.Bulk, logger),
		Duplicates: rest.NewDuplicateHandler(svc.Duplicates, logger),
		Analytics:  rest.NewAnalyticsHandler(svc.Analytics, logger),
		Metrics:    svc.Metrics.Handler(),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtMgr),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// token issues a bearer token for a fresh actor with the given role.
func (ts *testServer) token(t *testing.T, role domain.ActorRole) (string, string) {
	t.Helper()

	actor := string(role) + "-" + uuid.NewString()[:8]
	tok, err := ts.jwt.GenerateAccessToken(actor, role)
	require.NoError(t, err)
	return tok, actor
}

// do sends a JSON request and returns the status and raw body.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// doJSON is do followed by decoding into T; it fails on an unexpected status.
func doJSON[T any](t *testing.T, ts *testServer, method, path string, body any, token string, wantStatus int) T {
	t.Helper()

	status, raw := ts.do(t, method, path, body, token)
	require.Equal(t, wantStatus, status, "body: %s", raw)

	var out T
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return out
}

// ---------------------------------------------------------------------------
// Response shapes (subset of the REST DTOs).
// ---------------------------------------------------------------------------

type recordBody struct {
	ID                 string              `json:"id"`
	Title              string              `json:"title"`
	Status             domain.RecordStatus `json:"status"`
	Category           domain.Category     `json:"category"`
	ParsingConfidence  float64             `json:"parsing_confidence"`
	IsEnhanced         bool                `json:"is_enhanced"`
	ReviewedBy         *string             `json:"reviewed_by"`
	ApprovedBy         *string             `json:"approved_by"`
	ReviewNotes        *string             `json:"review_notes"`
	PublishedCatalogID *string             `json:"published_catalog_id"`
	Media              []struct {
		URL string `json:"url"`
	} `json:"media"`
}

type logEntryBody struct {
	ProcessType domain.ProcessType `json:"process_type"`
	ProcessedBy string             `json:"processed_by"`
}

type searchBody struct {
	Records []recordBody `json:"records"`
	Total   int          `json:"total"`
}

type bulkBody struct {
	ID             string   `json:"id"`
	RequestedItems int      `json:"requested_items"`
	TotalItems     int      `json:"total_items"`
	SucceededItems int      `json:"succeeded_items"`
	FailedItems    int      `json:"failed_items"`
	ProcessedIDs   []string `json:"processed_ids"`
	Failures       []struct {
		RecordID string `json:"record_id"`
		Reason   string `json:"reason"`
	} `json:"failures"`
}

type errorBody struct {
	Error  string `json:"error"`
	Code   string `json:"code"`
	Fields []struct {
		Field string `json:"field"`
	} `json:"fields"`
}

// newCandidate returns a create request with a unique title and source.
func newCandidate(confidence float64) map[string]any {
	suffix := uuid.NewString()[:8]
	return map[string]any{
		// A full uuid keeps unrelated titles far apart for the duplicate detector.
		"title":       "Engineering Scholarship " + uuid.NewString(),
		"description": "Support for engineering students in the region.",
		"source_url":  "https://scholarships.example.org/" + suffix,
		"raw_text":    "raw scraped text " + suffix,
		"scraped_at":  time.Now().UTC().Format(time.RFC3339),

		"parsing_confidence": confidence,
	}
}
