package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/scholarship-curator/pkg/ctxutil"
)

// Logger returns middleware that logs each HTTP request with method, path,
// status code, duration, request id and, when authenticated, the actor.
// Logger runs outside Auth; Auth reports the resolved actor back through
// the sink Logger places in the context.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			seen := &actorSeen{}

			next.ServeHTTP(sw, r.WithContext(withActorSink(r.Context(), seen)))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if seen.actor != "" {
				attrs = append(attrs, slog.String("actor", seen.actor))
			}

			level := slog.LevelInfo
			if sw.status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

type actorSinkKey struct{}

// actorSeen receives the actor resolved further down the chain.
type actorSeen struct {
	actor string
}

func withActorSink(ctx context.Context, s *actorSeen) context.Context {
	return context.WithValue(ctx, actorSinkKey{}, s)
}

func reportActor(ctx context.Context, actor string) {
	if s, ok := ctx.Value(actorSinkKey{}).(*actorSeen); ok {
		s.actor = actor
	}
}
