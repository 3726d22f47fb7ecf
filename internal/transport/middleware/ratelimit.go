package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/scholarship-curator/pkg/ctxutil"
)

// idleAfter is how long a caller's limiter survives without requests.
const idleAfter = 10 * time.Minute

// RateLimiter keeps one token bucket per caller. Bulk endpoints can fan out
// to a thousand workflow calls, so the server guards /api with it.
type RateLimiter struct {
	callers sync.Map // map[string]*callerLimiter
	stop    chan struct{}
}

type callerLimiter struct {
	limiter  *rate.Limiter
	mu       sync.Mutex
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter with background cleanup.
// Call Stop() on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{})}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// Limit returns middleware that rate-limits requests to maxPerMinute per
// caller, with bursts up to the full minute's budget. Authenticated callers
// are keyed by actor, so it must run after Auth; anonymous ones by client IP.
// A non-positive limit yields nil, which Chain skips.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	if maxPerMinute <= 0 {
		return nil
	}
	every := rate.Every(time.Minute / time.Duration(maxPerMinute))
	retryAfter := strconv.Itoa(int(60/maxPerMinute) + 1)
	limit := strconv.Itoa(maxPerMinute)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-RateLimit-Limit", limit)
			if !rl.allow(rateKey(r), every, maxPerMinute) {
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) allow(key string, every rate.Limit, burst int) bool {
	val, _ := rl.callers.LoadOrStore(key, &callerLimiter{limiter: rate.NewLimiter(every, burst)})
	c := val.(*callerLimiter)

	c.mu.Lock()
	c.lastSeen = time.Now()
	c.mu.Unlock()

	return c.limiter.Allow()
}

// rateKey keys reviewers sharing one NAT address separately.
func rateKey(r *http.Request) string {
	if actor, ok := ctxutil.ActorFromCtx(r.Context()); ok {
		return "actor:" + actor
	}
	return "ip:" + clientIP(r)
}

// clientIP strips the port so reconnects from one host share a bucket.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.callers.Range(func(key, value any) bool {
				c := value.(*callerLimiter)
				c.mu.Lock()
				idle := now.Sub(c.lastSeen)
				c.mu.Unlock()
				if idle > idleAfter {
					rl.callers.Delete(key)
				}
				return true
			})
		}
	}
}
