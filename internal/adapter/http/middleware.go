package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/time/rate"
)

type viewerKey struct{}

// viewerID returns the authenticated user id stored by authenticate.
func viewerID(r *http.Request) string {
	id, _ := r.Context().Value(viewerKey{}).(string)
	return id
}

// authenticate verifies the HS256 bearer token and stores its subject as
// the viewer id. Requests without a valid token get HTTP 401.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || raw == "" || len(h.secret) == 0 {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		token, err := jwt.Parse(raw, func(*jwt.Token) (any, error) {
			return h.secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			h.logger.Debug("rejected token", slog.Any("error", err))
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		sub, err := token.Claims.GetSubject()
		if err != nil || sub == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), viewerKey{}, sub)))
	})
}

// logRequests writes one log line per request once it has been served.
func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			h.logger.Info("http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}

// limiterSweepInterval is how often buckets that have refilled are dropped.
const limiterSweepInterval = 10 * time.Minute

// viewerLimiter keeps one token bucket per viewer.
type viewerLimiter struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	limiters  map[string]*rate.Limiter
	lastSweep time.Time
	now       func() time.Time
}

func newViewerLimiter(limit rate.Limit, burst int) *viewerLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &viewerLimiter{
		limit:    limit,
		burst:    burst,
		limiters: make(map[string]*rate.Limiter),
		now:      time.Now,
	}
}

func (l *viewerLimiter) allow(viewer string) bool {
	if l.limit <= 0 {
		return true
	}
	l.mu.Lock()
	now := l.now()
	if now.Sub(l.lastSweep) >= limiterSweepInterval {
		l.sweep(now)
		l.lastSweep = now
	}
	lim, ok := l.limiters[viewer]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[viewer] = lim
	}
	l.mu.Unlock()
	return lim.AllowN(now, 1)
}

// sweep drops full buckets. A fresh limiter grants the same burst, so a
// returning viewer gains nothing from the eviction. Caller holds mu.
func (l *viewerLimiter) sweep(now time.Time) {
	for viewer, lim := range l.limiters {
		if lim.TokensAt(now) >= float64(l.burst) {
			delete(l.limiters, viewer)
		}
	}
}

// limitSubmissions answers HTTP 429 once a viewer exceeds the submission
// rate.
func (h *Handler) limitSubmissions(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.limiter.allow(viewerID(r)) {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
