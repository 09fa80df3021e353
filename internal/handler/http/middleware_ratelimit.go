package http

import (
	"net/http"
	"sync"

	"github.com/MKhiriev/go-shop/internal/app"
	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/internal/utils"
	"golang.org/x/time/rate"
)

// maxTrackedClients bounds the limiter map; it is reset when exceeded.
const maxTrackedClients = 10000

// rateLimiter keeps one token bucket per client address.
type rateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func newRateLimiter(perSecond float64, burst int) *rateLimiter {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}

	return &rateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     limit,
		burst:    burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters[key]
	if !ok {
		if len(rl.limiters) >= maxTrackedClients {
			rl.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = limiter
	}

	return limiter.Allow()
}

// limitLogin answers with 429 when a client submits credentials too often.
func (h *Handler) limitLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := utils.ClientIP(r)
		if h.limiter.allow(key) {
			next.ServeHTTP(w, r)
			return
		}

		logger.FromRequest(r).Warn().Str("client", key).Str("uri", r.RequestURI).Msg("login rate limit exceeded")

		w.Header().Set("Retry-After", "1")
		err := h.render(w, r, http.StatusTooManyRequests, viewStatus, page{
			Title: http.StatusText(http.StatusTooManyRequests),
			Data:  app.MsgTooManyAttempts,
		})
		if err != nil {
			h.fail(w, r, err)
		}
	})
}
