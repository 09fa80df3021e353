package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-shop/internal/logger"
)

// withLogging writes one structured log line and, when an access log is
// configured, one combined-format access log line per request. A request
// that panics is recorded as the 500 the error boundary answers it with.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &statusWriter{ResponseWriter: w}

		defer func() {
			rec := recover()
			status := lw.statusOr(http.StatusOK)
			if rec != nil && !lw.written {
				status = http.StatusInternalServerError
			}

			h.logRequest(r, start, status, lw.size)

			if rec != nil {
				panic(rec)
			}
		}()

		next.ServeHTTP(lw, r)
	})
}

func (h *Handler) logRequest(r *http.Request, start time.Time, status, size int) {
	log := logger.FromRequest(r)

	log.Info().
		Str("uri", r.RequestURI).
		Str("method", r.Method).
		Int("status", status).
		Dur("duration", time.Since(start)).
		Int("size", size).
		Send()

	if h.accessLog == nil {
		return
	}

	err := h.accessLog.Write(logger.AccessEntry{
		RemoteAddr: r.RemoteAddr,
		Time:       start,
		Method:     r.Method,
		URI:        r.RequestURI,
		Proto:      r.Proto,
		Status:     status,
		Size:       size,
		Referer:    r.Referer(),
		UserAgent:  r.UserAgent(),
	})
	if err != nil {
		log.Err(err).Msg("error writing access log")
	}
}
