package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-shop/internal/logger"
)

// appHandler is a route handler. A returned error is passed to the error
// boundary; a handler that returns an error must not have written a
// response.
type appHandler func(w http.ResponseWriter, r *http.Request) error

// stageFunc is a pipeline stage that may enrich the request. A returned
// error stops the pipeline and is passed to the error boundary.
type stageFunc func(r *http.Request) (*http.Request, error)

// handle adapts fn to http.Handler and routes its errors to the boundary.
func (h *Handler) handle(fn appHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.fail(w, r, err)
		}
	}
}

// stage adapts fn to middleware and routes its errors to the boundary.
func (h *Handler) stage(fn stageFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			enriched, err := fn(r)
			if err != nil {
				h.fail(w, r, err)
				return
			}
			next.ServeHTTP(w, enriched)
		})
	}
}

// withErrorBoundary recovers panics from the rest of the pipeline and
// renders them like any other failure.
func (h *Handler) withErrorBoundary(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bw := &statusWriter{ResponseWriter: w}

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			h.logger.Error().
				Str("trace_id", w.Header().Get(traceIDHeader)).
				Str("uri", r.RequestURI).
				Any("panic", rec).
				Msg("recovered from panic")
			h.fail(bw, r, fmt.Errorf("%w: %v", ErrPanic, rec))
		}()

		next.ServeHTTP(bw, r)
	})
}

// fail logs err and renders the error page that matches it. Nothing is
// rendered when the response has already started.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	// unknown pages are reported by the access log only
	switch {
	case status >= http.StatusInternalServerError:
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
	case status != http.StatusNotFound:
		log.Warn().Err(err).Str("uri", r.RequestURI).Int("status", status).Msg("request rejected")
	}

	if headerWritten(w) {
		return
	}

	var renderErr error
	switch status {
	case http.StatusNotFound:
		renderErr = h.render(w, r, status, viewNotFound, page{Title: "Page Not Found", Path: "/404"})
	case http.StatusInternalServerError:
		renderErr = h.render(w, r, status, viewServerError, page{Title: "Error", Path: "/500"})
	default:
		renderErr = h.render(w, r, status, viewStatus, page{Title: http.StatusText(status)})
	}

	if renderErr != nil {
		log.Err(renderErr).Msg("error rendering error page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
