package http

import (
	"net/http"

	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/internal/session"
)

// withSession loads the session of the request and commits its changes
// before the response headers are written. A session store failure ends
// the request in the error boundary; pages and redirects commit ahead of
// writing so that a failed save is answered with the error page too.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		sess, err := h.sessions.Load(ctx, r)
		if err != nil {
			h.fail(w, r, err)
			return
		}

		sw, commit := h.sessions.Wrap(w, r, sess)
		ctx = session.WithCommit(session.WithSession(ctx, sess), commit)
		next.ServeHTTP(sw, r.WithContext(ctx))

		if err = commit(); err != nil {
			logger.FromRequest(r).Err(err).Str("uri", r.RequestURI).Msg("error saving session")
		}
	})
}
