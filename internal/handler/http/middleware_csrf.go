package http

import (
	"net/http"

	"github.com/MKhiriev/go-shop/internal/app"
	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/gorilla/csrf"
)

// csrfFieldName is the form field carrying the CSRF token.
const csrfFieldName = "_csrf"

// withCSRF rejects state-changing requests without a valid CSRF token with
// a 403 page.
func (h *Handler) withCSRF() func(http.Handler) http.Handler {
	protect := csrf.Protect(
		h.opts.CSRFKey,
		csrf.FieldName(csrfFieldName),
		csrf.Secure(h.opts.SecureCookies),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.Path("/"),
		csrf.HttpOnly(true),
		csrf.ErrorHandler(http.HandlerFunc(h.csrfFailed)),
	)

	return func(next http.Handler) http.Handler {
		protected := protect(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.TLS == nil {
				r = csrf.PlaintextHTTPRequest(r)
			}
			protected.ServeHTTP(w, r)
		})
	}
}

func (h *Handler) csrfFailed(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	reason := "unknown"
	if err := csrf.FailureReason(r); err != nil {
		reason = err.Error()
	}
	log.Warn().Str("uri", r.RequestURI).Str("method", r.Method).Str("reason", reason).Msg("CSRF validation failed")

	err := h.render(w, r, http.StatusForbidden, viewStatus, page{
		Title: http.StatusText(http.StatusForbidden),
		Data:  app.MsgCSRFFailed,
	})
	if err != nil {
		h.fail(w, r, err)
	}
}
