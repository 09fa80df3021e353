package http

import (
	"net/http"

	"github.com/MKhiriev/go-shop/internal/session"
	"github.com/MKhiriev/go-shop/internal/utils"
)

// returnToKey is the session value holding the page to open after login.
const returnToKey = "return_to"

// requireAuth redirects anonymous requests to the login page and remembers
// where they were going.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := session.FromContext(r.Context())
		if !ok {
			h.fail(w, r, ErrNoSession)
			return
		}

		if _, hasUser := utils.UserFromContext(r.Context()); !sess.IsLoggedIn() || !hasUser {
			if r.Method == http.MethodGet {
				sess.Set(returnToKey, r.URL.RequestURI())
			}
			if err := redirect(w, r, "/login"); err != nil {
				h.fail(w, r, err)
			}
			return
		}

		next.ServeHTTP(w, r)
	})
}
