package http

import (
	"context"
	"html/template"
	"net/http"

	"github.com/MKhiriev/go-shop/internal/session"
	"github.com/gorilla/csrf"
)

// locals are the values every view can read.
type locals struct {
	IsAuthenticated bool
	CSRFToken       string
	CSRFField       template.HTML
}

type localsCtxKey struct{}

func localsFromContext(ctx context.Context) (locals, bool) {
	l, ok := ctx.Value(localsCtxKey{}).(locals)
	return l, ok
}

// templateLocals exposes the login state and the CSRF token to the views.
func (h *Handler) templateLocals(r *http.Request) (*http.Request, error) {
	l := locals{
		CSRFToken: csrf.Token(r),
		CSRFField: csrf.TemplateField(r),
	}
	if sess, ok := session.FromContext(r.Context()); ok {
		l.IsAuthenticated = sess.IsLoggedIn()
	}

	return r.WithContext(context.WithValue(r.Context(), localsCtxKey{}, l)), nil
}
