package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-shop/internal/session"
	"github.com/MKhiriev/go-shop/internal/utils"
)

// resolveIdentity attaches the user referenced by the session to the
// request. A reference to a missing user leaves the request anonymous; a
// lookup failure or timeout fails the request.
func (h *Handler) resolveIdentity(r *http.Request) (*http.Request, error) {
	sess, ok := session.FromContext(r.Context())
	if !ok || !sess.HasUser() {
		return r, nil
	}

	ctx := r.Context()
	if h.opts.IdentityTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.opts.IdentityTimeout)
		defer cancel()
	}

	user, found, err := h.services.IdentityService.ResolveUser(ctx, sess.UserID())
	if err != nil {
		return nil, err
	}
	if !found {
		return r, nil
	}

	return r.WithContext(utils.WithUser(r.Context(), &user)), nil
}
