package http

import (
	"net/http"

	"github.com/MKhiriev/go-shop/internal/utils"
)

// parseBody parses urlencoded and multipart bodies. An accepted image
// upload is attached to the request context; rejected files are dropped
// without an error.
func (h *Handler) parseBody(r *http.Request) (*http.Request, error) {
	file, err := h.uploads.Accept(r)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return r, nil
	}

	return r.WithContext(utils.WithUpload(r.Context(), file)), nil
}
