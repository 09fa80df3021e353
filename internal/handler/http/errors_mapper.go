package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-shop/internal/service"
	"github.com/MKhiriev/go-shop/internal/store"
	"github.com/MKhiriev/go-shop/internal/upload"
)

var errorStatusMap = map[error]int{
	ErrNotFound:                    http.StatusNotFound,
	service.ErrProductNotFound:     http.StatusNotFound,
	store.ErrProductNotFound:       http.StatusNotFound,
	service.ErrInvalidDataProvided: http.StatusUnprocessableEntity,

	upload.ErrFileTooLarge:       http.StatusRequestEntityTooLarge,
	upload.ErrMalformedMultipart: http.StatusBadRequest,

	service.ErrIdentityResolution: http.StatusInternalServerError,
	upload.ErrWritingFile:         http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
