package upload

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path"
	"time"

	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/models"
)

// FieldName is the multipart field holding the image.
const FieldName = "image"

// URLPrefix is the path under which stored files are served.
const URLPrefix = "images"

// AllowedMIMETypes are the declared content types accepted for upload.
var AllowedMIMETypes = map[string]struct{}{
	"image/png":  {},
	"image/jpg":  {},
	"image/jpeg": {},
}

// IsAllowed reports whether mimeType may be stored.
func IsAllowed(mimeType string) bool {
	_, ok := AllowedMIMETypes[mimeType]
	return ok
}

// Handler parses multipart requests and stores the image field.
type Handler struct {
	fs       FS
	maxBytes int64
	now      func() time.Time
}

func NewHandler(fs FS, maxBytes int64) *Handler {
	return &Handler{
		fs:       fs,
		maxBytes: maxBytes,
		now:      time.Now,
	}
}

// WithClock replaces the time source used for stored names.
func (h *Handler) WithClock(now func() time.Time) *Handler {
	h.now = now
	return h
}

// Accept parses a multipart request and stores its image field.
//
// It returns (nil, nil) when the request is not multipart, has no image
// field, or the field's content type is not allowed. Other form fields are
// available through r.FormValue afterwards.
func (h *Handler) Accept(r *http.Request) (*models.UploadedFile, error) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(nil, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, http.ErrNotMultipart):
			return nil, nil
		case errors.As(err, &tooLarge), errors.Is(err, multipart.ErrMessageTooLarge):
			return nil, fmt.Errorf("%w: %w", ErrFileTooLarge, err)
		default:
			return nil, fmt.Errorf("%w: %w", ErrMalformedMultipart, err)
		}
	}

	file, header, err := r.FormFile(FieldName)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedMultipart, err)
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	if !IsAllowed(mimeType) {
		log.Debug().Str("mime_type", mimeType).Str("file_name", header.Filename).Msg("upload dropped: type not allowed")
		return nil, nil
	}

	name := StoredName(header.Filename, h.now())
	size, err := h.fs.WriteFile(name, file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	return &models.UploadedFile{
		StoredName:   name,
		OriginalName: header.Filename,
		MIMEType:     mimeType,
		Path:         path.Join(URLPrefix, name),
		Size:         size,
	}, nil
}

// Remove deletes a stored file by the path recorded on its owner.
func (h *Handler) Remove(storedPath string) error {
	return h.fs.Remove(path.Base(storedPath))
}
