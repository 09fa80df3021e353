package upload

import "errors"

var (
	// ErrFileTooLarge is returned when the multipart body exceeds the
	// configured limit.
	ErrFileTooLarge = errors.New("uploaded file is too large")

	// ErrMalformedMultipart is returned for multipart bodies that cannot be
	// parsed.
	ErrMalformedMultipart = errors.New("malformed multipart body")

	// ErrWritingFile is returned when an accepted file cannot be stored.
	ErrWritingFile = errors.New("failed to write uploaded file")
)
