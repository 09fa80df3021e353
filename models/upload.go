package models

// UploadedFile describes a file accepted by the upload handler and written
// to the images directory. It lives only for the duration of the request;
// route handlers keep Path on whatever entity the file belongs to.
type UploadedFile struct {
	// StoredName is the generated, timestamp-prefixed file name.
	StoredName string

	// OriginalName is the file name supplied by the client.
	OriginalName string

	// MIMEType is the content type declared by the client for the part.
	MIMEType string

	// Path is the destination path relative to the working directory,
	// e.g. "images/2026-01-02T03-04-05.678Z-shoe.png".
	Path string

	// Size is the number of bytes written.
	Size int64
}
