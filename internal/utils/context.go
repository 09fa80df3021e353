// Package utils provides general-purpose helper utilities used across the
// shop: type-safe context keys, HMAC signing of cookie values, small HTTP
// helpers and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-shop/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserCtxKey holds the *models.User attached by identity resolution.
	UserCtxKey = contextKey("user")

	// UploadCtxKey holds the *models.UploadedFile accepted for the request.
	UploadCtxKey = contextKey("upload")
)

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// UserFromContext returns the user attached to ctx.
//
// ok is false for anonymous requests: nothing was attached, or the attached
// value is nil or of an unexpected type.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

// WithUpload returns a copy of ctx carrying the accepted upload.
func WithUpload(ctx context.Context, file *models.UploadedFile) context.Context {
	return context.WithValue(ctx, UploadCtxKey, file)
}

// UploadFromContext returns the upload accepted for the request, if any.
func UploadFromContext(ctx context.Context) (*models.UploadedFile, bool) {
	file, ok := ctx.Value(UploadCtxKey).(*models.UploadedFile)
	if !ok || file == nil {
		return nil, false
	}
	return file, true
}
