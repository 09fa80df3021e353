package http

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-shop/internal/app"
	"github.com/MKhiriev/go-shop/internal/service"
	"github.com/MKhiriev/go-shop/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestSafeReturnTo(t *testing.T) {
	tests := []struct {
		target string
		want   string
	}{
		{target: "", want: "/"},
		{target: "/admin/products", want: "/admin/products"},
		{target: "/products?page=2", want: "/products?page=2"},
		{target: "//evil.example.com", want: "/"},
		{target: "/\\evil.example.com", want: "/"},
		{target: "https://evil.example.com", want: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			assert.Equal(t, tt.want, safeReturnTo(tt.target))
		})
	}
}

func TestFormErrorMessage(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		want   string
		wantOK bool
	}{
		{
			name:   "validation error",
			err:    fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidEmail),
			want:   validators.ErrInvalidEmail.Error(),
			wantOK: true,
		},
		{
			name:   "invalid credentials",
			err:    service.ErrInvalidCredentials,
			want:   app.MsgInvalidCredentials,
			wantOK: true,
		},
		{
			name:   "email taken",
			err:    fmt.Errorf("signup: %w", service.ErrEmailTaken),
			want:   app.MsgEmailTaken,
			wantOK: true,
		},
		{
			name:   "invalid data without field message",
			err:    service.ErrInvalidDataProvided,
			want:   app.MsgInvalidForm,
			wantOK: true,
		},
		{
			name:   "store failure",
			err:    errors.New("connection reset"),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := formErrorMessage(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
