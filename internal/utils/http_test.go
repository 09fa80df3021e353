package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		status     int
		wantStatus int
		wantBody   string
		wantErr    bool
	}{
		{name: "map", data: map[string]string{"key": "value"}, status: http.StatusOK, wantStatus: http.StatusOK, wantBody: `{"key":"value"}`},
		{name: "nil", data: nil, status: http.StatusOK, wantStatus: http.StatusOK, wantBody: "null"},
		{name: "custom status", data: []int{1, 2}, status: http.StatusCreated, wantStatus: http.StatusCreated, wantBody: "[1,2]"},
		{name: "not serializable", data: make(chan int), status: http.StatusOK, wantStatus: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantErr {
				require.Error(t, err)
				assert.Zero(t, n)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			assert.True(t, json.Valid(w.Body.Bytes()))
		})
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		remote string
		want   string
	}{
		{remote: "192.0.2.1:1234", want: "192.0.2.1"},
		{remote: "[2001:db8::1]:443", want: "2001:db8::1"},
		{remote: "pipe", want: "pipe"},
	}

	for _, tt := range tests {
		t.Run(tt.remote, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote
			assert.Equal(t, tt.want, ClientIP(r))
		})
	}
}
