package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-shop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion(t *testing.T) {
	tests := []struct {
		name     string
		info     models.AppBuildInfo
		wantBody string
	}{
		{
			name:     "full build info",
			info:     models.NewAppBuildInfo("1.2.3", "2026-01-02", "abc123"),
			wantBody: `{"version":"1.2.3","date":"2026-01-02","commit":"abc123"}`,
		},
		{
			name:     "missing date and commit",
			info:     models.NewAppBuildInfo("v2.0.0-beta+build.42", "", ""),
			wantBody: `{"version":"v2.0.0-beta+build.42","date":"N/A","commit":"N/A"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(tt.info)

			rec := env.browser(t).get("/version")

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Empty(t, rec.Result().Cookies(), "version is served outside the session gate")
		})
	}
}
