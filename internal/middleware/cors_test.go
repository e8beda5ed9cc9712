package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"galaxy-server/internal/shared/config"
)

func corsHandler(t *testing.T) http.Handler {
	t.Helper()

	m := NewCORS(config.FrontendConfig{URL: "http://localhost:3000"})
	return m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func preflight(handler http.Handler, origin, method string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, "/api/galaxy/generate", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", method)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCORSAllowsConfiguredFrontend(t *testing.T) {
	rec := preflight(corsHandler(t), "http://localhost:3000", http.MethodPost)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	rec := preflight(corsHandler(t), "http://evil.example", http.MethodGet)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSRejectsWriteMethods(t *testing.T) {
	rec := preflight(corsHandler(t), "http://localhost:3000", http.MethodDelete)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORSExposesDownloadFilename(t *testing.T) {
	handler := corsHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/galaxy/export", nil)
	req.Header.Set("Origin", "http://localhost:3000")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "Content-Disposition")
}
