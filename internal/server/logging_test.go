package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureDefaultLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLoggingMiddleware_RedactsCredentials(t *testing.T) {
	buf := captureDefaultLog(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/round/bets", nil)
	req.Header.Set(HeaderAPIKey, "wheel-secret")
	req.Header.Set(HeaderAuthorization, "Bearer tok")
	req.Header.Set("User-Agent", "overlay/1.0")
	loggingMiddleware(okHandler).ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "wheel-secret")
	assert.NotContains(t, out, "Bearer tok")
	assert.Contains(t, out, RedactedValue)
	assert.Contains(t, out, "overlay/1.0")
}

func TestLoggingMiddleware_RecordsStatusAndSize(t *testing.T) {
	buf := captureDefaultLog(t)

	h := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("busy"))
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/round/skip", nil))

	out := buf.String()
	assert.Contains(t, out, LogMsgRequestCompleted)
	assert.Contains(t, out, "status=409")
	assert.Contains(t, out, "bytes=4")
}

func TestLoggingMiddleware_SkipsProbes(t *testing.T) {
	buf := captureDefaultLog(t)

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		loggingMiddleware(okHandler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
	assert.Empty(t, buf.String())
}

func TestStatusRecorder_DefaultsToOK(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder()}
	assert.Equal(t, http.StatusOK, rec.statusCode())

	rec.WriteHeader(http.StatusTeapot)
	rec.WriteHeader(http.StatusOK)
	assert.Equal(t, http.StatusTeapot, rec.statusCode())
}
