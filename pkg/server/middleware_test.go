package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRequestIDMiddleware(t *testing.T) {
	s := NewServer(nil, nil)
	handler := s.requestIDMiddleware(okHandler)

	// generated when absent
	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(w.Header().Get("X-Request-Id"))
	assert.NoError(t, err)

	// valid IDs pass through
	supplied := uuid.New().String()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Request-Id", supplied)
	w = httptest.NewRecorder()
	handler(w, r)
	assert.Equal(t, supplied, w.Header().Get("X-Request-Id"))

	// malformed IDs are replaced
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Request-Id", "not-a-uuid")
	w = httptest.NewRecorder()
	handler(w, r)
	got := w.Header().Get("X-Request-Id")
	assert.NotEqual(t, "not-a-uuid", got)
	_, err = uuid.Parse(got)
	assert.NoError(t, err)
}

func TestRateLimitMiddleware(t *testing.T) {
	cfg := NewConfig()
	cfg.RateLimit = 0 // reject everything
	cfg.RateLimitBurst = 0
	s := NewServer(cfg, nil)
	handler := s.rateLimitMiddleware(okHandler)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/v1/snapshot", nil))
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
}

func TestRateLimitHeaders(t *testing.T) {
	s := NewServer(nil, nil)
	handler := s.rateLimitMiddleware(okHandler)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/v1/snapshot", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	s := NewServer(nil, nil)
	handler := s.panicRecoveryMiddleware(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler(w, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestResponseWriterStatus(t *testing.T) {
	w := httptest.NewRecorder()
	rw := newResponseWriter(w)

	rw.WriteHeader(http.StatusTeapot)
	rw.WriteHeader(http.StatusOK) // ignored
	assert.Equal(t, http.StatusTeapot, rw.Status())
	assert.Equal(t, http.StatusTeapot, w.Code)
}
