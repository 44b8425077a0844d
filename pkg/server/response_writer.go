package server

import "net/http"

// responseWriter wraps http.ResponseWriter to record the status code
// for logging and metrics, and to swallow duplicate WriteHeader calls
// from stacked middleware.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

// WriteHeader records and writes the status code. Only the first call
// takes effect.
func (rw *responseWriter) WriteHeader(statusCode int) {
	if rw.written {
		return
	}
	rw.statusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
	rw.written = true
}

// Write writes the body, defaulting the status to 200 when WriteHeader
// was never called.
func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Status returns the status code that was written.
func (rw *responseWriter) Status() int {
	return rw.statusCode
}
