package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	nserrors "github.com/netsnap/netsnap/pkg/errors"
	"github.com/netsnap/netsnap/pkg/serializer"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code      nserrors.ErrorCode `json:"code"`
	Message   string             `json:"message"`
	Details   map[string]any     `json:"details,omitempty"`
	RequestID string             `json:"request_id"`
	Timestamp time.Time          `json:"timestamp"`
	Retryable bool               `json:"retryable"`
}

// writeError writes a structured error response, reusing the request ID
// from context when the middleware has set one.
func writeError(w http.ResponseWriter, r *http.Request, statusCode int,
	code nserrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	serializer.RespondJSON(w, statusCode, ErrorResponse{
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}
