package server

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// contextKeyRequestID is the context key for request ID
const contextKeyRequestID contextKey = "requestID"
