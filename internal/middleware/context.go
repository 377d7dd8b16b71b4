package middleware

// Context keys shared across middleware and handlers.
const (
	ContextKeyRequestID = "request_id"
)
