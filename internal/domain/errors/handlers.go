package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string            `json:"code"`              // Business error code, e.g., "VALIDATION_FAILED"
	Details string            `json:"details,omitempty"` // Detailed error description
	Fields  map[string]string `json:"fields,omitempty"`  // Field path → message for validation errors
}

// Response defines the unified envelope used by the central error handler.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
