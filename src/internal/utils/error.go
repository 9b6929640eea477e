package utils

// ErrorResponse is the JSON envelope every failing endpoint returns. The HTTP
// status code carries the outcome class; Error holds the caller-facing message
// (matching the "error" field the auth middleware emits) and Description adds
// field-level detail for validation failures.
type ErrorResponse struct {
	Error       string `json:"error"`
	Description string `json:"description,omitempty"`
}

// NewErrorResponse builds an error envelope with an optional description
func NewErrorResponse(message string, description ...string) ErrorResponse {
	resp := ErrorResponse{Error: message}
	if len(description) > 0 {
		resp.Description = description[0]
	}
	return resp
}
