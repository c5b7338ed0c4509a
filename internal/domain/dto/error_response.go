package dto

import "time"

// ErrorResponse is the JSON error envelope returned by every endpoint.
//
// The shape matches what the admin UI expects:
//
//	{ "success": false, "error": "Failed to fetch sales report", "details": "..." }
//
// Details carries the raw inner error message. Surfacing it to the caller is
// acceptable here because this is an internal admin API, not a public one.
type ErrorResponse struct {
	Success   bool      `json:"success" example:"false"`
	Message   string    `json:"error" example:"Failed to fetch sales report"`
	Details   string    `json:"details,omitempty" example:"connection refused"`
	Timestamp time.Time `json:"timestamp"`
}

// NewErrorResponse builds an ErrorResponse from a user-facing message and an
// optional inner error.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Success:   false,
		Message:   message,
		Timestamp: time.Now(),
	}
	if err != nil {
		resp.Details = err.Error()
	}
	return resp
}

// Error implements the error interface so an ErrorResponse can travel through
// gin's error list.
func (e ErrorResponse) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}
