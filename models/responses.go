package models

// ErrorResponse is the JSON body of every non-2xx response produced by
// the API.
type ErrorResponse struct {
	// Message is a short, client-safe description of the failure.
	Message string `json:"message"`

	// Errors enumerates the individual problems of a validation failure.
	// It is omitted for all other failures.
	Errors []string `json:"errors,omitempty"`
}
