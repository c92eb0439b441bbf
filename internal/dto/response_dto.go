package dto

// ErrorResponse matches the wire contract of the award webhook: failures
// carry a single error string.
type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
