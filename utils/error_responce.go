package utils

// ErrorResponse is the body of every non-2xx reply. Error carries a short
// machine readable code.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
