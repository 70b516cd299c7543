package handlers

// ErrorResponse is the JSON error body shared by all handlers
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}
