package models

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of API calls that return no resource.
type MessageResponse struct {
	Message string `json:"message"`
}
