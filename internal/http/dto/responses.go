package dto

type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
	User    any    `json:"user,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
