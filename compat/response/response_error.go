package response

type ErrorResponse struct {
	Success *bool   `json:"success"`
	Code    *string `json:"code,omitempty"`
	Message *string `json:"message,omitempty"`
	Error   *string `json:"error,omitempty"`
}
