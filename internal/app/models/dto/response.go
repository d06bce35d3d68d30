package dto

// MessageResponse is the single-message body used for delete confirmations
// and for every error response.
type MessageResponse struct {
	Message string `json:"message" example:"Course deleted successfully"`
}
