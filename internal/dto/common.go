package dto

// DeleteRequest is the body of every DELETE endpoint
type DeleteRequest struct {
	ID string `json:"id"`
}

// MessageResponse carries a human-readable confirmation
type MessageResponse struct {
	Message string `json:"message"`
}
