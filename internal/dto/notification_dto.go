package dto

// SendNotificationRequest is an admin broadcast.
type SendNotificationRequest struct {
	Title   string `json:"title" binding:"max=200"`
	Message string `json:"message" binding:"required,min=1"`
}
