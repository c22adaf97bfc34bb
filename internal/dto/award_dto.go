package dto

// AwardInput is one award line as edited in the admin panel.
type AwardInput struct {
	ID       string `json:"id"`
	Position string `json:"position" binding:"required,min=1,max=100"`
	Prize    string `json:"prize" binding:"required,max=200"`
	Icon     string `json:"icon" binding:"max=20"`
}

type SaveAwardsRequest struct {
	Awards []AwardInput `json:"awards" binding:"required,dive"`
}
