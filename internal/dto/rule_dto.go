package dto

// RuleInput is one rule as edited in the admin panel. Order is assigned
// from the list position at save time.
type RuleInput struct {
	ID          string `json:"id"`
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"required"`
}

type SaveRulesRequest struct {
	Rules []RuleInput `json:"rules" binding:"required,dive"`
}
