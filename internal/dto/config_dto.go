package dto

// RankingConfigInput updates the ranking page display configuration.
type RankingConfigInput struct {
	Title        string  `json:"title" binding:"required,max=100"`
	Subtitle     string  `json:"subtitle" binding:"max=200"`
	ShowTitle    bool    `json:"show_title"`
	ShowSubtitle bool    `json:"show_subtitle"`
	BannerImage  *string `json:"banner_image"`
}

// ScoringSystemInput updates the kill/position point table.
type ScoringSystemInput struct {
	KillPoints     int   `json:"kill_points" binding:"gte=0"`
	PositionPoints []int `json:"position_points" binding:"required,min=1"`
}
