package dto

// RankingEntryInput is one leaderboard row as edited in the admin panel.
// ID may be a store UUID or a client-side placeholder; Position is ignored
// on input and recomputed from Points.
type RankingEntryInput struct {
	ID     string `json:"id"`
	Team   string `json:"team" binding:"required,min=1,max=100"`
	Points int    `json:"points" binding:"gte=0"`
	Wins   int    `json:"wins" binding:"gte=0"`
	Kills  int    `json:"kills" binding:"gte=0"`
}

type SaveRankingRequest struct {
	Entries []RankingEntryInput `json:"entries" binding:"required,dive"`
}
