package model

import (
	"time"

	"github.com/google/uuid"
)

// ConfigEntry is one row of the key-value config collection. Value holds a
// JSON-encoded scalar or array; upserts are keyed on Key.
type ConfigEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Key       string    `gorm:"size:100;uniqueIndex;not null" json:"key"`
	Value     string    `gorm:"type:jsonb" json:"value"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Config keys used by the ranking page and the scoring system.
const (
	KeyRankingTitle    = "ranking_title"
	KeyRankingSubtitle = "ranking_subtitle"
	KeyShowTitle       = "show_title"
	KeyShowSubtitle    = "show_subtitle"
	KeyBannerImage     = "banner_image"
	KeyKillPoints      = "kill_points"
	KeyPositionPoints  = "position_points"
	KeyVisitCount      = "visit_count"
)

// RankingConfig is the display configuration of the public ranking page,
// assembled from individual config rows.
type RankingConfig struct {
	Title        string  `json:"title"`
	Subtitle     string  `json:"subtitle"`
	ShowTitle    bool    `json:"show_title"`
	ShowSubtitle bool    `json:"show_subtitle"`
	BannerImage  *string `json:"banner_image"`
}

// ScoringSystem maps match results to leaderboard points. PositionPoints is
// indexed by finish position minus one; positions past the end score zero.
type ScoringSystem struct {
	KillPoints     int   `json:"kill_points"`
	PositionPoints []int `json:"position_points"`
}

// DefaultRankingConfig mirrors the values the frontend falls back to when
// the config collection is empty.
func DefaultRankingConfig() RankingConfig {
	return RankingConfig{
		Title:        "SUPER COPA FF",
		Subtitle:     "Ranking Oficial do Campeonato",
		ShowTitle:    true,
		ShowSubtitle: true,
	}
}

func DefaultScoringSystem() ScoringSystem {
	return ScoringSystem{
		KillPoints:     1,
		PositionPoints: []int{12, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 0},
	}
}
