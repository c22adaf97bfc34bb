package model

import (
	"time"

	"github.com/google/uuid"
)

// RankingEntry is one row of the tournament leaderboard. Position is always
// a dense 1..N sequence consistent with descending points; it is recomputed
// on every save, never trusted from the client.
type RankingEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Position  int       `gorm:"not null" json:"position"`
	Team      string    `gorm:"size:100;not null" json:"team"`
	Points    int       `gorm:"default:0" json:"points"`
	Wins      int       `gorm:"default:0" json:"wins"`
	Kills     int       `gorm:"default:0" json:"kills"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
