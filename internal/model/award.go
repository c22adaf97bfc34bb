package model

import (
	"time"

	"github.com/google/uuid"
)

// Award is a prize line on the awards page. Position is a free-text label
// ("1º Lugar", "MVP do Torneio"), not a numeric rank.
type Award struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Position  string    `gorm:"size:100;not null" json:"position"`
	Prize     string    `gorm:"size:200;not null" json:"prize"`
	Icon      string    `gorm:"size:20" json:"icon"`
	SortOrder int       `gorm:"column:sort_order;not null" json:"order"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
