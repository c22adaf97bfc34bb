package model

import (
	"time"

	"github.com/google/uuid"
)

// Rule is a tournament rule shown on the rules page. SortOrder is assigned
// from the list position at save time (1-based).
type Rule struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	SortOrder   int       `gorm:"column:sort_order;not null" json:"order"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
