package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationStatusSent   = "sent"
	NotificationSenderSystem = "Sistema"
)

// Notification is the history record of a broadcast push message.
type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	SentAt    time.Time `gorm:"not null" json:"sent_at"`
	SentBy    string    `gorm:"size:100" json:"sent_by"`
	Status    string    `gorm:"size:20;not null" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
