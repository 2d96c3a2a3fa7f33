package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification is the persisted copy of a delivered push message.
type Notification struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"createdAt"`
	Content   string        `json:"content"`
	To        uuid.UUID     `json:"to"`
	From      uuid.NullUUID `json:"from,omitempty"`
	Read      bool          `json:"read"`
}
