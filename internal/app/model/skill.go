package model

import "github.com/google/uuid"

// Skill is the published service a meet books; it resolves to its supplier.
type Skill struct {
	ID     uuid.UUID
	UserID uuid.UUID
}
