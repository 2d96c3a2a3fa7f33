package model

import (
	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Password  string    `json:"-"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	// PromoterID is the single-level referral back-reference. A promoter's own
	// promoter is never paid.
	PromoterID uuid.NullUUID `json:"-"`
	PushToken  string        `json:"-"`
}

// FullName as shown on ledger entries.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
