package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MeetStatus is the lifecycle state of a booked session. The wire values are
// fixed by the mobile clients and must not be renamed.
type MeetStatus string

const (
	MeetStatusRequest   MeetStatus = "request"
	MeetStatusAccepted  MeetStatus = "aceptNotPayed"
	MeetStatusPaid      MeetStatus = "aceptPayed"
	MeetStatusComplete  MeetStatus = "complete"
	MeetStatusCancelled MeetStatus = "cancel"
)

// Valid reports whether s is one of the known lifecycle states.
func (s MeetStatus) Valid() bool {
	switch s {
	case MeetStatusRequest, MeetStatusAccepted, MeetStatusPaid, MeetStatusComplete, MeetStatusCancelled:
		return true
	}
	return false
}

type Meet struct {
	ID        uuid.UUID
	CreatedAt time.Time
	ServiceID uuid.UUID
	Status    MeetStatus
	// Amount is fixed once the meet is payed; settlement never recomputes it
	// from another source.
	Amount             decimal.Decimal
	AuthorID           uuid.UUID
	AuthorFirstName    string
	AuthorLastName     string
	Date               time.Time
	InitAt             *time.Time
	CancellationAuthor uuid.NullUUID
}

// AuthorFullName as shown on ledger entries.
func (m *Meet) AuthorFullName() string {
	return m.AuthorFirstName + " " + m.AuthorLastName
}
