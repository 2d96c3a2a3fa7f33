package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementType classifies a ledger entry. A pending entry is amended in place
// to charged (completion) or payment (cancellation); history is never deleted.
type MovementType string

const (
	MovementTypePayment         MovementType = "payment"
	MovementTypePaymentReferral MovementType = "paymentReferral"
	MovementTypeWithdrawal      MovementType = "withdrawal"
	MovementTypeRefund          MovementType = "refund"
	MovementTypePending         MovementType = "pending"
	MovementTypeCharged         MovementType = "charged"
)

type Movement struct {
	ID        uuid.UUID
	CreatedAt time.Time
	// MeetID is unset for withdrawals, which are not tied to a session.
	MeetID             uuid.NullUUID
	UserID             uuid.UUID
	Type               MovementType
	Titular            string
	Subtotal           decimal.NullDecimal
	Total              decimal.Decimal
	ServiceCommission  decimal.NullDecimal
	BasetimeCommission decimal.NullDecimal
	WompiCommission    decimal.NullDecimal
	ReferralCommission decimal.NullDecimal
	Description        string
}

// MarshalJSON implements the json.Marshaler interface.
func (m Movement) MarshalJSON() ([]byte, error) {
	o := struct {
		ID                 uuid.UUID    `json:"id"`
		CreatedAt          time.Time    `json:"createdAt"`
		Type               MovementType `json:"type"`
		Titular            string       `json:"titular"`
		Subtotal           float64      `json:"subtotal,omitempty"`
		Total              float64      `json:"total"`
		ServiceCommission  float64      `json:"serviceCommission,omitempty"`
		BasetimeCommission float64      `json:"basetimeCommission,omitempty"`
		WompiCommission    float64      `json:"wompiCommission,omitempty"`
		ReferralCommission float64      `json:"referralCommission,omitempty"`
		Description        string       `json:"description"`
	}{
		ID:                 m.ID,
		CreatedAt:          m.CreatedAt,
		Type:               m.Type,
		Titular:            m.Titular,
		Subtotal:           m.Subtotal.Decimal.InexactFloat64(),
		Total:              m.Total.InexactFloat64(),
		ServiceCommission:  m.ServiceCommission.Decimal.InexactFloat64(),
		BasetimeCommission: m.BasetimeCommission.Decimal.InexactFloat64(),
		WompiCommission:    m.WompiCommission.Decimal.InexactFloat64(),
		ReferralCommission: m.ReferralCommission.Decimal.InexactFloat64(),
		Description:        m.Description,
	}

	return json.Marshal(o)
}

// MovementAmendment rewrites every entry matching (MeetID, UserID, CurrentType)
// in place, switching its type and refreshing created_at. Titular is only
// touched when set; the referral percentage recorded at creation is never
// touched by an amendment.
type MovementAmendment struct {
	MeetID             uuid.UUID
	UserID             uuid.UUID
	CurrentType        MovementType
	Type               MovementType
	Titular            *string
	Subtotal           decimal.NullDecimal
	Total              decimal.Decimal
	ServiceCommission  decimal.NullDecimal
	BasetimeCommission decimal.NullDecimal
	WompiCommission    decimal.NullDecimal
	Description        string
}
