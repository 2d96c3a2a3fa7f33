//go:generate mockgen -source=./interface.go -destination=./mock/storage.go -package=storagemock
package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"meetpay/internal/app/model"
)

type UserRepository interface {
	// Create a new model.User
	Create(ctx context.Context, m *model.User) (*model.User, error)
	// ReadByNameAndPassword instance of model.User
	ReadByNameAndPassword(ctx context.Context, name string, password string) (*model.User, error)
	// Read instance of model.User with its referral back-reference and push token
	Read(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type SkillRepository interface {
	// Read instance of model.Skill, resolving a meet's service to its supplier
	Read(ctx context.Context, id uuid.UUID) (*model.Skill, error)
}

type MeetRepository interface {
	// Read instance of model.Meet
	Read(ctx context.Context, id uuid.UUID) (*model.Meet, error)
	// Upsert mirrors the latest document snapshot received from the change feed
	Upsert(ctx context.Context, m *model.Meet) error
	// AllStaleBefore returns meets still in one of statuses whose date falls before cutoff
	AllStaleBefore(ctx context.Context, cutoff time.Time, statuses []model.MeetStatus) ([]*model.Meet, error)
	// UpdateStatus mutates only the status field
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.MeetStatus) error
}

type MovementRepository interface {
	// TxCreate appends a ledger entry within the tx. Returns false when an
	// active entry with the same (meet, user, type) key already exists.
	TxCreate(ctx context.Context, tx *sql.Tx, m *model.Movement) (bool, error)
	// TxAmend rewrites all entries matching (meet, user, current type) and
	// returns how many were amended
	TxAmend(ctx context.Context, tx *sql.Tx, a *model.MovementAmendment) (int64, error)
	// TxExists reports whether an entry with the given key exists
	TxExists(ctx context.Context, tx *sql.Tx, meetID, userID uuid.UUID, t model.MovementType) (bool, error)
	// AllByUserID returns all movements of user, newest first
	AllByUserID(ctx context.Context, userID uuid.UUID) ([]*model.Movement, error)
}

// WalletIncrement is a signed relative adjustment; zero fields are still applied.
type WalletIncrement struct {
	Balance decimal.Decimal
	Refund  decimal.Decimal
}

type WalletRepository interface {
	// TxIncrement applies a relative increment within the tx, creating the
	// wallet row on first touch
	TxIncrement(ctx context.Context, tx *sql.Tx, userID uuid.UUID, delta WalletIncrement) error
	// Read instance of model.Wallet
	Read(ctx context.Context, userID uuid.UUID) (*model.Wallet, error)
	// Withdraw moves amount from the wallet balance to a withdrawal movement
	Withdraw(ctx context.Context, userID uuid.UUID, destinationAccount string, amount decimal.Decimal) (*model.Movement, error)
}

type SettingsRepository interface {
	// Commissions returns the current global percentages
	Commissions(ctx context.Context) (*model.Commissions, error)
}

type NotificationRepository interface {
	// Create a new model.Notification
	Create(ctx context.Context, m *model.Notification) error
}
