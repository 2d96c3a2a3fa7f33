package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ferdypruis/go-luhn"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"meetpay/internal/app/apperr"
	"meetpay/internal/app/logger"
	"meetpay/internal/app/model"
	"meetpay/internal/app/storage"
)

// storage.WalletRepository interface implementation
var _ storage.WalletRepository = (*WalletRepository)(nil)

type WalletRepository struct {
	db *sql.DB
}

func (r *WalletRepository) LoggerComponent() string {
	return "WalletRepository"
}

func NewWalletRepository(db *sql.DB) (*WalletRepository, error) {
	s := &WalletRepository{
		db: db,
	}
	return s, nil
}

// TxIncrement implementation of interface storage.WalletRepository. Always a
// relative adjustment on top of the stored value, never an absolute set.
func (r *WalletRepository) TxIncrement(ctx context.Context, tx *sql.Tx, userID uuid.UUID, delta storage.WalletIncrement) error {
	const SQL = `
		INSERT INTO wallets (user_id, balance, refund)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET balance=wallets.balance+EXCLUDED.balance,
			refund=wallets.refund+EXCLUDED.refund,
			updated_at=NOW()
`

	if _, err := tx.ExecContext(ctx, SQL, userID, delta.Balance, delta.Refund); err != nil {
		return fmt.Errorf("increment: %w", err)
	}

	return nil
}

// Read implementation of interface storage.WalletRepository
func (r *WalletRepository) Read(ctx context.Context, userID uuid.UUID) (*model.Wallet, error) {
	const SQL = `
		SELECT user_id, balance, refund, updated_at
		FROM wallets
		WHERE user_id=$1
`
	m := &model.Wallet{}

	err := r.db.QueryRowContext(ctx, SQL, userID).Scan(&m.UserID, &m.Balance, &m.Refund, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// untouched wallet reads as zeroes
			return &model.Wallet{UserID: userID}, nil
		}
		return nil, fmt.Errorf("select: %w", err)
	}

	return m, nil
}

// Withdraw implementation of interface storage.WalletRepository. Locks the
// wallet row, checks funds and writes the withdrawal movement together with
// the balance decrement in one serializable transaction.
func (r *WalletRepository) Withdraw(ctx context.Context, userID uuid.UUID, destinationAccount string, amount decimal.Decimal) (*model.Movement, error) {
	l := logger.Ctx(ctx).With().
		Str("method", "Withdraw").
		Str("user_id", userID.String()).
		Logger()
	l.Debug().Msg("Creating withdrawal")

	if destinationAccount == "" || !luhn.Valid(destinationAccount) {
		return nil, apperr.ErrInvalidInput
	}
	if !amount.IsPositive() {
		return nil, apperr.ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second*30)
	defer cancel()
	ctx = l.WithContext(ctx)

	m := &model.Movement{
		ID:          uuid.New(),
		CreatedAt:   time.Now(),
		UserID:      userID,
		Type:        model.MovementTypeWithdrawal,
		Titular:     destinationAccount,
		Total:       amount,
		Description: "Retiro de saldo",
	}

	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelSerializable,
	})
	if err != nil {
		l.Error().Err(err).Msg("DB transaction begin")
		return nil, err
	}

	var balance decimal.Decimal
	const sqlLock = `SELECT balance FROM wallets WHERE user_id=$1 FOR UPDATE`
	if err := tx.QueryRowContext(ctx, sqlLock, userID).Scan(&balance); err != nil {
		_ = tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrInsufficientFunds
		}
		l.Error().Err(err).Msg("DB lock error")
		return nil, err
	}

	if balance.LessThan(amount) {
		err := apperr.ErrInsufficientFunds
		l.Debug().Err(err).Msg("Insufficient funds")
		_ = tx.Rollback()
		return nil, err
	}

	const sqlMovement = `
		INSERT INTO movements (id, created_at, user_id, type, titular, total, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	_, err = tx.ExecContext(ctx, sqlMovement, m.ID, m.CreatedAt, m.UserID, m.Type, m.Titular, m.Total, m.Description)
	if err != nil {
		l.Error().Err(err).Msg("Movement insert failed")
		_ = tx.Rollback()
		return nil, err
	}

	const sqlUpdateBalance = `UPDATE wallets SET balance=balance-$1, updated_at=NOW() WHERE user_id=$2`
	_, err = tx.ExecContext(ctx, sqlUpdateBalance, amount, userID)
	if err != nil {
		l.Error().Err(err).Msg("Balance update failed")
		_ = tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Msg("TX commit failed")
		return nil, err
	}

	return m, nil
}
