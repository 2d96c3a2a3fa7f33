package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"meetpay/internal/app/apperr"
	"meetpay/internal/app/storage"
)

// valid Luhn account for withdrawal tests
const testAccount = "79927398713"

func setupWalletMock(t *testing.T) (*WalletRepository, *sql.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo, err := NewWalletRepository(db)
	require.NoError(t, err)

	closer := func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	}
	return repo, db, mock, closer
}

func TestWalletReadMissing(t *testing.T) {
	repo, _, mock, close := setupWalletMock(t)
	defer close()

	userID := uuid.New()

	mock.ExpectQuery("SELECT user_id, balance, refund, updated_at").
		WithArgs(userID).
		WillReturnError(sql.ErrNoRows)

	// untouched wallet reads as zeroes, not an error
	w, err := repo.Read(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, userID, w.UserID)
	require.True(t, w.Balance.IsZero())
	require.True(t, w.Refund.IsZero())
}

func TestWalletRead(t *testing.T) {
	repo, _, mock, close := setupWalletMock(t)
	defer close()

	userID := uuid.New()

	mock.ExpectQuery("SELECT user_id, balance, refund, updated_at").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "balance", "refund", "updated_at"}).
			AddRow(userID.String(), "65000", "100000", time.Now()))

	w, err := repo.Read(context.Background(), userID)
	require.NoError(t, err)
	require.True(t, w.Balance.Equal(decimal.NewFromInt(65000)))
	require.True(t, w.Refund.Equal(decimal.NewFromInt(100000)))
}

func TestWalletTxIncrement(t *testing.T) {
	repo, db, mock, close := setupWalletMock(t)
	defer close()

	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO wallets").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	err = repo.TxIncrement(context.Background(), tx, userID, storage.WalletIncrement{Balance: decimal.NewFromInt(65000)})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
}

func TestWithdraw(t *testing.T) {
	repo, _, mock, close := setupWalletMock(t)
	defer close()

	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT balance FROM wallets").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow("50000"))
	mock.ExpectExec("INSERT INTO movements").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE wallets SET balance").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	m, err := repo.Withdraw(context.Background(), userID, testAccount, decimal.NewFromInt(20000))
	require.NoError(t, err)
	require.Equal(t, testAccount, m.Titular)
	require.Equal(t, "Retiro de saldo", m.Description)
	require.True(t, m.Total.Equal(decimal.NewFromInt(20000)))
	require.False(t, m.MeetID.Valid)
}

func TestWithdrawInsufficientFunds(t *testing.T) {
	repo, _, mock, close := setupWalletMock(t)
	defer close()

	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT balance FROM wallets").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow("100"))
	mock.ExpectRollback()

	_, err := repo.Withdraw(context.Background(), userID, testAccount, decimal.NewFromInt(20000))
	require.True(t, errors.Is(err, apperr.ErrInsufficientFunds))
}

func TestWithdrawNoWallet(t *testing.T) {
	repo, _, mock, close := setupWalletMock(t)
	defer close()

	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT balance FROM wallets").
		WithArgs(userID).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.Withdraw(context.Background(), userID, testAccount, decimal.NewFromInt(20000))
	require.True(t, errors.Is(err, apperr.ErrInsufficientFunds))
}

func TestWithdrawValidation(t *testing.T) {
	repo, _, _, close := setupWalletMock(t)
	defer close()

	userID := uuid.New()

	// bad checksum
	_, err := repo.Withdraw(context.Background(), userID, "12345", decimal.NewFromInt(100))
	require.True(t, errors.Is(err, apperr.ErrInvalidInput))

	// non-positive amount
	_, err = repo.Withdraw(context.Background(), userID, testAccount, decimal.Zero)
	require.True(t, errors.Is(err, apperr.ErrInvalidInput))
}
