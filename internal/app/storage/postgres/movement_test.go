package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"meetpay/internal/app/model"
)

func setupMovementMock(t *testing.T) (*MovementRepository, *sql.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo, err := NewMovementRepository(db)
	require.NoError(t, err)

	closer := func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	}
	return repo, db, mock, closer
}

func TestMovementTxCreate(t *testing.T) {
	repo, db, mock, close := setupMovementMock(t)
	defer close()

	ctx := context.Background()
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO movements").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	created, err := repo.TxCreate(ctx, tx, &model.Movement{
		MeetID:      uuid.NullUUID{UUID: uuid.New(), Valid: true},
		UserID:      uuid.New(),
		Type:        model.MovementTypePayment,
		Titular:     "Laura Gómez",
		Total:       decimal.NewFromInt(100000),
		Description: "Pago por servicio",
	})
	require.NoError(t, err)
	require.True(t, created)
	require.NoError(t, tx.Commit())
}

func TestMovementTxCreateConflict(t *testing.T) {
	repo, db, mock, close := setupMovementMock(t)
	defer close()

	ctx := context.Background()

	mock.ExpectBegin()
	// ON CONFLICT DO NOTHING yields no row back
	mock.ExpectQuery("INSERT INTO movements").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	tx, err := db.Begin()
	require.NoError(t, err)

	created, err := repo.TxCreate(ctx, tx, &model.Movement{
		MeetID: uuid.NullUUID{UUID: uuid.New(), Valid: true},
		UserID: uuid.New(),
		Type:   model.MovementTypePayment,
		Total:  decimal.NewFromInt(100000),
	})
	require.NoError(t, err)
	require.False(t, created)
	require.NoError(t, tx.Rollback())
}

func TestMovementTxAmend(t *testing.T) {
	repo, db, mock, close := setupMovementMock(t)
	defer close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE movements").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	count, err := repo.TxAmend(ctx, tx, &model.MovementAmendment{
		MeetID:      uuid.New(),
		UserID:      uuid.New(),
		CurrentType: model.MovementTypePending,
		Type:        model.MovementTypeCharged,
		Total:       decimal.NewFromInt(65000),
		Description: "Cobro por servicio",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
	require.NoError(t, tx.Commit())
}

func TestMovementTxAmendNoMatch(t *testing.T) {
	repo, db, mock, close := setupMovementMock(t)
	defer close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE movements").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	tx, err := db.Begin()
	require.NoError(t, err)

	count, err := repo.TxAmend(ctx, tx, &model.MovementAmendment{
		MeetID:      uuid.New(),
		UserID:      uuid.New(),
		CurrentType: model.MovementTypePending,
		Type:        model.MovementTypePayment,
		Total:       decimal.NewFromInt(100000),
	})
	require.NoError(t, err)
	require.Equal(t, int64(0), count)
	require.NoError(t, tx.Rollback())
}

func TestMovementTxExists(t *testing.T) {
	repo, db, mock, close := setupMovementMock(t)
	defer close()

	ctx := context.Background()
	meetID := uuid.New()
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(meetID, userID, string(model.MovementTypeCharged)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	tx, err := db.Begin()
	require.NoError(t, err)

	exists, err := repo.TxExists(ctx, tx, meetID, userID, model.MovementTypeCharged)
	require.NoError(t, err)
	require.True(t, exists)
	require.NoError(t, tx.Rollback())
}

func TestMovementAllByUserID(t *testing.T) {
	repo, _, mock, close := setupMovementMock(t)
	defer close()

	ctx := context.Background()
	userID := uuid.New()
	meetID := uuid.New()
	now := time.Now()

	cols := []string{
		"id", "created_at", "meet_id", "user_id", "type", "titular", "subtotal", "total",
		"service_commission", "basetime_commission", "wompi_commission", "referral_commission", "description",
	}
	mock.ExpectQuery("FROM movements").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(uuid.New().String(), now, meetID.String(), userID.String(), "charged", "Ana Torres",
				"100000", "65000", "35000", "10", "5", "20", "Cobro por servicio").
			AddRow(uuid.New().String(), now.Add(-time.Hour), nil, userID.String(), "withdrawal", "79927398713",
				nil, "5000", nil, nil, nil, nil, "Retiro de saldo"))

	res, err := repo.AllByUserID(ctx, userID)
	require.NoError(t, err)
	require.Len(t, res, 2)

	require.Equal(t, model.MovementTypeCharged, res[0].Type)
	require.True(t, res[0].Total.Equal(decimal.NewFromInt(65000)))
	require.True(t, res[0].ReferralCommission.Valid)

	require.Equal(t, model.MovementTypeWithdrawal, res[1].Type)
	require.False(t, res[1].MeetID.Valid)
	require.False(t, res[1].Subtotal.Valid)
}
