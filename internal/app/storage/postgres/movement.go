package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"meetpay/internal/app/logger"
	"meetpay/internal/app/model"
	"meetpay/internal/app/storage"
)

// storage.MovementRepository interface implementation
var _ storage.MovementRepository = (*MovementRepository)(nil)

type MovementRepository struct {
	db *sql.DB
}

func (r *MovementRepository) LoggerComponent() string {
	return "MovementRepository"
}

func NewMovementRepository(db *sql.DB) (*MovementRepository, error) {
	s := &MovementRepository{
		db: db,
	}
	return s, nil
}

// TxCreate implementation of interface storage.MovementRepository.
// The unique index on (meet_id, user_id, type) makes duplicate trigger
// deliveries a no-op instead of accumulating active entries.
func (r *MovementRepository) TxCreate(ctx context.Context, tx *sql.Tx, m *model.Movement) (bool, error) {
	l := logger.Ctx(ctx).With().
		Str("method", "TxCreate").
		Str("movement_type", string(m.Type)).
		Logger()
	l.Debug().Msg("Creating movement")

	m.ID = uuid.New()
	m.CreatedAt = time.Now()

	const SQL = `
		INSERT INTO movements (id, created_at, meet_id, user_id, type, titular, subtotal, total,
			service_commission, basetime_commission, wompi_commission, referral_commission, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (meet_id, user_id, type) DO NOTHING
		RETURNING id
`

	err := tx.QueryRowContext(ctx, SQL,
		m.ID, m.CreatedAt, m.MeetID, m.UserID, m.Type, m.Titular, m.Subtotal, m.Total,
		m.ServiceCommission, m.BasetimeCommission, m.WompiCommission, m.ReferralCommission, m.Description,
	).Scan(&m.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			l.Debug().Msg("Active entry already present, skipping")
			return false, nil
		}
		return false, fmt.Errorf("insert: %w", err)
	}

	return true, nil
}

// TxAmend implementation of interface storage.MovementRepository. Rewrites
// every entry matching (meet, user, current type), switching its type and
// refreshing created_at to mark the settlement moment. Titular is only
// replaced when the amendment carries one; the referral percentage recorded
// at creation is preserved.
func (r *MovementRepository) TxAmend(ctx context.Context, tx *sql.Tx, a *model.MovementAmendment) (int64, error) {
	l := logger.Ctx(ctx).With().
		Str("method", "TxAmend").
		Str("current_type", string(a.CurrentType)).
		Str("new_type", string(a.Type)).
		Logger()
	l.Debug().Msg("Amending movement")

	const SQL = `
		UPDATE movements
		SET type=$1,
			titular=COALESCE($2, titular),
			subtotal=$3,
			total=$4,
			service_commission=$5,
			basetime_commission=$6,
			wompi_commission=$7,
			description=$8,
			created_at=NOW()
		WHERE meet_id=$9 AND user_id=$10 AND type=$11
`

	res, err := tx.ExecContext(ctx, SQL,
		a.Type, a.Titular, a.Subtotal, a.Total,
		a.ServiceCommission, a.BasetimeCommission, a.WompiCommission, a.Description,
		a.MeetID, a.UserID, a.CurrentType,
	)
	if err != nil {
		return 0, fmt.Errorf("update: %w", err)
	}

	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}

	return count, nil
}

// TxExists implementation of interface storage.MovementRepository
func (r *MovementRepository) TxExists(ctx context.Context, tx *sql.Tx, meetID, userID uuid.UUID, t model.MovementType) (bool, error) {
	const SQL = `
		SELECT EXISTS (
			SELECT 1 FROM movements WHERE meet_id=$1 AND user_id=$2 AND type=$3
		)
`
	var exists bool

	if err := tx.QueryRowContext(ctx, SQL, meetID, userID, t).Scan(&exists); err != nil {
		return false, fmt.Errorf("select: %w", err)
	}

	return exists, nil
}

// AllByUserID implementation of interface storage.MovementRepository
func (r *MovementRepository) AllByUserID(ctx context.Context, userID uuid.UUID) ([]*model.Movement, error) {
	l := logger.Ctx(ctx).With().Str("method", "AllByUserID").Logger()

	const SQL = `
		SELECT id, created_at, meet_id, user_id, type, titular, subtotal, total,
			service_commission, basetime_commission, wompi_commission, referral_commission, description
		FROM movements
		WHERE user_id=$1
		ORDER BY created_at DESC
`
	rows, err := r.db.QueryContext(ctx, SQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	res := make([]*model.Movement, 0)

	for rows.Next() {
		m := &model.Movement{}
		if err := rows.Scan(
			&m.ID, &m.CreatedAt, &m.MeetID, &m.UserID, &m.Type, &m.Titular, &m.Subtotal, &m.Total,
			&m.ServiceCommission, &m.BasetimeCommission, &m.WompiCommission, &m.ReferralCommission, &m.Description,
		); err != nil {
			l.Debug().Err(err).Send()
			return nil, fmt.Errorf("scan: %w", err)
		}
		res = append(res, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return res, nil
}
