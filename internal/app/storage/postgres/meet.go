package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	pg "github.com/lib/pq"

	"meetpay/internal/app/apperr"
	"meetpay/internal/app/logger"
	"meetpay/internal/app/model"
	"meetpay/internal/app/storage"
)

// storage.MeetRepository interface implementation
var _ storage.MeetRepository = (*MeetRepository)(nil)

type MeetRepository struct {
	db *sql.DB
}

func (r *MeetRepository) LoggerComponent() string {
	return "MeetRepository"
}

func NewMeetRepository(db *sql.DB) (*MeetRepository, error) {
	s := &MeetRepository{
		db: db,
	}
	return s, nil
}

// Read implementation of interface storage.MeetRepository
func (r *MeetRepository) Read(ctx context.Context, id uuid.UUID) (*model.Meet, error) {
	const SQL = `
		SELECT id, created_at, service_id, status, amount,
			author_id, author_first_name, author_last_name,
			date, init_at, cancellation_author
		FROM meets
		WHERE id=$1
`
	m := &model.Meet{}
	var initAt sql.NullTime

	err := r.db.QueryRowContext(ctx, SQL, id).Scan(
		&m.ID, &m.CreatedAt, &m.ServiceID, &m.Status, &m.Amount,
		&m.AuthorID, &m.AuthorFirstName, &m.AuthorLastName,
		&m.Date, &initAt, &m.CancellationAuthor,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("select: %w", err)
	}
	if initAt.Valid {
		m.InitAt = &initAt.Time
	}

	return m, nil
}

// Upsert implementation of interface storage.MeetRepository. The booking API
// owns the meet documents; this mirror only follows its change feed so the
// expiry sweep has something to scan.
func (r *MeetRepository) Upsert(ctx context.Context, m *model.Meet) error {
	const SQL = `
		INSERT INTO meets (id, created_at, service_id, status, amount,
			author_id, author_first_name, author_last_name,
			date, init_at, cancellation_author)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE
		SET status=EXCLUDED.status,
			amount=EXCLUDED.amount,
			date=EXCLUDED.date,
			init_at=EXCLUDED.init_at,
			cancellation_author=EXCLUDED.cancellation_author
`
	var initAt sql.NullTime
	if m.InitAt != nil {
		initAt = sql.NullTime{Time: *m.InitAt, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, SQL,
		m.ID, m.CreatedAt, m.ServiceID, m.Status, m.Amount,
		m.AuthorID, m.AuthorFirstName, m.AuthorLastName,
		m.Date, initAt, m.CancellationAuthor,
	)
	if err != nil {
		return fmt.Errorf("upsert: %w", err)
	}

	return nil
}

// AllStaleBefore implementation of interface storage.MeetRepository
func (r *MeetRepository) AllStaleBefore(ctx context.Context, cutoff time.Time, statuses []model.MeetStatus) ([]*model.Meet, error) {
	l := logger.Ctx(ctx).With().Str("method", "AllStaleBefore").Logger()

	const SQL = `
		SELECT id, created_at, service_id, status, amount,
			author_id, author_first_name, author_last_name,
			date, init_at, cancellation_author
		FROM meets
		WHERE status = ANY($1) AND date < $2
		ORDER BY date
`
	ss := make([]string, 0, len(statuses))
	for _, s := range statuses {
		ss = append(ss, string(s))
	}

	rows, err := r.db.QueryContext(ctx, SQL, pg.Array(ss), cutoff)
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	res := make([]*model.Meet, 0)

	for rows.Next() {
		m := &model.Meet{}
		var initAt sql.NullTime
		if err := rows.Scan(
			&m.ID, &m.CreatedAt, &m.ServiceID, &m.Status, &m.Amount,
			&m.AuthorID, &m.AuthorFirstName, &m.AuthorLastName,
			&m.Date, &initAt, &m.CancellationAuthor,
		); err != nil {
			l.Debug().Err(err).Send()
			return nil, fmt.Errorf("scan: %w", err)
		}
		if initAt.Valid {
			m.InitAt = &initAt.Time
		}
		res = append(res, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return res, nil
}

// UpdateStatus implementation of interface storage.MeetRepository
func (r *MeetRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.MeetStatus) error {
	const SQL = `
		UPDATE meets
		SET status=$1
		WHERE id=$2
`

	res, err := r.db.ExecContext(ctx, SQL, status, id)
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}

	count, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if count == 0 {
		return apperr.ErrNotFound
	}

	return nil
}
