package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/xid"

	"meetpay/internal/app/model"
	"meetpay/internal/app/storage"
)

// storage.NotificationRepository interface implementation
var _ storage.NotificationRepository = (*NotificationRepository)(nil)

type NotificationRepository struct {
	db *sql.DB
}

func (r *NotificationRepository) LoggerComponent() string {
	return "NotificationRepository"
}

func NewNotificationRepository(db *sql.DB) (*NotificationRepository, error) {
	s := &NotificationRepository{
		db: db,
	}
	return s, nil
}

// Create implementation of interface storage.NotificationRepository
func (r *NotificationRepository) Create(ctx context.Context, m *model.Notification) error {
	if m.ID == "" {
		m.ID = xid.New().String()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	const SQL = `
		INSERT INTO notifications (id, created_at, content, to_user, from_user, read)
		VALUES ($1, $2, $3, $4, $5, $6)
`

	_, err := r.db.ExecContext(ctx, SQL, m.ID, m.CreatedAt, m.Content, m.To, m.From, m.Read)
	if err != nil {
		return fmt.Errorf("insert: %w", err)
	}

	return nil
}
