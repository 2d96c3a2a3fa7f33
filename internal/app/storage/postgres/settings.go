package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"meetpay/internal/app/apperr"
	"meetpay/internal/app/model"
	"meetpay/internal/app/storage"
)

// storage.SettingsRepository interface implementation
var _ storage.SettingsRepository = (*SettingsRepository)(nil)

type SettingsRepository struct {
	db *sql.DB
}

func (r *SettingsRepository) LoggerComponent() string {
	return "SettingsRepository"
}

func NewSettingsRepository(db *sql.DB) (*SettingsRepository, error) {
	s := &SettingsRepository{
		db: db,
	}
	return s, nil
}

// Commissions implementation of interface storage.SettingsRepository. The
// settings surface owns the row; settlement only ever reads it.
func (r *SettingsRepository) Commissions(ctx context.Context) (*model.Commissions, error) {
	const SQL = `
		SELECT basetime, wompi, referral
		FROM settings
		LIMIT 1
`
	m := &model.Commissions{}

	err := r.db.QueryRowContext(ctx, SQL).Scan(&m.Basetime, &m.Wompi, &m.Referral)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrConfigUnavailable
		}
		return nil, fmt.Errorf("select: %w", err)
	}

	return m, nil
}
