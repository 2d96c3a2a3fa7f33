package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"meetpay/internal/app/apperr"
	"meetpay/internal/app/model"
	"meetpay/internal/app/storage"
)

// storage.SkillRepository interface implementation
var _ storage.SkillRepository = (*SkillRepository)(nil)

type SkillRepository struct {
	db *sql.DB
}

func (r *SkillRepository) LoggerComponent() string {
	return "SkillRepository"
}

func NewSkillRepository(db *sql.DB) (*SkillRepository, error) {
	s := &SkillRepository{
		db: db,
	}
	return s, nil
}

// Read implementation of interface storage.SkillRepository
func (r *SkillRepository) Read(ctx context.Context, id uuid.UUID) (*model.Skill, error) {
	const SQL = `
		SELECT id, user_id
		FROM skills
		WHERE id=$1
`
	m := &model.Skill{}

	err := r.db.QueryRowContext(ctx, SQL, id).Scan(&m.ID, &m.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("select: %w", err)
	}

	return m, nil
}
