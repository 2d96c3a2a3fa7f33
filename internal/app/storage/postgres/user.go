package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	pg "github.com/lib/pq"

	"meetpay/internal/app/apperr"
	"meetpay/internal/app/model"
	"meetpay/internal/app/storage"
)

// storage.UserRepository interface implementation
var _ storage.UserRepository = (*UserRepository)(nil)

type UserRepository struct {
	db *sql.DB
}

func (r *UserRepository) LoggerComponent() string {
	return "UserRepository"
}

func NewUserRepository(db *sql.DB) (*UserRepository, error) {
	s := &UserRepository{
		db: db,
	}
	return s, nil
}

// Create implementation of interface storage.UserRepository
func (r *UserRepository) Create(ctx context.Context, m *model.User) (*model.User, error) {
	const SQL = `
		INSERT INTO users (name, password, first_name, last_name, promoter_id, push_token)
		VALUES ($1, crypt($2, gen_salt('bf')), $3, $4, $5, $6)
		RETURNING id
`

	err := r.db.QueryRowContext(ctx, SQL, m.Name, m.Password, m.FirstName, m.LastName, m.PromoterID, m.PushToken).Scan(&m.ID)
	if err != nil {
		if pgErr, ok := err.(*pg.Error); ok {
			if pgerrcode.IsIntegrityConstraintViolation(string(pgErr.Code)) {
				return nil, apperr.ErrConflict
			}
		}

		return nil, fmt.Errorf("insert: %w", err)
	}

	return m, nil
}

// Read implementation of interface storage.UserRepository
func (r *UserRepository) Read(ctx context.Context, id uuid.UUID) (*model.User, error) {
	const SQL = `
		SELECT id, name, first_name, last_name, promoter_id, push_token
		FROM users
		WHERE id=$1
`
	m := &model.User{}

	err := r.db.QueryRowContext(ctx, SQL, id).Scan(&m.ID, &m.Name, &m.FirstName, &m.LastName, &m.PromoterID, &m.PushToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("select: %w", err)
	}

	return m, nil
}

// ReadByNameAndPassword implementation of interface storage.UserRepository
func (r *UserRepository) ReadByNameAndPassword(ctx context.Context, name string, password string) (*model.User, error) {
	const SQL = `
		SELECT id, name, first_name, last_name, promoter_id, push_token
		FROM users
		WHERE name = $1
		AND password = crypt($2, password)
`
	m := &model.User{}

	err := r.db.QueryRowContext(ctx, SQL, name, password).Scan(&m.ID, &m.Name, &m.FirstName, &m.LastName, &m.PromoterID, &m.PushToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("select: %w", err)
	}

	return m, nil
}
