package session

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt"

	"meetpay/internal/app/model"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	jwt.StandardClaims
}

type Creator interface {
	// Create a session token for the user
	Create(ctx context.Context, u *model.User) (string, error)
}

type Reader interface {
	// Read the user behind a session token
	Read(ctx context.Context, token string) (*model.User, error)
}

type Manager interface {
	Creator
	Reader
}
