package domain

import (
	"context"

	"github.com/google/uuid"
)

// User exists only for authentication. Password always holds a bcrypt
// hash, never the plaintext.
type User struct {
	ID       uuid.UUID `validate:"-"`
	Email    string    `validate:"required,email"`
	Username string    `validate:"required"`
	Password string    `validate:"required"`
}

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Save(ctx context.Context, user *User) error
}

type AuthUsecase interface {
	Register(ctx context.Context, email, password string) (*User, error)
	Login(ctx context.Context, username, password string) (token string, err error)
}
