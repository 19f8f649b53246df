package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, username, password FROM users WHERE email = $1`
	var user domain.User
	err := r.db.QueryRow(ctx, query, email).Scan(&user.ID, &user.Email, &user.Username, &user.Password)
	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

func (r *userRepo) Save(ctx context.Context, user *domain.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
		query := `INSERT INTO users (id, email, username, password) VALUES ($1, $2, $3, $4)`
		_, err := r.db.Exec(ctx, query, user.ID, user.Email, user.Username, user.Password)

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.BadRequest("User with this email already exists")
		}
		return mapError(err)
	}

	query := `UPDATE users SET email = $2, username = $3, password = $4 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, user.ID, user.Email, user.Username, user.Password)
	return mapError(err)
}
