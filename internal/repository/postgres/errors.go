package postgres

import (
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// mapError translates driver errors into the error taxonomy the handlers
// understand: missing rows become domain.ErrNotFound, constraint
// violations become 400-class apperrors, anything else stays internal.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return apperror.BadRequest("Referenced resource does not exist")
		case pgUniqueViolation:
			return apperror.BadRequest("Resource already exists")
		}
	}
	return apperror.Internal(err)
}
