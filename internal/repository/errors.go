package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when a lookup targets a row that does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateReview is returned when a user submits a second review for
	// the same movie. The (user_id, movie_id) unique constraint is the source
	// of truth; callers should treat this as a warning, not a failure.
	ErrDuplicateReview = errors.New("review already exists for this user and movie")

	// ErrUserExists is returned when signup reuses a taken user id.
	ErrUserExists = errors.New("user id already exists")
)

// Postgres SQLSTATEs for constraint violations.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}
