package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// postgres SQLSTATE codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgCodeForeignKeyViolation = "23503"
	pgCodeUniqueViolation     = "23505"
)

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ""
	}
	return pgErr.Code
}

// IsUniqueViolationError reports whether err (or anything it wraps) is a unique constraint violation.
func IsUniqueViolationError(err error) bool {
	return pgErrCode(err) == pgCodeUniqueViolation
}

// IsForeignKeyViolationError reports whether err (or anything it wraps) is a foreign key violation.
func IsForeignKeyViolationError(err error) bool {
	return pgErrCode(err) == pgCodeForeignKeyViolation
}
