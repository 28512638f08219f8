package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation       = "23505"
	codeInvalidTextRepresents = "22P02"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pgCode(err) == codeUniqueViolation
}

// isMalformedID reports a non-UUID id, which cannot match any row.
func isMalformedID(err error) bool {
	return pgCode(err) == codeInvalidTextRepresents
}
