package db

import (
	"database/sql"
	"errors"
	"fmt"

	"fitclub/internal/apperror"

	"github.com/lib/pq"
)

const (
	codeForeignKeyViolation pq.ErrorCode = "23503"
	codeUniqueViolation     pq.ErrorCode = "23505"
	codeCheckViolation      pq.ErrorCode = "23514"
)

func pqCode(err error) (pq.ErrorCode, string, bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return "", "", false
	}
	return pqErr.Code, pqErr.Constraint, true
}

// IsForeignKeyViolation reports a reference to a row that does not exist.
func IsForeignKeyViolation(err error) bool {
	code, _, ok := pqCode(err)
	return ok && code == codeForeignKeyViolation
}

// IsUniqueViolation reports a duplicate key. If constraint is non-empty the
// violated constraint must match it.
func IsUniqueViolation(err error, constraint string) bool {
	code, name, ok := pqCode(err)
	if !ok || code != codeUniqueViolation {
		return false
	}
	return constraint == "" || name == constraint
}

func IsCheckViolation(err error) bool {
	code, _, ok := pqCode(err)
	return ok && code == codeCheckViolation
}

// NotFound converts sql.ErrNoRows into apperror.ErrNotFound naming the
// missing entity. Other errors pass through.
func NotFound(err error, entity string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", entity, apperror.ErrNotFound)
	}
	return err
}
