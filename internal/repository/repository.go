package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrParentNotFound reports a write that referenced a sport or event id with
// no matching row. The HTTP boundary maps it to a 404 naming the parent.
var ErrParentNotFound = errors.New("parent record not found")

// isForeignKeyViolation classifies driver errors for the referential-violation
// path. Postgres reports SQLSTATE 23503; the sqlite test driver only exposes
// the failure through its message.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// regexMatch adds a case-insensitive regular-expression condition on column.
// Postgres has the ~* operator; sqlite routes REGEXP to a registered regexp()
// function, where case-insensitivity comes from the (?i) flag instead.
// Column names are fixed by the filter structs; the pattern is always bound.
func regexMatch(db *gorm.DB, column, pattern string) *gorm.DB {
	if db.Dialector.Name() == "postgres" {
		return db.Where(column+" ~* ?", pattern)
	}
	return db.Where(column+" REGEXP ?", "(?i)"+pattern)
}
