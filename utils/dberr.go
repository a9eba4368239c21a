package utils

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ConflictKind classifies storage failures callers may want to recover from.
type ConflictKind int

const (
	ConflictOther ConflictKind = iota
	ConflictUnique
	ConflictForeignKey
)

// Postgres SQLSTATE codes (class 23, integrity constraint violation).
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Classify maps a storage-layer error to a conflict kind using the driver's
// stable error codes, never the message text. Postgres is the production
// dialect; sqlite is recognized for the test dialect.
func Classify(err error) ConflictKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ConflictUnique
		case pgForeignKeyViolation:
			return ConflictForeignKey
		}
		return ConflictOther
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return ConflictUnique
		case sqlite3.ErrConstraintForeignKey:
			return ConflictForeignKey
		}
	}

	return ConflictOther
}

func IsUniqueViolation(err error) bool {
	return err != nil && Classify(err) == ConflictUnique
}

func IsForeignKeyViolation(err error) bool {
	return err != nil && Classify(err) == ConflictForeignKey
}
