// Package repository implements the write-side persistence ports over the raw
// query layer, classifying PostgreSQL errors into repository error kinds.
package repository

import (
	"errors"

	"stayhub/internal/infra"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func classify(msg string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return infra.WrapRepoErr(msg, err, infra.KindNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgerrcode.ForeignKeyViolation:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		case pgerrcode.CheckViolation:
			return infra.WrapRepoErr(msg, err, infra.KindCheckViolated)
		case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
			return infra.WrapRepoErr(msg, err, infra.KindConflict)
		}
	}

	return infra.WrapRepoErr(msg, err)
}
