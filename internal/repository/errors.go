package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgForeignKeyViolation = "23503"

var (
	ErrNotFound         = errors.New("record not found")
	ErrInvalidReference = errors.New("referenced record does not exist")
)

func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return fmt.Errorf("%w: %s", ErrInvalidReference, pgErr.ConstraintName)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrInvalidReference
	}
	return err
}
