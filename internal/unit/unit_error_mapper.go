package unit

import (
	"errors"

	uniterrors "go-hrms/internal/unit/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uniterrors.ErrUnitNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_units_name" {
		return uniterrors.ErrUnitNameTaken
	}
	return err
}
