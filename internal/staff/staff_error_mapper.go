package staff

import (
	"errors"

	stafferrors "go-hrms/internal/staff/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return stafferrors.ErrStaffNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case "23505":
		switch pgErr.ConstraintName {
		case "uq_users_email":
			return stafferrors.ErrEmailTaken
		case "uq_users_identity_number":
			return stafferrors.ErrIdentityNumberTaken
		case "uq_users_staff_number":
			return stafferrors.ErrStaffNumberTaken
		}
	case "23503":
		switch pgErr.ConstraintName {
		case "fk_users_unit":
			return stafferrors.ErrUnitNotFound
		case "fk_leaves_reviewer":
			return stafferrors.ErrHasReviewedLeaves
		}
	}
	return err
}
