package leave

import (
	"errors"

	leaveerrors "go-hrms/internal/leave/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leaveerrors.ErrLeaveNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23P01":
			// ex_leaves_no_overlap backs up the in-transaction check
			return leaveerrors.ErrLeaveOverlap
		case "23503":
			switch pgErr.ConstraintName {
			case "fk_leaves_user":
				return leaveerrors.ErrUserNotFound
			case "fk_leaves_reviewer":
				return leaveerrors.ErrReviewerNotFound
			}
		case "23514":
			if pgErr.ConstraintName == "chk_leaves_date_range" {
				return leaveerrors.ErrInvalidRange
			}
		}
	}

	return err
}
